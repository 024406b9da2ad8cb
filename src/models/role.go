package models

import "cafe/src/types"

type Role struct {
	ID   uint           `gorm:"primarykey" json:"id"`
	Name types.RoleName `gorm:"uniqueIndex;size:32" json:"name"`
}
