package models

import "cafe/src/types"

type DiningTable struct {
	ID     uint              `gorm:"primarykey" json:"id"`
	Name   string            `gorm:"uniqueIndex;size:191" json:"name"`
	Status types.TableStatus `gorm:"size:16;default:'available'" json:"status"`

	types.Timestamps
}
