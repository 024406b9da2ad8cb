package models

import (
	"cafe/src/types"
)

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;size:191" json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"-"`
	RoleID   uint   `json:"role_id"`

	Role         *Role         `json:"role,omitempty"`
	StaffProfile *StaffProfile `gorm:"constraint:OnDelete:CASCADE" json:"staff_profile,omitempty"`

	types.Timestamps
}
