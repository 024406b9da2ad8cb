package models

import (
	"cafe/src/types"

	"github.com/shopspring/decimal"
)

type StaffProfile struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex" json:"user_id"`
	Position  string          `json:"position"`
	Salary    decimal.Decimal `gorm:"type:decimal(10,2)" json:"salary"`
	ShiftTime string          `json:"shift_time"`

	User *User `json:"user,omitempty"`

	types.Timestamps
}

type Shift struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `json:"name"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Assignments []ShiftUser `gorm:"constraint:OnDelete:CASCADE" json:"assignments"`

	types.Timestamps
}

// ShiftUser assigns a user to a shift on a given date.
type ShiftUser struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	ShiftID   uint    `gorm:"uniqueIndex:idx_shift_user" json:"shift_id"`
	UserID    uint    `gorm:"uniqueIndex:idx_shift_user" json:"user_id"`
	ShiftDate *string `gorm:"size:10" json:"shift_date"`

	User  *User  `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Shift *Shift `json:"shift,omitempty"`

	types.Timestamps
}

func (ShiftUser) TableName() string {
	return "shift_user"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&Role{},
		&User{},
		&Token{},
		&Category{},
		&Inventory{},
		&Item{},
		&RecipeIngredient{},
		&DiningTable{},
		&Reservation{},
		&Order{},
		&OrderItem{},
		&Invoice{},
		&StaffProfile{},
		&Shift{},
		&ShiftUser{},
	}
}
