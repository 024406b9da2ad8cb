package models

import (
	"cafe/src/types"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	OrderID       uint                `gorm:"uniqueIndex" json:"order_id"`
	Amount        decimal.Decimal     `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentMethod types.PaymentMethod `gorm:"size:16" json:"payment_method"`
	Status        types.InvoiceStatus `gorm:"size:16;default:'unpaid'" json:"status"`

	Order *Order `json:"order,omitempty"`

	types.Timestamps
}
