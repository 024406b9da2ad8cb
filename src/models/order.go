package models

import (
	"cafe/src/types"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              uint                `gorm:"primarykey" json:"id"`
	UserID          uint                `gorm:"index" json:"user_id"`
	OrderType       types.OrderType     `gorm:"size:16" json:"order_type"`
	DiningTableID   *uint               `gorm:"index" json:"dining_table_id"`
	ReservationID   *uint               `gorm:"index" json:"reservation_id"`
	DeliveryAddress *string             `json:"delivery_address"`
	Phone           *string             `gorm:"size:11" json:"phone"`
	PaymentMethod   types.PaymentMethod `gorm:"size:16" json:"payment_method"`
	Status          types.OrderStatus   `gorm:"size:16;default:'pending'" json:"status"`
	TotalPrice      decimal.Decimal     `gorm:"type:decimal(10,2)" json:"total_price"`

	User        *User        `json:"user,omitempty"`
	DiningTable *DiningTable `json:"dining_table,omitempty"`
	Reservation *Reservation `gorm:"constraint:OnDelete:SET NULL" json:"reservation,omitempty"`
	Items       []OrderItem  `gorm:"constraint:OnDelete:CASCADE" json:"items"`

	types.Timestamps
}

// Total sums the priced lines of the order.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Items {
		total = total.Add(line.Subtotal())
	}
	return total
}

// OrderItem is an order line. Price is the item price at the time the line was written.
type OrderItem struct {
	ID       uint            `gorm:"primarykey" json:"id"`
	OrderID  uint            `gorm:"index" json:"order_id"`
	ItemID   uint            `gorm:"index" json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`

	Item *Item `json:"item,omitempty"`

	types.Timestamps
}

func (l *OrderItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
