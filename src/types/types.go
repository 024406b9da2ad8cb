package types

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type OrderRequestParams struct {
	OrderID uint `uri:"orderId" binding:"required"`
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var ErrInvalidDateTime = errors.New("invalid date time")

// ParseDateTime accepts RFC3339 as well as the layouts sent by datetime-local inputs.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}

type RoleName string

const (
	ROLE_ADMIN    RoleName = "admin"
	ROLE_EMPLOYEE RoleName = "employee"
	ROLE_USER     RoleName = "user"
)

var DefaultRoles = []RoleName{ROLE_ADMIN, ROLE_EMPLOYEE, ROLE_USER}

type TableStatus string

const (
	TABLE_AVAILABLE TableStatus = "available"
	TABLE_OCCUPIED  TableStatus = "occupied"
	TABLE_RESERVED  TableStatus = "reserved"
)

type ReservationStatus string

const (
	RESERVATION_PENDING   ReservationStatus = "pending"
	RESERVATION_CONFIRMED ReservationStatus = "confirmed"
	RESERVATION_CANCELLED ReservationStatus = "cancelled"
)

type OrderType string

const (
	ORDER_DINE_IN  OrderType = "dine_in"
	ORDER_TAKEAWAY OrderType = "takeaway"
	ORDER_DELIVERY OrderType = "delivery"
)

type OrderStatus string

const (
	ORDER_PENDING   OrderStatus = "pending"
	ORDER_PREPARING OrderStatus = "preparing"
	ORDER_READY     OrderStatus = "ready"
	ORDER_DELIVERED OrderStatus = "delivered"
	ORDER_CANCELLED OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PAYMENT_CASH   PaymentMethod = "cash"
	PAYMENT_CARD   PaymentMethod = "card"
	PAYMENT_ONLINE PaymentMethod = "online"
)

type InvoiceStatus string

const (
	INVOICE_PAID   InvoiceStatus = "paid"
	INVOICE_UNPAID InvoiceStatus = "unpaid"
)

type SignupRequestBody struct {
	Name     string `json:"name" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=11"`
	Password string `json:"password" binding:"required,min=8"`
	RoleName string `json:"role_name" binding:"required,oneof=admin employee user"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type CategoryRequestBody struct {
	Name string `json:"name" binding:"required"`
}

type CreateItemRequestBody struct {
	Name        string           `json:"name" binding:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required,gte=0"`
	Available   *bool            `json:"available"`
	CategoryID  uint             `json:"category_id" binding:"required"`
}

type UpdateItemRequestBody struct {
	Name        *string          `json:"name" binding:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
	Available   *bool            `json:"available"`
	CategoryID  *uint            `json:"category_id" binding:"omitempty,min=1"`
}

type CreateRecipeIngredientRequestBody struct {
	ItemID      uint             `json:"item_id" binding:"required"`
	InventoryID uint             `json:"inventory_id" binding:"required"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"required,gte=0"`
	Unit        *string          `json:"unit"`
}

type UpdateRecipeIngredientRequestBody struct {
	ItemID      *uint            `json:"item_id" binding:"omitempty,min=1"`
	InventoryID *uint            `json:"inventory_id" binding:"omitempty,min=1"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"omitempty,gte=0"`
	Unit        *string          `json:"unit"`
}

type CreateInventoryRequestBody struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  *int    `json:"quantity" binding:"required,min=0"`
	Unit      *string `json:"unit"`
	Threshold *int    `json:"threshold" binding:"omitempty,min=0"`
}

type UpdateInventoryRequestBody struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Quantity  *int    `json:"quantity" binding:"omitempty,min=0"`
	Unit      *string `json:"unit"`
	Threshold *int    `json:"threshold" binding:"omitempty,min=0"`
}

type CreateTableRequestBody struct {
	Name   string      `json:"name" binding:"required"`
	Status TableStatus `json:"status" binding:"omitempty,oneof=available occupied reserved"`
}

type UpdateTableRequestBody struct {
	Name   *string      `json:"name" binding:"omitempty,min=1"`
	Status *TableStatus `json:"status" binding:"omitempty,oneof=available occupied reserved"`
}

type CreateReservationRequestBody struct {
	UserID          uint              `json:"user_id"`
	DiningTableID   uint              `json:"dining_table_id" binding:"required"`
	ReservationTime string            `json:"reservation_time" binding:"required,datetime_any"`
	DurationMinutes int               `json:"duration_minutes" binding:"required,min=15"`
	Status          ReservationStatus `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	Notes           *string           `json:"notes"`
}

type UpdateReservationRequestBody struct {
	UserID          *uint              `json:"user_id" binding:"omitempty,min=1"`
	DiningTableID   *uint              `json:"dining_table_id" binding:"omitempty,min=1"`
	ReservationTime *string            `json:"reservation_time" binding:"omitempty,datetime_any"`
	DurationMinutes *int               `json:"duration_minutes" binding:"omitempty,min=15"`
	Status          *ReservationStatus `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	Notes           *string            `json:"notes"`
}

type OrderLineRequest struct {
	ItemID   uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequestBody struct {
	UserID          uint               `json:"user_id"`
	OrderType       OrderType          `json:"order_type" binding:"required,oneof=dine_in takeaway delivery"`
	DiningTableID   *uint              `json:"dining_table_id" binding:"omitempty,min=1"`
	ReservationID   *uint              `json:"reservation_id" binding:"omitempty,min=1"`
	DeliveryAddress *string            `json:"delivery_address" binding:"required_if=OrderType delivery,omitempty,min=1"`
	Phone           *string            `json:"phone" binding:"required_if=OrderType delivery,omitempty,len=11,numeric"`
	PaymentMethod   PaymentMethod      `json:"payment_method" binding:"required,oneof=cash card online"`
	Items           []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderRequestBody struct {
	OrderType       *OrderType         `json:"order_type" binding:"omitempty,oneof=dine_in takeaway delivery"`
	DiningTableID   *uint              `json:"dining_table_id" binding:"omitempty,min=1"`
	DeliveryAddress *string            `json:"delivery_address"`
	Phone           *string            `json:"phone" binding:"omitempty,len=11,numeric"`
	Status          *OrderStatus       `json:"status" binding:"omitempty,oneof=pending preparing ready delivered cancelled"`
	PaymentMethod   *PaymentMethod     `json:"payment_method" binding:"omitempty,oneof=cash card online"`
	Items           []OrderLineRequest `json:"items" binding:"omitempty,dive"`
}

type CreateInvoiceRequestBody struct {
	OrderID       uint             `json:"order_id" binding:"required"`
	Amount        *decimal.Decimal `json:"amount" binding:"required,gte=0"`
	PaymentMethod PaymentMethod    `json:"payment_method" binding:"required,oneof=cash card online"`
	Status        InvoiceStatus    `json:"status" binding:"omitempty,oneof=paid unpaid"`
}

type UpdateInvoiceRequestBody struct {
	OrderID       *uint            `json:"order_id" binding:"omitempty,min=1"`
	Amount        *decimal.Decimal `json:"amount" binding:"omitempty,gte=0"`
	PaymentMethod *PaymentMethod   `json:"payment_method" binding:"omitempty,oneof=cash card online"`
	Status        *InvoiceStatus   `json:"status" binding:"omitempty,oneof=paid unpaid"`
}

func (b UpdateInvoiceRequestBody) IsEmpty() bool {
	return b.OrderID == nil && b.Amount == nil && b.PaymentMethod == nil && b.Status == nil
}

type PayInvoiceRequestBody struct {
	PaymentMethod PaymentMethod `json:"payment_method" binding:"required,oneof=cash card online"`
}

type InvoiceStatusRequestBody struct {
	Status InvoiceStatus `json:"status" binding:"required,oneof=paid unpaid"`
}

type CreateStaffProfileRequestBody struct {
	UserID    uint             `json:"user_id" binding:"required"`
	Position  string           `json:"position" binding:"required"`
	Salary    *decimal.Decimal `json:"salary" binding:"required,gte=0"`
	ShiftTime string           `json:"shift_time" binding:"required"`
}

type UpdateStaffProfileRequestBody struct {
	UserID    *uint            `json:"user_id" binding:"omitempty,min=1"`
	Position  *string          `json:"position" binding:"omitempty,min=1"`
	Salary    *decimal.Decimal `json:"salary" binding:"omitempty,gte=0"`
	ShiftTime *string          `json:"shift_time" binding:"omitempty,min=1"`
}

type CreateShiftRequestBody struct {
	Name      string  `json:"name" binding:"required"`
	StartTime string  `json:"start_time" binding:"required,hhmm"`
	EndTime   string  `json:"end_time" binding:"required,hhmm,aftertime=StartTime"`
	ShiftDate *string `json:"shift_date" binding:"omitempty,datetime=2006-01-02"`
	UserIDs   []uint  `json:"user_ids" binding:"omitempty,dive,min=1"`
}

type UpdateShiftRequestBody struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	StartTime *string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime   *string `json:"end_time" binding:"omitempty,hhmm"`
	ShiftDate *string `json:"shift_date" binding:"omitempty,datetime=2006-01-02"`
	UserIDs   *[]uint `json:"user_ids"`
}
