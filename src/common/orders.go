package common

import (
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatusHook is consulted before an order status changes. Any transition is allowed by default.
var OrderStatusHook = func(from, to types.OrderStatus) error {
	return nil
}

func preloadOrder(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("User").
		Preload("DiningTable").
		Preload("Reservation").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Items.Item")
}

func ListOrders() ([]models.Order, error) {
	var orders []models.Order
	err := db.GetDb().Scopes(preloadOrder).Order("id asc").Find(&orders).Error
	return orders, err
}

func UserOrders(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.GetDb().
		Scopes(scopes.WithUserID(userID), scopes.Newest, preloadOrder).
		Find(&orders).
		Error
	return orders, err
}

func GetOrder(id uint) (*models.Order, error) {
	return getOrder(db.GetDb(), id)
}

func getOrder(tx *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := tx.Scopes(scopes.WithID(id), preloadOrder).First(&order).Error; err != nil {
		return nil, notFound(err, "order")
	}
	return &order, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// applyOrderTypeRules clears the fields the order type forbids and reports missing required ones.
func applyOrderTypeRules(order *models.Order) types.ValidationErrors {
	verr := types.ValidationErrors{}
	if order.OrderType != types.ORDER_DINE_IN {
		order.DiningTableID = nil
		order.DiningTable = nil
	}
	if order.OrderType != types.ORDER_DELIVERY {
		order.DeliveryAddress = nil
		order.Phone = nil
		return verr
	}
	if order.DeliveryAddress == nil || strings.TrimSpace(*order.DeliveryAddress) == "" {
		verr.Add("delivery_address", "The delivery address field is required when order type is delivery.")
	}
	if order.Phone == nil || *order.Phone == "" {
		verr.Add("phone", "The phone field is required when order type is delivery.")
	} else if len(*order.Phone) != 11 || !isDigits(*order.Phone) {
		verr.Add("phone", "The phone field must be 11 digits.")
	}
	return verr
}

// priceLines snapshots the current item prices into new order lines.
func priceLines(tx *gorm.DB, requested []types.OrderLineRequest) ([]models.OrderItem, types.ValidationErrors) {
	verr := types.ValidationErrors{}
	if len(requested) == 0 {
		return nil, verr
	}
	ids := make([]uint, 0, len(requested))
	for _, line := range requested {
		ids = append(ids, line.ItemID)
	}
	var items []models.Item
	if err := tx.Scopes(scopes.WithIDs(ids...)).Find(&items).Error; err != nil {
		verr.Add("items", err.Error())
		return nil, verr
	}
	prices := make(map[uint]decimal.Decimal, len(items))
	for _, item := range items {
		prices[item.ID] = item.Price
	}
	lines := make([]models.OrderItem, 0, len(requested))
	for i, line := range requested {
		price, ok := prices[line.ItemID]
		if !ok {
			verr.Add(fmt.Sprintf("items.%d.id", i), "The selected item is invalid.")
			continue
		}
		if line.Quantity < 1 {
			verr.Add(fmt.Sprintf("items.%d.quantity", i), "The quantity must be at least 1.")
			continue
		}
		lines = append(lines, models.OrderItem{ItemID: line.ItemID, Quantity: line.Quantity, Price: price})
	}
	return lines, verr
}

// resolveDineInTable fills the table from the reservation when needed and enforces availability
// for walk-in orders. changed is false when the order keeps the table it already had.
func resolveDineInTable(tx *gorm.DB, order *models.Order, reservation *models.Reservation, changed bool) error {
	if order.OrderType != types.ORDER_DINE_IN {
		return nil
	}
	if order.DiningTableID == nil && reservation != nil {
		tableID := reservation.DiningTableID
		order.DiningTableID = &tableID
	}
	if order.DiningTableID == nil {
		return types.NewValidationError("dining_table_id", "A dining table or reservation is required for dine in orders.")
	}
	var table models.DiningTable
	if err := tx.Scopes(scopes.WithID(*order.DiningTableID)).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidRef("dining_table_id")
		}
		return err
	}
	if changed && reservation == nil && table.Status != types.TABLE_AVAILABLE {
		return fmt.Errorf("table %s: %w", table.Name, types.ErrTableUnavailable)
	}
	return nil
}

func CreateOrder(callerID uint, body *types.CreateOrderRequestBody) (*models.Order, error) {
	order := models.Order{
		UserID:          callerID,
		OrderType:       body.OrderType,
		DiningTableID:   body.DiningTableID,
		ReservationID:   body.ReservationID,
		DeliveryAddress: body.DeliveryAddress,
		Phone:           body.Phone,
		PaymentMethod:   body.PaymentMethod,
		Status:          types.ORDER_PENDING,
	}
	if body.UserID != 0 {
		order.UserID = body.UserID
	}
	var created *models.Order
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		verr := applyOrderTypeRules(&order)
		ok, err := exists(tx, &models.User{}, order.UserID)
		if err != nil {
			return err
		}
		if !ok {
			verr.Add("user_id", "The selected user id is invalid.")
		}
		var reservation *models.Reservation
		if order.ReservationID != nil {
			var r models.Reservation
			err := tx.Scopes(scopes.WithID(*order.ReservationID)).First(&r).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				verr.Add("reservation_id", "The selected reservation id is invalid.")
			case err != nil:
				return err
			case r.UserID != order.UserID:
				// a reservation can only back an order placed for its owner
				verr.Add("reservation_id", "The selected reservation id is invalid.")
			default:
				reservation = &r
			}
		}
		lines, lineErrs := priceLines(tx, body.Items)
		for field, msgs := range lineErrs {
			verr[field] = append(verr[field], msgs...)
		}
		if err := verr.Err(); err != nil {
			return err
		}
		if err := resolveDineInTable(tx, &order, reservation, true); err != nil {
			return err
		}

		order.Items = lines
		order.TotalPrice = order.Total()
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if reservation != nil {
			if err := confirmReservation(tx, reservation); err != nil {
				return err
			}
		}
		created, err = getOrder(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateOrder patches the order header. When lines are given they replace the existing set
// and are priced at the current item prices.
func UpdateOrder(id uint, body *types.UpdateOrderRequestBody) (*models.Order, error) {
	var updated *models.Order
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Scopes(scopes.WithID(id)).First(&order).Error; err != nil {
			return notFound(err, "order")
		}
		prevTable := order.DiningTableID
		if body.OrderType != nil {
			order.OrderType = *body.OrderType
		}
		if body.DiningTableID != nil {
			order.DiningTableID = body.DiningTableID
		}
		if body.DeliveryAddress != nil {
			order.DeliveryAddress = body.DeliveryAddress
		}
		if body.Phone != nil {
			order.Phone = body.Phone
		}
		if body.PaymentMethod != nil {
			order.PaymentMethod = *body.PaymentMethod
		}
		if body.Status != nil && *body.Status != order.Status {
			if err := OrderStatusHook(order.Status, *body.Status); err != nil {
				return types.NewValidationError("status", err.Error())
			}
			order.Status = *body.Status
		}

		verr := applyOrderTypeRules(&order)
		var lines []models.OrderItem
		if body.Items != nil {
			var lineErrs types.ValidationErrors
			lines, lineErrs = priceLines(tx, body.Items)
			for field, msgs := range lineErrs {
				verr[field] = append(verr[field], msgs...)
			}
		}
		if err := verr.Err(); err != nil {
			return err
		}

		var reservation *models.Reservation
		if order.ReservationID != nil {
			var r models.Reservation
			if err := tx.Scopes(scopes.WithID(*order.ReservationID)).First(&r).Error; err == nil {
				reservation = &r
			}
		}
		tableChanged := order.DiningTableID != nil && (prevTable == nil || *prevTable != *order.DiningTableID)
		if err := resolveDineInTable(tx, &order, reservation, tableChanged); err != nil {
			return err
		}

		if body.Items != nil {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			for i := range lines {
				lines[i].OrderID = order.ID
			}
			if len(lines) > 0 {
				if err := tx.Create(&lines).Error; err != nil {
					return err
				}
			}
			order.Items = lines
			order.TotalPrice = order.Total()
		}
		if err := tx.Omit("User", "DiningTable", "Reservation", "Items").Save(&order).Error; err != nil {
			return err
		}
		var err error
		updated, err = getOrder(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOrder removes the order lines and then the order. Tables and reservations are left as they are.
func DeleteOrder(id uint) error {
	return db.GetDb().Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Scopes(scopes.WithID(id)).First(&order).Error; err != nil {
			return notFound(err, "order")
		}
		var invoices int64
		if err := tx.Model(&models.Invoice{}).Where("order_id = ?", order.ID).Count(&invoices).Error; err != nil {
			return err
		}
		if invoices > 0 {
			return types.ErrOrderHasInvoice
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
