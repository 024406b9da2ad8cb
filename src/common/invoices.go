package common

import (
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"
	"errors"

	"gorm.io/gorm"
)

func preloadInvoice(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Order").
		Preload("Order.DiningTable").
		Preload("Order.Reservation").
		Preload("Order.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		Preload("Order.Items.Item")
}

func ListInvoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := db.GetDb().Preload("Order").Order("id asc").Find(&invoices).Error
	return invoices, err
}

func GetInvoice(id uint) (*models.Invoice, error) {
	return getInvoice(db.GetDb(), id)
}

func getInvoice(tx *gorm.DB, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := tx.Scopes(scopes.WithID(id), preloadInvoice).First(&invoice).Error; err != nil {
		return nil, notFound(err, "invoice")
	}
	return &invoice, nil
}

// GetInvoiceByOrder loads the invoice of an order together with the order lines, table and reservation.
func GetInvoiceByOrder(orderID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := db.GetDb().
		Where("order_id = ?", orderID).
		Scopes(preloadInvoice).
		First(&invoice).
		Error
	if err != nil {
		return nil, notFound(err, "invoice")
	}
	return &invoice, nil
}

// checkInvoiceOrder validates the order reference and that no other invoice already points at it.
func checkInvoiceOrder(tx *gorm.DB, orderID, invoiceID uint) error {
	ok, err := exists(tx, &models.Order{}, orderID)
	if err != nil {
		return err
	}
	if !ok {
		return invalidRef("order_id")
	}
	var count int64
	q := tx.Model(&models.Invoice{}).Where("order_id = ?", orderID)
	if invoiceID != 0 {
		q = q.Where("id <> ?", invoiceID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return types.ErrInvoiceExists
	}
	return nil
}

func invoiceWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return types.ErrInvoiceExists
	}
	return err
}

func CreateInvoice(body *types.CreateInvoiceRequestBody) (*models.Invoice, error) {
	invoice := models.Invoice{
		OrderID:       body.OrderID,
		Amount:        *body.Amount,
		PaymentMethod: body.PaymentMethod,
		Status:        types.INVOICE_UNPAID,
	}
	if body.Status != "" {
		invoice.Status = body.Status
	}
	var created *models.Invoice
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := checkInvoiceOrder(tx, invoice.OrderID, 0); err != nil {
			return err
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return invoiceWriteError(err)
		}
		var err error
		created, err = getInvoice(tx, invoice.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func UpdateInvoice(id uint, body *types.UpdateInvoiceRequestBody) (*models.Invoice, error) {
	if body.IsEmpty() {
		return nil, types.ErrNothingToUpdate
	}
	var updated *models.Invoice
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.Scopes(scopes.WithID(id)).First(&invoice).Error; err != nil {
			return notFound(err, "invoice")
		}
		if body.OrderID != nil && *body.OrderID != invoice.OrderID {
			if err := checkInvoiceOrder(tx, *body.OrderID, invoice.ID); err != nil {
				return err
			}
			invoice.OrderID = *body.OrderID
		}
		if body.Amount != nil {
			invoice.Amount = *body.Amount
		}
		if body.PaymentMethod != nil {
			invoice.PaymentMethod = *body.PaymentMethod
		}
		if body.Status != nil {
			invoice.Status = *body.Status
		}
		if err := tx.Omit("Order").Save(&invoice).Error; err != nil {
			return invoiceWriteError(err)
		}
		var err error
		updated, err = getInvoice(tx, invoice.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// PayInvoice marks the invoice paid with the given method. Paying twice only rewrites the same fields.
func PayInvoice(id uint, method types.PaymentMethod) (*models.Invoice, error) {
	return setInvoiceFields(id, map[string]any{
		"status":         types.INVOICE_PAID,
		"payment_method": method,
	})
}

func UpdateInvoiceStatus(id uint, status types.InvoiceStatus) (*models.Invoice, error) {
	return setInvoiceFields(id, map[string]any{"status": status})
}

func setInvoiceFields(id uint, fields map[string]any) (*models.Invoice, error) {
	var updated *models.Invoice
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invoice{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		var err error
		updated, err = getInvoice(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func DeleteInvoice(id uint) error {
	return deleteByID(&models.Invoice{}, id, "invoice", "id")
}
