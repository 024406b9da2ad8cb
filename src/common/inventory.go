package common

import (
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"

	"gorm.io/gorm"
)

func ListInventory() ([]models.Inventory, error) {
	var stock []models.Inventory
	err := db.GetDb().Order("name asc").Find(&stock).Error
	return stock, err
}

// ListLowStock returns the rows whose quantity is below their threshold.
func ListLowStock() ([]models.Inventory, error) {
	var stock []models.Inventory
	err := db.GetDb().
		Where("quantity < threshold").
		Order("name asc").
		Find(&stock).
		Error
	return stock, err
}

func GetInventory(id uint) (*models.Inventory, error) {
	var inv models.Inventory
	if err := db.GetDb().Scopes(scopes.WithID(id)).First(&inv).Error; err != nil {
		return nil, notFound(err, "inventory")
	}
	return &inv, nil
}

func CreateInventory(body *types.CreateInventoryRequestBody) (*models.Inventory, error) {
	inv := models.Inventory{
		Name:     body.Name,
		Quantity: *body.Quantity,
		Unit:     body.Unit,
	}
	if body.Threshold != nil {
		inv.Threshold = *body.Threshold
	}
	if err := db.GetDb().Create(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func UpdateInventory(id uint, body *types.UpdateInventoryRequestBody) (*models.Inventory, error) {
	var inv models.Inventory
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopes.WithID(id)).First(&inv).Error; err != nil {
			return notFound(err, "inventory")
		}
		if body.Name != nil {
			inv.Name = *body.Name
		}
		if body.Quantity != nil {
			inv.Quantity = *body.Quantity
		}
		if body.Unit != nil {
			inv.Unit = body.Unit
		}
		if body.Threshold != nil {
			inv.Threshold = *body.Threshold
		}
		return tx.Save(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func DeleteInventory(id uint) error {
	return deleteByID(&models.Inventory{}, id, "inventory", "id")
}
