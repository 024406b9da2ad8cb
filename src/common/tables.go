package common

import (
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"

	"gorm.io/gorm"
)

func ListTables() ([]models.DiningTable, error) {
	var tables []models.DiningTable
	err := db.GetDb().Order("id asc").Find(&tables).Error
	return tables, err
}

func GetTable(id uint) (*models.DiningTable, error) {
	var table models.DiningTable
	if err := db.GetDb().Scopes(scopes.WithID(id)).First(&table).Error; err != nil {
		return nil, notFound(err, "dining table")
	}
	return &table, nil
}

func CreateTable(body *types.CreateTableRequestBody) (*models.DiningTable, error) {
	table := models.DiningTable{Name: body.Name, Status: types.TABLE_AVAILABLE}
	if body.Status != "" {
		table.Status = body.Status
	}
	if err := db.GetDb().Create(&table).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return &table, nil
}

func UpdateTable(id uint, body *types.UpdateTableRequestBody) (*models.DiningTable, error) {
	var table models.DiningTable
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopes.WithID(id)).First(&table).Error; err != nil {
			return notFound(err, "dining table")
		}
		if body.Name != nil {
			table.Name = *body.Name
		}
		if body.Status != nil {
			table.Status = *body.Status
		}
		return translateWriteError(tx.Save(&table).Error, "name")
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func DeleteTable(id uint) error {
	return deleteByID(&models.DiningTable{}, id, "dining table", "id")
}

func setTableStatus(tx *gorm.DB, tableID uint, status types.TableStatus) error {
	return tx.
		Model(&models.DiningTable{}).
		Where("id = ?", tableID).
		Update("status", status).
		Error
}
