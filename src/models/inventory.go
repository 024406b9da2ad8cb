package models

import (
	"cafe/src/types"

	"gorm.io/gorm"
)

type Inventory struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Unit      *string `json:"unit"`
	Threshold int     `gorm:"default:0" json:"threshold"`
	LowStock  bool    `gorm:"-" json:"low_stock"`

	types.Timestamps
}

func (Inventory) TableName() string {
	return "inventory"
}

func (i *Inventory) AfterFind(tx *gorm.DB) error {
	i.LowStock = i.IsLowStock()
	return nil
}

func (i *Inventory) AfterSave(tx *gorm.DB) error {
	i.LowStock = i.IsLowStock()
	return nil
}

func (i *Inventory) IsLowStock() bool {
	return i.Quantity < i.Threshold
}
