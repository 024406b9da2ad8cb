package models

import (
	"cafe/src/types"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex;size:191" json:"name"`
	Slug string `gorm:"index;size:191" json:"slug"`

	Items []Item `json:"items,omitempty"`

	types.Timestamps
}

type Item struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Available   bool            `json:"available"`
	CategoryID  uint            `gorm:"index" json:"category_id"`

	Category          *Category          `json:"category,omitempty"`
	RecipeIngredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"recipe_ingredients,omitempty"`

	types.Timestamps
}

type RecipeIngredient struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	ItemID      uint            `gorm:"uniqueIndex:item_inventory" json:"item_id"`
	InventoryID uint            `gorm:"uniqueIndex:item_inventory" json:"inventory_id"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit        *string         `json:"unit"`

	Item      *Item      `json:"item,omitempty"`
	Inventory *Inventory `gorm:"constraint:OnDelete:CASCADE" json:"inventory,omitempty"`

	types.Timestamps
}
