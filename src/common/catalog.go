package common

import (
	"cafe/src/db"
	"cafe/src/models"
	"cafe/src/models/scopes"
	"cafe/src/types"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := db.GetDb().Order("name asc").Find(&categories).Error
	return categories, err
}

func GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	err := db.GetDb().
		Scopes(scopes.WithID(id)).
		Preload("Items").
		First(&category).
		Error
	if err != nil {
		return nil, notFound(err, "category")
	}
	return &category, nil
}

func CreateCategory(body *types.CategoryRequestBody) (*models.Category, error) {
	category := models.Category{Name: body.Name, Slug: slug.Make(body.Name)}
	if err := db.GetDb().Create(&category).Error; err != nil {
		return nil, translateWriteError(err, "name")
	}
	return &category, nil
}

func UpdateCategory(id uint, body *types.CategoryRequestBody) (*models.Category, error) {
	var category models.Category
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopes.WithID(id)).First(&category).Error; err != nil {
			return notFound(err, "category")
		}
		category.Name = body.Name
		category.Slug = slug.Make(body.Name)
		return translateWriteError(tx.Save(&category).Error, "name")
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func DeleteCategory(id uint) error {
	return deleteByID(&models.Category{}, id, "category", "id")
}

func ListItems() ([]models.Item, error) {
	var items []models.Item
	err := db.GetDb().Preload("Category").Order("id asc").Find(&items).Error
	return items, err
}

func GetItem(id uint) (*models.Item, error) {
	var item models.Item
	err := db.GetDb().
		Scopes(scopes.WithID(id)).
		Preload("Category").
		Preload("RecipeIngredients.Inventory").
		First(&item).
		Error
	if err != nil {
		return nil, notFound(err, "item")
	}
	return &item, nil
}

func CreateItem(body *types.CreateItemRequestBody) (*models.Item, error) {
	item := models.Item{
		Name:        body.Name,
		Description: body.Description,
		Price:       *body.Price,
		Available:   true,
		CategoryID:  body.CategoryID,
	}
	if body.Available != nil {
		item.Available = *body.Available
	}
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.Category{}, body.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return invalidRef("category_id")
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return GetItem(item.ID)
}

func UpdateItem(id uint, body *types.UpdateItemRequestBody) (*models.Item, error) {
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Scopes(scopes.WithID(id)).First(&item).Error; err != nil {
			return notFound(err, "item")
		}
		if body.Name != nil {
			item.Name = *body.Name
		}
		if body.Description != nil {
			item.Description = body.Description
		}
		if body.Price != nil {
			item.Price = *body.Price
		}
		if body.Available != nil {
			item.Available = *body.Available
		}
		if body.CategoryID != nil && *body.CategoryID != item.CategoryID {
			ok, err := exists(tx, &models.Category{}, *body.CategoryID)
			if err != nil {
				return err
			}
			if !ok {
				return invalidRef("category_id")
			}
			item.CategoryID = *body.CategoryID
		}
		return tx.Omit("Category", "RecipeIngredients").Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return GetItem(id)
}

func DeleteItem(id uint) error {
	return deleteByID(&models.Item{}, id, "item", "id")
}

func ListRecipeIngredients() ([]models.RecipeIngredient, error) {
	var ingredients []models.RecipeIngredient
	err := db.GetDb().
		Preload("Item").
		Preload("Inventory").
		Order("id asc").
		Find(&ingredients).
		Error
	return ingredients, err
}

func GetRecipeIngredient(id uint) (*models.RecipeIngredient, error) {
	var ingredient models.RecipeIngredient
	err := db.GetDb().
		Scopes(scopes.WithID(id)).
		Preload("Item").
		Preload("Inventory").
		First(&ingredient).
		Error
	if err != nil {
		return nil, notFound(err, "recipe ingredient")
	}
	return &ingredient, nil
}

func checkRecipeRefs(tx *gorm.DB, itemID, inventoryID uint) error {
	verr := types.ValidationErrors{}
	ok, err := exists(tx, &models.Item{}, itemID)
	if err != nil {
		return err
	}
	if !ok {
		verr.Add("item_id", "The selected item id is invalid.")
	}
	ok, err = exists(tx, &models.Inventory{}, inventoryID)
	if err != nil {
		return err
	}
	if !ok {
		verr.Add("inventory_id", "The selected inventory id is invalid.")
	}
	return verr.Err()
}

func CreateRecipeIngredient(body *types.CreateRecipeIngredientRequestBody) (*models.RecipeIngredient, error) {
	ingredient := models.RecipeIngredient{
		ItemID:      body.ItemID,
		InventoryID: body.InventoryID,
		Quantity:    *body.Quantity,
		Unit:        body.Unit,
	}
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := checkRecipeRefs(tx, body.ItemID, body.InventoryID); err != nil {
			return err
		}
		return translateWriteError(tx.Create(&ingredient).Error, "inventory_id")
	})
	if err != nil {
		return nil, err
	}
	return GetRecipeIngredient(ingredient.ID)
}

func UpdateRecipeIngredient(id uint, body *types.UpdateRecipeIngredientRequestBody) (*models.RecipeIngredient, error) {
	err := db.GetDb().Transaction(func(tx *gorm.DB) error {
		var ingredient models.RecipeIngredient
		if err := tx.Scopes(scopes.WithID(id)).First(&ingredient).Error; err != nil {
			return notFound(err, "recipe ingredient")
		}
		if body.ItemID != nil {
			ingredient.ItemID = *body.ItemID
		}
		if body.InventoryID != nil {
			ingredient.InventoryID = *body.InventoryID
		}
		if body.Quantity != nil {
			ingredient.Quantity = *body.Quantity
		}
		if body.Unit != nil {
			ingredient.Unit = body.Unit
		}
		if err := checkRecipeRefs(tx, ingredient.ItemID, ingredient.InventoryID); err != nil {
			return err
		}
		return translateWriteError(tx.Omit("Item", "Inventory").Save(&ingredient).Error, "inventory_id")
	})
	if err != nil {
		return nil, err
	}
	return GetRecipeIngredient(id)
}

func DeleteRecipeIngredient(id uint) error {
	return deleteByID(&models.RecipeIngredient{}, id, "recipe ingredient", "id")
}

// deleteByID removes one row; field names the input blamed when other rows still reference it.
func deleteByID(model any, id uint, what, field string) error {
	res := db.GetDb().Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return translateWriteError(res.Error, field)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, types.ErrNotFound)
	}
	return nil
}
