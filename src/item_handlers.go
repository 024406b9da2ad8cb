package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"

	"github.com/gin-gonic/gin"
)

func itemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/items", func(ctx *gin.Context) {
			items, err := common.ListItems()
			if err != nil {
				utils.SendError(ctx, err, "Item")
				return
			}
			utils.SendSuccess(ctx, items, "All items retrieved successfully")
		}).
		POST("/items", staffOnly, func(ctx *gin.Context) {
			var body types.CreateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			item, err := common.CreateItem(&body)
			if err != nil {
				utils.SendError(ctx, err, "Item")
				return
			}
			utils.SendSuccess(ctx, item, "Item created successfully")
		}).
		GET("/items/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Item")
			if !ok {
				return
			}
			item, err := common.GetItem(id)
			if err != nil {
				utils.SendError(ctx, err, "Item")
				return
			}
			utils.SendSuccess(ctx, item, "Item retrieved successfully")
		}).
		PUT("/items/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Item")
			if !ok {
				return
			}
			var body types.UpdateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			item, err := common.UpdateItem(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Item")
				return
			}
			utils.SendSuccess(ctx, item, "Item updated successfully")
		}).
		DELETE("/items/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Item")
			if !ok {
				return
			}
			if err := common.DeleteItem(id); err != nil {
				utils.SendError(ctx, err, "Item")
				return
			}
			utils.SendSuccess(ctx, nil, "Item deleted successfully")
		})
	return g
}

func recipeIngredientHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/recipe-ingredients", func(ctx *gin.Context) {
			ingredients, err := common.ListRecipeIngredients()
			if err != nil {
				utils.SendError(ctx, err, "Recipe ingredient")
				return
			}
			utils.SendSuccess(ctx, ingredients, "All recipe ingredients retrieved successfully")
		}).
		POST("/recipe-ingredients", staffOnly, func(ctx *gin.Context) {
			var body types.CreateRecipeIngredientRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			ingredient, err := common.CreateRecipeIngredient(&body)
			if err != nil {
				utils.SendError(ctx, err, "Recipe ingredient")
				return
			}
			utils.SendSuccess(ctx, ingredient, "Recipe ingredient created successfully")
		}).
		GET("/recipe-ingredients/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Recipe ingredient")
			if !ok {
				return
			}
			ingredient, err := common.GetRecipeIngredient(id)
			if err != nil {
				utils.SendError(ctx, err, "Recipe ingredient")
				return
			}
			utils.SendSuccess(ctx, ingredient, "Recipe ingredient retrieved successfully")
		}).
		PUT("/recipe-ingredients/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Recipe ingredient")
			if !ok {
				return
			}
			var body types.UpdateRecipeIngredientRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			ingredient, err := common.UpdateRecipeIngredient(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Recipe ingredient")
				return
			}
			utils.SendSuccess(ctx, ingredient, "Recipe ingredient updated successfully")
		}).
		DELETE("/recipe-ingredients/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Recipe ingredient")
			if !ok {
				return
			}
			if err := common.DeleteRecipeIngredient(id); err != nil {
				utils.SendError(ctx, err, "Recipe ingredient")
				return
			}
			utils.SendSuccess(ctx, nil, "Recipe ingredient deleted successfully")
		})
	return g
}
