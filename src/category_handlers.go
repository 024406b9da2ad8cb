package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"

	"github.com/gin-gonic/gin"
)

func categoryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/categories", func(ctx *gin.Context) {
			categories, err := common.ListCategories()
			if err != nil {
				utils.SendError(ctx, err, "Category")
				return
			}
			utils.SendSuccess(ctx, categories, "All categories retrieved successfully")
		}).
		POST("/categories", staffOnly, func(ctx *gin.Context) {
			var body types.CategoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			category, err := common.CreateCategory(&body)
			if err != nil {
				utils.SendError(ctx, err, "Category")
				return
			}
			utils.SendSuccess(ctx, category, "Category created successfully")
		}).
		GET("/categories/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Category")
			if !ok {
				return
			}
			category, err := common.GetCategory(id)
			if err != nil {
				utils.SendError(ctx, err, "Category")
				return
			}
			utils.SendSuccess(ctx, category, "Category retrieved successfully")
		}).
		PUT("/categories/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Category")
			if !ok {
				return
			}
			var body types.CategoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			category, err := common.UpdateCategory(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Category")
				return
			}
			utils.SendSuccess(ctx, category, "Category updated successfully")
		}).
		DELETE("/categories/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Category")
			if !ok {
				return
			}
			if err := common.DeleteCategory(id); err != nil {
				utils.SendError(ctx, err, "Category")
				return
			}
			utils.SendSuccess(ctx, nil, "Category deleted successfully")
		})
	return g
}
