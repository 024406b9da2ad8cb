package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"

	"github.com/gin-gonic/gin"
)

func inventoryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/inventory", func(ctx *gin.Context) {
			stock, err := common.ListInventory()
			if err != nil {
				utils.SendError(ctx, err, "Inventory")
				return
			}
			utils.SendSuccess(ctx, stock, "Inventory retrieved successfully")
		}).
		GET("/inventory/low-stock", func(ctx *gin.Context) {
			stock, err := common.ListLowStock()
			if err != nil {
				utils.SendError(ctx, err, "Inventory")
				return
			}
			utils.SendSuccess(ctx, stock, "Low stock inventory retrieved successfully")
		}).
		POST("/inventory", staffOnly, func(ctx *gin.Context) {
			var body types.CreateInventoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			inv, err := common.CreateInventory(&body)
			if err != nil {
				utils.SendError(ctx, err, "Inventory")
				return
			}
			utils.SendSuccess(ctx, inv, "Inventory item created successfully")
		}).
		GET("/inventory/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Inventory item")
			if !ok {
				return
			}
			inv, err := common.GetInventory(id)
			if err != nil {
				utils.SendError(ctx, err, "Inventory item")
				return
			}
			utils.SendSuccess(ctx, inv, "Inventory item retrieved successfully")
		}).
		PUT("/inventory/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Inventory item")
			if !ok {
				return
			}
			var body types.UpdateInventoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			inv, err := common.UpdateInventory(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Inventory item")
				return
			}
			utils.SendSuccess(ctx, inv, "Inventory item updated successfully")
		}).
		DELETE("/inventory/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Inventory item")
			if !ok {
				return
			}
			if err := common.DeleteInventory(id); err != nil {
				utils.SendError(ctx, err, "Inventory item")
				return
			}
			utils.SendSuccess(ctx, nil, "Inventory item deleted successfully")
		})
	return g
}
