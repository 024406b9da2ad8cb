package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"

	"github.com/gin-gonic/gin"
)

func orderHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/orders", staffOnly, func(ctx *gin.Context) {
			orders, err := common.ListOrders()
			if err != nil {
				utils.SendError(ctx, err, "Order")
				return
			}
			utils.SendSuccess(ctx, orders, "All orders retrieved successfully")
		}).
		GET("/my-orders", func(ctx *gin.Context) {
			orders, err := common.UserOrders(ctx.GetUint("id"))
			if err != nil {
				utils.SendError(ctx, err, "Order")
				return
			}
			utils.SendSuccess(ctx, orders, "My orders retrieved successfully")
		}).
		POST("/orders", func(ctx *gin.Context) {
			var body types.CreateOrderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			if !isStaff(ctx) {
				body.UserID = 0
			}
			order, err := common.CreateOrder(ctx.GetUint("id"), &body)
			if err != nil {
				utils.SendError(ctx, err, "Order")
				return
			}
			utils.SendSuccess(ctx, order, "Order created successfully")
		}).
		GET("/orders/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Order")
			if !ok {
				return
			}
			order, err := common.GetOrder(id)
			if err != nil {
				utils.SendError(ctx, err, "Order")
				return
			}
			if !canAccess(ctx, order.UserID) {
				forbidden(ctx)
				return
			}
			utils.SendSuccess(ctx, order, "Order details retrieved successfully")
		}).
		PUT("/orders/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Order")
			if !ok {
				return
			}
			var body types.UpdateOrderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			current, err := common.GetOrder(id)
			if err != nil {
				utils.SendError(ctx, err, "Order")
				return
			}
			if !canAccess(ctx, current.UserID) {
				forbidden(ctx)
				return
			}
			order, err := common.UpdateOrder(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Order")
				return
			}
			utils.SendSuccess(ctx, order, "Order updated successfully")
		}).
		DELETE("/orders/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Order")
			if !ok {
				return
			}
			if err := common.DeleteOrder(id); err != nil {
				utils.SendError(ctx, err, "Order")
				return
			}
			utils.SendSuccess(ctx, nil, "Order deleted successfully")
		})
	return g
}
