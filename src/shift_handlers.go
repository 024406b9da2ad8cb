package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"

	"github.com/gin-gonic/gin"
)

func shiftHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/shifts", func(ctx *gin.Context) {
			shifts, err := common.ListShifts()
			if err != nil {
				utils.SendError(ctx, err, "Shift")
				return
			}
			utils.SendSuccess(ctx, shifts, "All shifts retrieved successfully")
		}).
		GET("/shifts/my-shifts", func(ctx *gin.Context) {
			assignments, err := common.UserShifts(ctx.GetUint("id"))
			if err != nil {
				utils.SendError(ctx, err, "Shift")
				return
			}
			utils.SendSuccess(ctx, assignments, "My shifts retrieved successfully")
		}).
		POST("/shifts", adminOnly, func(ctx *gin.Context) {
			var body types.CreateShiftRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			shift, err := common.CreateShift(&body)
			if err != nil {
				utils.SendError(ctx, err, "Shift")
				return
			}
			utils.SendSuccess(ctx, shift, "Shift created successfully")
		}).
		GET("/shifts/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Shift")
			if !ok {
				return
			}
			shift, err := common.GetShift(id)
			if err != nil {
				utils.SendError(ctx, err, "Shift")
				return
			}
			utils.SendSuccess(ctx, shift, "Shift details retrieved successfully")
		}).
		PUT("/shifts/:id", adminOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Shift")
			if !ok {
				return
			}
			var body types.UpdateShiftRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			shift, err := common.UpdateShift(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Shift")
				return
			}
			utils.SendSuccess(ctx, shift, "Shift updated successfully")
		}).
		DELETE("/shifts/:id", adminOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Shift")
			if !ok {
				return
			}
			if err := common.DeleteShift(id); err != nil {
				utils.SendError(ctx, err, "Shift")
				return
			}
			utils.SendSuccess(ctx, nil, "Shift deleted successfully")
		})
	return g
}
