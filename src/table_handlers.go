package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"

	"github.com/gin-gonic/gin"
)

func tableHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/dining-tables", func(ctx *gin.Context) {
			tables, err := common.ListTables()
			if err != nil {
				utils.SendError(ctx, err, "Dining table")
				return
			}
			utils.SendSuccess(ctx, tables, "All dining tables retrieved successfully")
		}).
		POST("/dining-tables", staffOnly, func(ctx *gin.Context) {
			var body types.CreateTableRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			table, err := common.CreateTable(&body)
			if err != nil {
				utils.SendError(ctx, err, "Dining table")
				return
			}
			utils.SendSuccess(ctx, table, "Dining table created successfully")
		}).
		GET("/dining-tables/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Dining table")
			if !ok {
				return
			}
			table, err := common.GetTable(id)
			if err != nil {
				utils.SendError(ctx, err, "Dining table")
				return
			}
			utils.SendSuccess(ctx, table, "Dining table retrieved successfully")
		}).
		PUT("/dining-tables/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Dining table")
			if !ok {
				return
			}
			var body types.UpdateTableRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			table, err := common.UpdateTable(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Dining table")
				return
			}
			utils.SendSuccess(ctx, table, "Dining table updated successfully")
		}).
		DELETE("/dining-tables/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Dining table")
			if !ok {
				return
			}
			if err := common.DeleteTable(id); err != nil {
				utils.SendError(ctx, err, "Dining table")
				return
			}
			utils.SendSuccess(ctx, nil, "Dining table deleted successfully")
		})
	return g
}
