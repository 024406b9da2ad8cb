package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

func invoiceHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/invoices", staffOnly, func(ctx *gin.Context) {
			invoices, err := common.ListInvoices()
			if err != nil {
				utils.SendError(ctx, err, "Invoice")
				return
			}
			utils.SendSuccess(ctx, invoices, "All invoices retrieved successfully")
		}).
		GET("/invoices/order/:orderId", func(ctx *gin.Context) {
			var params types.OrderRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				utils.SendFail(ctx, http.StatusNotFound, "Invoice not found", nil)
				return
			}
			invoice, err := common.GetInvoiceByOrder(params.OrderID)
			if err != nil {
				utils.SendError(ctx, err, "Invoice")
				return
			}
			if invoice.Order != nil && !canAccess(ctx, invoice.Order.UserID) {
				forbidden(ctx)
				return
			}
			utils.SendSuccess(ctx, invoice, "Invoice retrieved successfully")
		}).
		POST("/invoices", staffOnly, func(ctx *gin.Context) {
			var body types.CreateInvoiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			invoice, err := common.CreateInvoice(&body)
			if err != nil {
				utils.SendError(ctx, err, "Invoice")
				return
			}
			utils.SendSuccess(ctx, invoice, "Invoice created successfully")
		}).
		GET("/invoices/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Invoice")
			if !ok {
				return
			}
			invoice, err := common.GetInvoice(id)
			if err != nil {
				utils.SendError(ctx, err, "Invoice")
				return
			}
			if invoice.Order != nil && !canAccess(ctx, invoice.Order.UserID) {
				forbidden(ctx)
				return
			}
			utils.SendSuccess(ctx, invoice, "Invoice retrieved successfully")
		}).
		PUT("/invoices/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Invoice")
			if !ok {
				return
			}
			var body types.UpdateInvoiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			invoice, err := common.UpdateInvoice(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Invoice")
				return
			}
			utils.SendSuccess(ctx, invoice, "Invoice updated successfully")
		}).
		POST("/invoices/:id/pay", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Invoice")
			if !ok {
				return
			}
			var body types.PayInvoiceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			invoice, err := common.PayInvoice(id, body.PaymentMethod)
			if err != nil {
				utils.SendError(ctx, err, "Invoice")
				return
			}
			utils.SendSuccess(ctx, invoice, "Invoice paid successfully")
		}).
		PUT("/invoices/:id/status", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Invoice")
			if !ok {
				return
			}
			var body types.InvoiceStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			invoice, err := common.UpdateInvoiceStatus(id, body.Status)
			if err != nil {
				utils.SendError(ctx, err, "Invoice")
				return
			}
			utils.SendSuccess(ctx, invoice, "Invoice status updated successfully")
		}).
		DELETE("/invoices/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Invoice")
			if !ok {
				return
			}
			if err := common.DeleteInvoice(id); err != nil {
				utils.SendError(ctx, err, "Invoice")
				return
			}
			utils.SendSuccess(ctx, nil, "Invoice deleted successfully")
		})
	return g
}
