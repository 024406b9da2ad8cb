package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"
	"time"

	"github.com/gin-gonic/gin"
)

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reservations", staffOnly, func(ctx *gin.Context) {
			reservations, err := common.ListReservations()
			if err != nil {
				utils.SendError(ctx, err, "Reservation")
				return
			}
			utils.SendSuccess(ctx, reservations, "All reservations retrieved successfully")
		}).
		GET("/my-reservation", func(ctx *gin.Context) {
			reservations, err := common.UserReservations(ctx.GetUint("id"))
			if err != nil {
				utils.SendError(ctx, err, "Reservation")
				return
			}
			utils.SendSuccess(ctx, reservations, "My reservations retrieved successfully")
		}).
		GET("/update-statuses", func(ctx *gin.Context) {
			changed, err := common.RecomputeTableStatuses(time.Now())
			if err != nil {
				utils.SendError(ctx, err, "Dining table")
				return
			}
			utils.SendSuccess(ctx, gin.H{"updated": changed}, "Table statuses updated successfully")
		}).
		POST("/reservations", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			if !isStaff(ctx) {
				body.UserID = 0
			}
			reservation, err := common.CreateReservation(ctx.GetUint("id"), &body)
			if err != nil {
				utils.SendError(ctx, err, "Reservation")
				return
			}
			utils.SendSuccess(ctx, reservation, "Reservation created successfully")
		}).
		GET("/reservations/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Reservation")
			if !ok {
				return
			}
			reservation, err := common.GetReservation(id)
			if err != nil {
				utils.SendError(ctx, err, "Reservation")
				return
			}
			if !canAccess(ctx, reservation.UserID) {
				forbidden(ctx)
				return
			}
			utils.SendSuccess(ctx, reservation, "Reservation retrieved successfully")
		}).
		PUT("/reservations/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Reservation")
			if !ok {
				return
			}
			var body types.UpdateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			current, err := common.GetReservation(id)
			if err != nil {
				utils.SendError(ctx, err, "Reservation")
				return
			}
			if !canAccess(ctx, current.UserID) {
				forbidden(ctx)
				return
			}
			if !isStaff(ctx) {
				body.UserID = nil
			}
			reservation, err := common.UpdateReservation(id, &body, time.Now())
			if err != nil {
				utils.SendError(ctx, err, "Reservation")
				return
			}
			utils.SendSuccess(ctx, reservation, "Reservation updated successfully")
		}).
		DELETE("/reservations/:id", func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Reservation")
			if !ok {
				return
			}
			current, err := common.GetReservation(id)
			if err != nil {
				utils.SendError(ctx, err, "Reservation")
				return
			}
			if !canAccess(ctx, current.UserID) {
				forbidden(ctx)
				return
			}
			if err := common.DeleteReservation(id, time.Now()); err != nil {
				utils.SendError(ctx, err, "Reservation")
				return
			}
			utils.SendSuccess(ctx, nil, "Reservation deleted successfully")
		})
	return g
}
