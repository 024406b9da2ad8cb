package main

import (
	"cafe/src/common"
	"cafe/src/types"
	"cafe/src/utils"

	"github.com/gin-gonic/gin"
)

func staffHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/users/staff", staffOnly, func(ctx *gin.Context) {
			users, err := common.ListStaffUsers()
			if err != nil {
				utils.SendError(ctx, err, "Staff")
				return
			}
			utils.SendSuccess(ctx, users, "Staff users retrieved successfully")
		}).
		GET("/staff", staffOnly, func(ctx *gin.Context) {
			profiles, err := common.ListStaffProfiles()
			if err != nil {
				utils.SendError(ctx, err, "Staff profile")
				return
			}
			utils.SendSuccess(ctx, profiles, "All staff profiles retrieved successfully")
		}).
		POST("/staff", adminOnly, func(ctx *gin.Context) {
			var body types.CreateStaffProfileRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			profile, err := common.CreateStaffProfile(&body)
			if err != nil {
				utils.SendError(ctx, err, "Staff profile")
				return
			}
			utils.SendSuccess(ctx, profile, "Staff profile created successfully")
		}).
		GET("/staff/:id", staffOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Staff profile")
			if !ok {
				return
			}
			profile, err := common.GetStaffProfile(id)
			if err != nil {
				utils.SendError(ctx, err, "Staff profile")
				return
			}
			utils.SendSuccess(ctx, profile, "Staff profile retrieved successfully")
		}).
		PUT("/staff/:id", adminOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Staff profile")
			if !ok {
				return
			}
			var body types.UpdateStaffProfileRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				utils.SendBindError(ctx, err)
				return
			}
			profile, err := common.UpdateStaffProfile(id, &body)
			if err != nil {
				utils.SendError(ctx, err, "Staff profile")
				return
			}
			utils.SendSuccess(ctx, profile, "Staff profile updated successfully")
		}).
		DELETE("/staff/:id", adminOnly, func(ctx *gin.Context) {
			id, ok := bindID(ctx, "Staff profile")
			if !ok {
				return
			}
			if err := common.DeleteStaffProfile(id); err != nil {
				utils.SendError(ctx, err, "Staff profile")
				return
			}
			utils.SendSuccess(ctx, nil, "Staff profile deleted successfully")
		})
	return g
}
