package main

import (
	"net/http"

	"odyssey/src/common"
	"odyssey/src/services"
	"odyssey/src/types"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup, svc *services.BookingService) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				common.AbortWithBindingError(ctx, err)
				return
			}
			booking, err := svc.Create(body)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, booking)
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				common.AbortWithError(ctx, common.BadRequestf("invalid booking id"))
				return
			}
			booking, err := svc.FindByID(params.ID)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		GET("/bookings/user/:userId", func(ctx *gin.Context) {
			userId, ok := uintParam(ctx, "userId")
			if !ok {
				return
			}
			bookings, err := svc.ByUser(userId)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		}).
		GET("/bookings/agent/:agentId", func(ctx *gin.Context) {
			agentId, ok := uintParam(ctx, "agentId")
			if !ok {
				return
			}
			bookings, err := svc.ByAgent(agentId)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		})
	return g
}
