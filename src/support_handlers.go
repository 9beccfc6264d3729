package main

import (
	"net/http"

	"odyssey/src/common"
	"odyssey/src/services"
	"odyssey/src/types"

	"github.com/gin-gonic/gin"
)

func supportHandlers(g *gin.RouterGroup, svc *services.SupportService) *gin.RouterGroup {
	g.
		POST("/support", func(ctx *gin.Context) {
			var body types.RaiseTicketRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				common.AbortWithBindingError(ctx, err)
				return
			}
			ticket, err := svc.Raise(body)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, ticket)
		}).
		GET("/support/user/:userId", func(ctx *gin.Context) {
			userId, ok := uintParam(ctx, "userId")
			if !ok {
				return
			}
			tickets, err := svc.ByUser(userId)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, tickets)
		}).
		GET("/support/agent/:agentId", func(ctx *gin.Context) {
			agentId, ok := uintParam(ctx, "agentId")
			if !ok {
				return
			}
			tickets, err := svc.ByAgent(agentId)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, tickets)
		}).
		GET("/support/all", func(ctx *gin.Context) {
			tickets, err := svc.All()
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, tickets)
		}).
		PUT("/support/:ticketId/status/:status", func(ctx *gin.Context) {
			ticketId, ok := uintParam(ctx, "ticketId")
			if !ok {
				return
			}
			status, err := types.ParseTicketStatus(ctx.Param("status"))
			if err != nil {
				common.AbortWithError(ctx, common.BadRequestf("%s", err.Error()))
				return
			}
			ticket, err := svc.UpdateStatus(ticketId, status)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, ticket)
		})
	return g
}
