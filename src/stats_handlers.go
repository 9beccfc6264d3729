package main

import (
	"net/http"

	"odyssey/src/common"
	"odyssey/src/services"

	"github.com/gin-gonic/gin"
)

func statsHandlers(g *gin.RouterGroup, svc *services.StatsService) *gin.RouterGroup {
	g.
		GET("/stats/admin", func(ctx *gin.Context) {
			stats, err := svc.AdminStats()
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, stats)
		}).
		GET("/stats/agent/:agentId", func(ctx *gin.Context) {
			agentId, ok := uintParam(ctx, "agentId")
			if !ok {
				return
			}
			stats, err := svc.AgentStats(agentId)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, stats)
		})
	return g
}
