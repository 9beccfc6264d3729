package main

import (
	"net/http"

	"odyssey/src/common"
	"odyssey/src/middlewares"
	"odyssey/src/services"
	"odyssey/src/types"

	"github.com/gin-gonic/gin"
)

func accountHandlers(g *gin.RouterGroup, svc *services.AccountService) *gin.RouterGroup {
	g.
		POST("/auth/register", func(ctx *gin.Context) {
			var body types.RegisterRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				common.AbortWithBindingError(ctx, err)
				return
			}
			user, err := svc.Register(body)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, user)
		}).
		POST("/auth/login", func(ctx *gin.Context) {
			var body types.LoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				common.AbortWithBindingError(ctx, err)
				return
			}
			session, err := svc.Login(ctx, body)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, session)
		}).
		GET("/auth/me", middlewares.TokenMiddleware, func(ctx *gin.Context) {
			user, err := svc.FindByID(ctx.GetUint("id"))
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		})
	return g
}
