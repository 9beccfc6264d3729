package main

import (
	"encoding/json"
	"log"
	"net/http"

	"odyssey/src/common"
	"odyssey/src/services"
	"odyssey/src/types"

	"github.com/gin-gonic/gin"
)

func packageHandlers(g *gin.RouterGroup, svc *services.PackageService) *gin.RouterGroup {
	g.
		POST("/packages", func(ctx *gin.Context) {
			// multipart: "data" carries the package JSON, "image" the binary
			data := ctx.PostForm("data")
			var body types.CreatePackageRequestBody
			if err := json.Unmarshal([]byte(data), &body); err != nil {
				log.Printf("Error parsing package data: %s\n", err.Error())
				common.AbortWithError(ctx, common.Internal("invalid package data", err))
				return
			}
			fh, err := ctx.FormFile("image")
			if err != nil {
				log.Printf("Error reading image part: %s\n", err.Error())
				common.AbortWithError(ctx, common.Internal("missing image", err))
				return
			}
			file, err := fh.Open()
			if err != nil {
				common.AbortWithError(ctx, common.Internal("could not open image", err))
				return
			}
			defer file.Close()

			if _, err := svc.Submit(ctx, body, file, fh.Header.Get("Content-Type")); err != nil {
				common.AbortWithError(ctx, common.Internal("could not submit package", err))
				return
			}
			ctx.String(http.StatusOK, "Package submitted for admin approval")
		}).
		GET("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				common.AbortWithError(ctx, common.BadRequestf("invalid package id"))
				return
			}
			pkg, err := svc.FindByID(params.ID)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, pkg)
		}).
		GET("/packages/agent/:agentId", func(ctx *gin.Context) {
			agentId, ok := uintParam(ctx, "agentId")
			if !ok {
				return
			}
			pkgs, err := svc.ByAgent(agentId)
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, pkgs)
		}).
		GET("/packages", func(ctx *gin.Context) {
			pkgs, err := svc.ApprovedActive()
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, pkgs)
		}).
		GET("/packages/admin/pending", func(ctx *gin.Context) {
			pkgs, err := svc.Pending()
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, pkgs)
		}).
		POST("/packages/:id/status/:status", func(ctx *gin.Context) {
			id, ok := uintParam(ctx, "id")
			if !ok {
				return
			}
			status, err := svc.UpdateStatus(id, ctx.Param("status"))
			if err != nil {
				common.AbortWithError(ctx, err)
				return
			}
			ctx.String(http.StatusOK, "Status updated: %s", status)
		})
	return g
}
