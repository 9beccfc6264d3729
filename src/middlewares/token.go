package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"odyssey/src/config"
	"odyssey/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// TokenMiddleware verifies the bearer token and puts the caller's
// identity on the request context.
func TokenMiddleware(ctx *gin.Context) {
	bearerToken := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer ") {
		err := errors.New("missing authorization header")
		log.Printf("Check failed: %s\n", err.Error())
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	reqToken := strings.TrimPrefix(bearerToken, "Bearer ")

	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return config.GetJWTSecret(), nil
	})
	if err != nil || !tkn.Valid {
		log.Printf("token error: %v\n", err)
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	uid, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	ctx.Set("id", uint(uid))
	ctx.Set("email", claims.Email)
	ctx.Set("role", claims.Role)
}
