package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AbortWithBindingError answers 400 for malformed or invalid request
// bodies. Field validation failures come back as a field-to-message map.
func AbortWithBindingError(ctx *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldName(fe)] = validationMessage(fe)
		}
		ctx.AbortWithStatusJSON(http.StatusBadRequest, fields)
		return
	}
	ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": "Invalid request body: " + err.Error(),
		"status":  http.StatusBadRequest,
	})
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	return strings.ToLower(name[:1]) + name[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "traveldate":
		return "must be a date in YYYY-MM-DD format"
	}
	return "is invalid"
}
