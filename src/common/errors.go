package common

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindBadRequest
	KindInternal
)

// Error is the closed error taxonomy the services return. The boundary
// translator below is the only place kinds become HTTP status codes.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause.Error())
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func BadRequestf(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}

// KindOf reports the taxonomy kind of err. Anything outside the closed
// set, including raw store errors, is internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func statusOf(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// AbortWithError translates a service error into the uniform
// {message, status} JSON shape. Internal causes are logged server-side
// and never exposed to the client.
func AbortWithError(ctx *gin.Context, err error) {
	kind := KindOf(err)
	status := statusOf(kind)
	message := err.Error()
	if kind == KindInternal {
		log.Printf("internal error on %s %s: %s\n", ctx.Request.Method, ctx.Request.URL.Path, err.Error())
		message = "Something went wrong"
	}
	ctx.AbortWithStatusJSON(status, gin.H{"message": message, "status": status})
}
