package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request!",
	http.StatusNotFound:            "resource not found!",
	http.StatusMethodNotAllowed:    "method not allowed!",
	http.StatusUnprocessableEntity: "unprocessable!",
	http.StatusInternalServerError: "internal server error!",
}

// abortWithError stops the chain and writes the error envelope for status.
// err, when set, is attached to the context for the request log only.
func abortWithError(c *gin.Context, status int, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	message, ok := errorMessages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = errorMessages[status]
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

func NoRoute(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, nil)
}

func NoMethod(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed, nil)
}

// Recovered is a gin.RecoveryFunc that answers a panic with the 500 envelope.
func Recovered(c *gin.Context, recovered any) {
	abortWithError(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", recovered))
}
