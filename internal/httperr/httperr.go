package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the only error body this service returns.
type HTTPError struct {
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Message: message,
	})
}

func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Abort(c, http.StatusUnauthorized, message)
}
