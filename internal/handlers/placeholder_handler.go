package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/inshape-booking/internal/httpresp"
)

// Placeholder answers endpoints the booking widget already calls but that
// do no work yet. They acknowledge and return.
func Placeholder(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpresp.OK(c, gin.H{
			"status":  "ok",
			"message": name + " endpoint reached",
		})
	}
}
