package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/inshape-booking/internal/httpresp"
)

const livenessMessage = "Inshape AI Backend is running"

func Root(c *gin.Context) {
	httpresp.Text(c, livenessMessage)
}

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}
