package handlers

import (
	"time"

	"github.com/code-100-precent/LingDrill/pkg/response"
	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Health handles GET /system/health.
func Health(c *gin.Context) {
	response.Success(c, "ok", gin.H{
		"status": "healthy",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}
