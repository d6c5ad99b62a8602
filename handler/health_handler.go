package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"main/utils"
)

var startedAt = time.Now()

// HealthHandler reports liveness plus basic host readings.
func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(startedAt).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
