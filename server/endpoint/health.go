package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// startTime records when the process started for uptime calculation.
var startTime = time.Now()

// Health reports that the service is up.
func Health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   serviceName,
			"uptime":    time.Since(startTime).Round(time.Second).String(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
