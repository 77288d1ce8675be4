package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the service is up.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "billing backend is running")
}
