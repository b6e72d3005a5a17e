package handlers

import (
	"net/http"

	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health with the latest monitored snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
