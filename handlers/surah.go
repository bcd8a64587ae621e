package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tahfidz/models"
)

// GetSurahsHandler serves the juz 30 catalog the request form picks from
func GetSurahsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.Juz30Surahs)
}

// HealthHandler is a liveness probe
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
