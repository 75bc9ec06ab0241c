package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/levelup/levelup-api/config"
	"github.com/levelup/levelup-api/models"
)

// ListGameTypes returns every game type.
func ListGameTypes(c *gin.Context) {
	gameTypes := make([]models.GameType, 0)
	config.DB.Find(&gameTypes)
	c.JSON(http.StatusOK, gameTypes)
}

// GetGameType returns a single game type by id.
func GetGameType(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var gameType models.GameType
	if err := config.DB.First(&gameType, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "GameType matching query does not exist"})
		return
	}

	c.JSON(http.StatusOK, gameType)
}
