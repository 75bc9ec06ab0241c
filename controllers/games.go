package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/levelup/levelup-api/config"
	"github.com/levelup/levelup-api/middleware"
	"github.com/levelup/levelup-api/models"
	"github.com/levelup/levelup-api/utils/logger"
)

// Pointer int fields so a legitimate 0 is distinguishable from absent.
type gameRequest struct {
	Title           string `json:"title" binding:"required,max=40"`
	Maker           string `json:"maker" binding:"required,max=25"`
	NumberOfPlayers *int   `json:"number_of_players" binding:"required"`
	SkillLevel      *int   `json:"skill_level" binding:"required"`
	GameTypeID      uint   `json:"game_type_id" binding:"required"`
}

// ListGames returns all games, optionally filtered by ?type=<game_type_id>.
// Game type and gamer are embedded in full rather than returned as ids.
func ListGames(c *gin.Context) {
	query := config.DB.Preload("GameType").Preload("Gamer").Preload("Gamer.User")

	if typeID := c.Query("type"); typeID != "" {
		query = query.Where("game_type_id = ?", typeID)
	}

	games := make([]models.Game, 0)
	query.Find(&games)
	c.JSON(http.StatusOK, games)
}

// GetGame returns a single game in expanded form.
func GetGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	err := config.DB.Preload("GameType").Preload("Gamer").Preload("Gamer.User").
		First(&game, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game matching query does not exist"})
		return
	}

	c.JSON(http.StatusOK, game)
}

// CreateGame registers a new game owned by the authenticated gamer.
// The gamer field always comes from the token, never from the payload.
func CreateGame(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var gameType models.GameType
	if err := config.DB.First(&gameType, req.GameTypeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "GameType matching query does not exist"})
		return
	}

	gamer := middleware.CurrentGamer(c)

	game := models.Game{
		Title:           req.Title,
		Maker:           req.Maker,
		NumberOfPlayers: *req.NumberOfPlayers,
		SkillLevel:      *req.SkillLevel,
		GameTypeID:      gameType.ID,
		GamerID:         gamer.ID,
	}
	if err := config.DB.Create(&game).Error; err != nil {
		logger.Errorf("create game: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	game.GameType = gameType
	game.Gamer = gamer
	c.JSON(http.StatusCreated, game)
}
