package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/levelup/levelup-api/config"
	"github.com/levelup/levelup-api/models"
	"github.com/levelup/levelup-api/utils/logger"
)

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user, its gamer profile and an auth token.
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := config.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:  req.Username,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		logger.Errorf("register: create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	gamer := models.Gamer{UserID: user.ID, Bio: req.Bio}
	if err := config.DB.Create(&gamer).Error; err != nil {
		logger.Errorf("register: create gamer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create gamer"})
		return
	}

	token := models.AuthToken{Key: uuid.NewString(), UserID: user.ID}
	if err := config.DB.Create(&token).Error; err != nil {
		logger.Errorf("register: create token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token.Key})
}

// Login checks credentials and returns the user's token.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	var token models.AuthToken
	if err := config.DB.Where("user_id = ?", user.ID).First(&token).Error; err != nil {
		token = models.AuthToken{Key: uuid.NewString(), UserID: user.ID}
		if err := config.DB.Create(&token).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "token": token.Key})
}
