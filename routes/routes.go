package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/levelup/levelup-api/controllers"
	"github.com/levelup/levelup-api/middleware"
)

func SetupRoutes(r *gin.Engine) {
	// ----------------------
	// Auth routes (public)
	// ----------------------
	r.POST("/register", controllers.Register) // Register gamer, returns token
	r.POST("/login", controllers.Login)       // Authenticate, returns token

	authed := r.Group("/", middleware.Authenticate())

	// ----------------------
	// GameType routes
	// ----------------------
	authed.GET("/gametypes", controllers.ListGameTypes)    // List all game types
	authed.GET("/gametypes/:id", controllers.GetGameType)  // Get single game type

	// ----------------------
	// Game routes
	// ----------------------
	authed.GET("/games", controllers.ListGames)   // List games, ?type= filter
	authed.GET("/games/:id", controllers.GetGame) // Get single game, expanded
	authed.POST("/games", controllers.CreateGame) // Register a game

	// ----------------------
	// Event routes
	// ----------------------
	authed.GET("/events", controllers.ListEvents)                // List events, ?game= filter
	authed.GET("/events/:id", controllers.GetEvent)              // Get single event
	authed.POST("/events", controllers.CreateEvent)              // Schedule an event
	authed.PUT("/events/:id", controllers.UpdateEvent)           // Replace an event
	authed.DELETE("/events/:id", controllers.DeleteEvent)        // Delete an event
	authed.POST("/events/:id/signup", controllers.SignupEvent)   // Join an event
	authed.DELETE("/events/:id/leave", controllers.LeaveEvent)   // Leave an event
}
