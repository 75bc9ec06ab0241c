package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/levelup/levelup-api/config"
	"github.com/levelup/levelup-api/middleware"
	"github.com/levelup/levelup-api/models"
	"github.com/levelup/levelup-api/utils/logger"
)

type eventRequest struct {
	Description string `json:"description" binding:"required,max=40"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	GameID      uint   `json:"game_id" binding:"required"`
}

// eventDetail is the narrow projection used by retrieve, create and update.
type eventDetail struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	GameID      uint   `json:"game_id"`
	OrganizerID uint   `json:"organizer_id"`
}

// eventListItem is the wide projection used by list: raw foreign-key ids,
// attendee ids and the caller-specific joined flag.
type eventListItem struct {
	ID          uint   `json:"id"`
	Game        uint   `json:"game"`
	Organizer   uint   `json:"organizer"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Attendees   []uint `json:"attendees"`
	Joined      bool   `json:"joined"`
}

func newEventDetail(e models.Event) eventDetail {
	return eventDetail{
		ID:          e.ID,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		GameID:      e.GameID,
		OrganizerID: e.OrganizerID,
	}
}

// isJoined reports whether the gamer appears in the event's loaded attendees.
func isJoined(e models.Event, gamerID uint) bool {
	for _, a := range e.Attendees {
		if a.ID == gamerID {
			return true
		}
	}
	return false
}

func newEventListItem(e models.Event, callerID uint) eventListItem {
	attendees := make([]uint, 0, len(e.Attendees))
	for _, a := range e.Attendees {
		attendees = append(attendees, a.ID)
	}
	return eventListItem{
		ID:          e.ID,
		Game:        e.GameID,
		Organizer:   e.OrganizerID,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Attendees:   attendees,
		Joined:      isJoined(e, callerID),
	}
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// normalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func normalizeTime(s string) (string, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), true
		}
	}
	return "", false
}

// ListEvents returns all events, optionally filtered by ?game=<game_id>.
// Each item carries the joined flag computed for the caller.
func ListEvents(c *gin.Context) {
	query := config.DB.Preload("Attendees")

	if gameID := c.Query("game"); gameID != "" {
		query = query.Where("game_id = ?", gameID)
	}

	var events []models.Event
	query.Find(&events)

	gamer := middleware.CurrentGamer(c)
	items := make([]eventListItem, 0, len(events))
	for _, e := range events {
		items = append(items, newEventListItem(e, gamer.ID))
	}
	c.JSON(http.StatusOK, items)
}

// GetEvent returns a single event in narrow form.
func GetEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event matching query does not exist"})
		return
	}

	c.JSON(http.StatusOK, newEventDetail(event))
}

// CreateEvent schedules a new event organized by the authenticated gamer.
func CreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}
	eventTime, ok := normalizeTime(req.Time)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must be in HH:MM[:SS] format"})
		return
	}

	var game models.Game
	if err := config.DB.First(&game, req.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game matching query does not exist"})
		return
	}

	gamer := middleware.CurrentGamer(c)

	event := models.Event{
		Description: req.Description,
		Date:        req.Date,
		Time:        eventTime,
		GameID:      game.ID,
		OrganizerID: gamer.ID,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		logger.Errorf("create event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, newEventDetail(event))
}

// UpdateEvent replaces description, date, time and game of an event.
// The payload is validated in full before anything is written.
func UpdateEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event matching query does not exist"})
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}
	eventTime, ok := normalizeTime(req.Time)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must be in HH:MM[:SS] format"})
		return
	}

	var game models.Game
	if err := config.DB.First(&game, req.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Game matching query does not exist"})
		return
	}

	event.Description = req.Description
	event.Date = req.Date
	event.Time = eventTime
	event.GameID = game.ID
	if err := config.DB.Save(&event).Error; err != nil {
		logger.Errorf("update event %d: %v", event.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteEvent removes an event.
func DeleteEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event matching query does not exist"})
		return
	}

	if err := config.DB.Delete(&event).Error; err != nil {
		logger.Errorf("delete event %d: %v", event.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SignupEvent adds the authenticated gamer to the event's attendees.
// Signing up twice leaves a single attendance row.
func SignupEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event matching query does not exist"})
		return
	}

	gamer := middleware.CurrentGamer(c)
	if err := config.DB.Model(&event).Association("Attendees").Append(&gamer); err != nil {
		logger.Errorf("signup event %d gamer %d: %v", event.ID, gamer.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Gamer added"})
}

// LeaveEvent removes the authenticated gamer from the event's attendees.
// Leaving an event the gamer never joined is a no-op.
func LeaveEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event matching query does not exist"})
		return
	}

	gamer := middleware.CurrentGamer(c)
	if err := config.DB.Model(&event).Association("Attendees").Delete(&gamer); err != nil {
		logger.Errorf("leave event %d gamer %d: %v", event.ID, gamer.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave"})
		return
	}

	c.Status(http.StatusNoContent)
}
