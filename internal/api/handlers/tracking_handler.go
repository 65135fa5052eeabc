// internal/api/handlers/tracking_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swastik-transport-api-server/internal/repository"
)

type TrackingHandler struct {
	Store TrackingStore
}

type trackingHistoryEntry struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func (h *TrackingHandler) GetTracking(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")

	events, err := h.Store.History(c.Request.Context(), trackingNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tracking number not found"})
			return
		}
		log.Printf("Error fetching tracking info: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tracking information"})
		return
	}

	history := make([]trackingHistoryEntry, 0, len(events))
	for _, ev := range events {
		history = append(history, trackingHistoryEntry{
			Date:     ev.Timestamp.Format("2006-01-02"),
			Status:   ev.Status,
			Location: ev.Location,
			Notes:    ev.Notes,
		})
	}

	// The newest event defines the current state. Expected delivery is a
	// flat now+2d estimate, not derived from the log.
	latest := events[0]
	c.JSON(http.StatusOK, gin.H{
		"trackingNumber":   trackingNumber,
		"status":           latest.Status,
		"currentLocation":  latest.Location,
		"expectedDelivery": time.Now().Add(2 * 24 * time.Hour).Format("2006-01-02"),
		"history":          history,
	})
}
