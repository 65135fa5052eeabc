// internal/api/handlers/admin_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swastik-transport-api-server/internal/models"
)

const adminListLimit = 50

type AdminHandler struct {
	Quotes          QuoteStore
	ServiceRequests ServiceRequestStore
	Bookings        BookingStore
	Applications    ApplicationStore
	Contacts        ContactStore
	Tracking        TrackingStore
	Hub             Notifier
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	quotes, err := h.Quotes.Count(ctx)
	if err != nil {
		log.Printf("Error counting quotes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	bookings, err := h.Bookings.Count(ctx)
	if err != nil {
		log.Printf("Error counting bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	applications, err := h.Applications.Count(ctx)
	if err != nil {
		log.Printf("Error counting applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	messages, err := h.Contacts.Count(ctx)
	if err != nil {
		log.Printf("Error counting messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quotes":       quotes,
		"bookings":     bookings,
		"applications": applications,
		"messages":     messages,
	})
}

func (h *AdminHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.Quotes.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		log.Printf("Error listing quotes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotes"})
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) ListApplications(c *gin.Context) {
	applications, err := h.Applications.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		log.Printf("Error listing applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := h.Contacts.ListRecent(c.Request.Context(), adminListLimit)
	if err != nil {
		log.Printf("Error listing messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

type AppendTrackingRequest struct {
	TrackingNumber string `json:"trackingNumber" binding:"required"`
	Status         string `json:"status" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Notes          string `json:"notes"`
}

// AppendTracking adds an event to a shipment's log and pushes it to
// websocket subscribers.
func (h *AdminHandler) AppendTracking(c *gin.Context) {
	var req AppendTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := &models.TrackingEvent{
		TrackingNumber: req.TrackingNumber,
		Status:         req.Status,
		Location:       req.Location,
		Notes:          req.Notes,
	}
	if err := h.Tracking.Append(c.Request.Context(), event); err != nil {
		log.Printf("Error appending tracking event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tracking"})
		return
	}

	if h.Hub != nil {
		if payload, err := json.Marshal(event); err == nil {
			h.Hub.Broadcast(payload)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "trackingNumber": event.TrackingNumber})
}
