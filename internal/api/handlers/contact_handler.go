// internal/api/handlers/contact_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swastik-transport-api-server/internal/models"
	"swastik-transport-api-server/internal/refid"
	"swastik-transport-api-server/internal/repository"
)

type ContactHandler struct {
	Store ContactStore
	Refs  *refid.Generator
}

// Field names follow the contact form on the website.
type ContactRequest struct {
	ContactName    string `json:"contactName" binding:"required"`
	ContactEmail   string `json:"contactEmail" binding:"required,email"`
	ContactPhone   string `json:"contactPhone" binding:"required"`
	ContactSubject string `json:"contactSubject" binding:"required"`
	ContactCompany string `json:"contactCompany"`
	ContactMessage string `json:"contactMessage" binding:"required"`
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := &models.ContactMessage{
		TicketID: h.Refs.Generate("TKT"),
		Name:     req.ContactName,
		Email:    req.ContactEmail,
		Phone:    req.ContactPhone,
		Subject:  req.ContactSubject,
		Company:  req.ContactCompany,
		Message:  req.ContactMessage,
	}

	err := h.Store.Insert(c.Request.Context(), message)
	if errors.Is(err, repository.ErrDuplicate) {
		message.TicketID = h.Refs.Generate("TKT")
		err = h.Store.Insert(c.Request.Context(), message)
	}
	if err != nil {
		log.Printf("Error saving contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticketId": message.TicketID})
}
