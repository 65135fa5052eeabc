// internal/api/handlers/service_request_handler.go
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

type ServiceRequestHandler struct {
	Store ServiceRequestStore
	Refs  *refid.Generator
}

type ServiceRequestRequest struct {
	CompanyName   string `json:"companyName" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	ServiceType   string `json:"serviceType" binding:"required"`
	Requirements  string `json:"requirements"`
}

func (h *ServiceRequestHandler) CreateServiceRequest(c *gin.Context) {
	var req ServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := &models.ServiceRequest{
		RequestID:     h.Refs.Generate("SR"),
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		Requirements:  req.Requirements,
	}

	err := h.Store.Insert(c.Request.Context(), request)
	if errors.Is(err, repository.ErrDuplicate) {
		request.RequestID = h.Refs.Generate("SR")
		err = h.Store.Insert(c.Request.Context(), request)
	}
	if err != nil {
		log.Printf("Error saving service request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requestId": request.RequestID})
}
