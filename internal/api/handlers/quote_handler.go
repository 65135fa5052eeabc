// internal/api/handlers/quote_handler.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swastik-transport-api-server/internal/models"
	"swastik-transport-api-server/internal/pricing"
	"swastik-transport-api-server/internal/refid"
	"swastik-transport-api-server/internal/repository"
)

type QuoteHandler struct {
	Store     QuoteStore
	Refs      *refid.Generator
	Estimator *pricing.Estimator
}

type QuoteRequest struct {
	Pickup   string `json:"pickup" binding:"required"`
	Delivery string `json:"delivery" binding:"required"`
	Weight   int    `json:"weight" binding:"required,gt=0"`
	Service  string `json:"service" binding:"required"`
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	est := h.Estimator.Estimate(req.Weight, req.Service, "")
	quote := &models.Quote{
		QuoteID:       h.Refs.Generate("QT"),
		Pickup:        req.Pickup,
		Delivery:      req.Delivery,
		Weight:        req.Weight,
		Service:       req.Service,
		EstimatedCost: est.Cost,
		Distance:      h.Estimator.Distance(),
		DeliveryTime:  est.DeliveryTime,
	}

	err := h.Store.Insert(c.Request.Context(), quote)
	if errors.Is(err, repository.ErrDuplicate) {
		// Reference code collision; try once with a fresh one.
		quote.QuoteID = h.Refs.Generate("QT")
		err = h.Store.Insert(c.Request.Context(), quote)
	}
	if err != nil {
		log.Printf("Error saving quote: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quoteId":       quote.QuoteID,
		"estimatedCost": quote.EstimatedCost,
		"distance":      quote.Distance,
		"deliveryTime":  quote.DeliveryTime,
	})
}
