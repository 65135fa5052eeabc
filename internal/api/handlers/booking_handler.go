// internal/api/handlers/booking_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"swastik-transport-api-server/internal/models"
	"swastik-transport-api-server/internal/refid"
	"swastik-transport-api-server/internal/repository"
)

type BookingHandler struct {
	Store BookingStore
	Refs  *refid.Generator
	Hub   Notifier
}

type BookingRequest struct {
	SenderName          string `json:"senderName" binding:"required"`
	SenderPhone         string `json:"senderPhone" binding:"required"`
	PickupAddress       string `json:"pickupAddress" binding:"required"`
	DeliveryAddress     string `json:"deliveryAddress" binding:"required"`
	CargoWeight         int    `json:"cargoWeight" binding:"required,gt=0"`
	CargoType           string `json:"cargoType" binding:"required"`
	VehicleType         string `json:"vehicleType" binding:"required"`
	PickupDate          string `json:"pickupDate" binding:"required"`
	DeliveryType        string `json:"deliveryType" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := &models.TransportBooking{
		BookingID:           h.Refs.Generate("BK"),
		TrackingNumber:      h.Refs.Generate("TRK"),
		SenderName:          req.SenderName,
		SenderPhone:         req.SenderPhone,
		PickupAddress:       req.PickupAddress,
		DeliveryAddress:     req.DeliveryAddress,
		CargoWeight:         req.CargoWeight,
		CargoType:           req.CargoType,
		VehicleType:         req.VehicleType,
		PickupDate:          req.PickupDate,
		DeliveryType:        req.DeliveryType,
		SpecialInstructions: req.SpecialInstructions,
	}
	seed := &models.TrackingEvent{
		TrackingNumber: booking.TrackingNumber,
		Status:         "Booked",
		Location:       "Booking confirmed",
		Notes:          "Transport booking confirmed",
	}

	err := h.Store.InsertWithTracking(c.Request.Context(), booking, seed)
	if errors.Is(err, repository.ErrDuplicate) {
		booking.BookingID = h.Refs.Generate("BK")
		booking.TrackingNumber = h.Refs.Generate("TRK")
		seed.TrackingNumber = booking.TrackingNumber
		err = h.Store.InsertWithTracking(c.Request.Context(), booking, seed)
	}
	if err != nil {
		log.Printf("Error saving booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book transport"})
		return
	}

	if h.Hub != nil {
		if payload, err := json.Marshal(seed); err == nil {
			h.Hub.Broadcast(payload)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bookingId":      booking.BookingID,
		"trackingNumber": booking.TrackingNumber,
	})
}
