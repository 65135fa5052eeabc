package handlers

import (
	"math/rand"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swastik-transport-api-server/internal/refid"
)

func validBookingBody() gin.H {
	return gin.H{
		"senderName":      "John Doe",
		"senderPhone":     "+91 9876543210",
		"pickupAddress":   "123 Business Park, Mumbai",
		"deliveryAddress": "456 Industrial Area, Delhi",
		"cargoWeight":     100,
		"cargoType":       "general",
		"vehicleType":     "medium-truck",
		"pickupDate":      "2026-09-15",
		"deliveryType":    "standard",
	}
}

func newBookingRouter(store *fakeBookingStore, hub *fakeNotifier) *gin.Engine {
	handler := &BookingHandler{
		Store: store,
		Refs:  refid.NewWithRand(rand.New(rand.NewSource(1))),
		Hub:   hub,
	}
	router := gin.New()
	router.POST("/api/transport-booking", handler.CreateBooking)
	return router
}

func TestCreateBookingSeedsTrackingEvent(t *testing.T) {
	store := &fakeBookingStore{}
	hub := &fakeNotifier{}
	router := newBookingRouter(store, hub)

	w := performJSON(t, router, http.MethodPost, "/api/transport-booking", validBookingBody())

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Regexp(t, `^BK\d{6}$`, body["bookingId"])
	assert.Regexp(t, `^TRK\d{6}$`, body["trackingNumber"])

	require.Len(t, store.calls, 1, "booking and seed event form one unit of work")
	call := store.calls[0]
	assert.Equal(t, body["bookingId"], call.booking.BookingID)
	assert.Equal(t, call.booking.TrackingNumber, call.seed.TrackingNumber)
	assert.Equal(t, "Booked", call.seed.Status)
	assert.Equal(t, "Booking confirmed", call.seed.Location)
	assert.Equal(t, "Transport booking confirmed", call.seed.Notes)

	require.Len(t, hub.messages, 1)
	assert.Contains(t, string(hub.messages[0]), call.seed.TrackingNumber)
}

func TestCreateBookingMissingField(t *testing.T) {
	store := &fakeBookingStore{}
	router := newBookingRouter(store, &fakeNotifier{})

	body := validBookingBody()
	delete(body, "senderPhone")
	w := performJSON(t, router, http.MethodPost, "/api/transport-booking", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.calls)
}

func TestCreateBookingRejectsNonPositiveWeight(t *testing.T) {
	store := &fakeBookingStore{}
	router := newBookingRouter(store, &fakeNotifier{})

	body := validBookingBody()
	body["cargoWeight"] = -5
	w := performJSON(t, router, http.MethodPost, "/api/transport-booking", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.calls)
}
