package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swastik-transport-api-server/internal/models"
)

func newAdminRouter(handler *AdminHandler) *gin.Engine {
	router := gin.New()
	admin := router.Group("/api/admin")
	admin.GET("/dashboard", handler.Dashboard)
	admin.GET("/quotes", handler.ListQuotes)
	admin.GET("/bookings", handler.ListBookings)
	admin.GET("/applications", handler.ListApplications)
	admin.GET("/messages", handler.ListMessages)
	admin.POST("/tracking", handler.AppendTracking)
	return router
}

func TestDashboardCounts(t *testing.T) {
	handler := &AdminHandler{
		Quotes:          &fakeQuoteStore{countValue: 12},
		ServiceRequests: &fakeServiceRequestStore{countValue: 3},
		Bookings:        &fakeBookingStore{countValue: 7},
		Applications:    &fakeApplicationStore{countValue: 4},
		Contacts:        &fakeContactStore{countValue: 9},
	}
	router := newAdminRouter(handler)

	w := performJSON(t, router, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(12), body["quotes"])
	assert.Equal(t, float64(7), body["bookings"])
	assert.Equal(t, float64(4), body["applications"])
	assert.Equal(t, float64(9), body["messages"])
}

func TestListQuotes(t *testing.T) {
	quotes := &fakeQuoteStore{inserted: []models.Quote{
		{QuoteID: "QT482913", Pickup: "Mumbai", Delivery: "Nagpur"},
	}}
	handler := &AdminHandler{
		Quotes:       quotes,
		Bookings:     &fakeBookingStore{},
		Applications: &fakeApplicationStore{},
		Contacts:     &fakeContactStore{},
	}
	router := newAdminRouter(handler)

	w := performJSON(t, router, http.MethodGet, "/api/admin/quotes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "QT482913")
}

func TestAppendTracking(t *testing.T) {
	tracking := &fakeTrackingStore{}
	hub := &fakeNotifier{}
	handler := &AdminHandler{Tracking: tracking, Hub: hub}
	router := newAdminRouter(handler)

	w := performJSON(t, router, http.MethodPost, "/api/admin/tracking", gin.H{
		"trackingNumber": "TRK482913",
		"status":         "In Transit",
		"location":       "Nagpur hub",
		"notes":          "Departed on schedule",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "TRK482913", body["trackingNumber"])

	require.Len(t, tracking.appended, 1)
	assert.Equal(t, "In Transit", tracking.appended[0].Status)

	require.Len(t, hub.messages, 1)
	assert.Contains(t, string(hub.messages[0]), "TRK482913")
}

func TestAppendTrackingMissingField(t *testing.T) {
	tracking := &fakeTrackingStore{}
	handler := &AdminHandler{Tracking: tracking}
	router := newAdminRouter(handler)

	w := performJSON(t, router, http.MethodPost, "/api/admin/tracking", gin.H{
		"trackingNumber": "TRK482913",
		"status":         "In Transit",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, tracking.appended)
}
