package models

import "time"

// TransportBooking is a confirmed transport order. Its tracking number is
// the key into the tracking event log; creating a booking seeds the first
// "Booked" event.
type TransportBooking struct {
	ID                  int64     `json:"id"`
	BookingID           string    `json:"bookingId"`
	TrackingNumber      string    `json:"trackingNumber"`
	SenderName          string    `json:"senderName"`
	SenderPhone         string    `json:"senderPhone"`
	PickupAddress       string    `json:"pickupAddress"`
	DeliveryAddress     string    `json:"deliveryAddress"`
	CargoWeight         int       `json:"cargoWeight"`
	CargoType           string    `json:"cargoType"`
	VehicleType         string    `json:"vehicleType"`
	PickupDate          string    `json:"pickupDate"`
	DeliveryType        string    `json:"deliveryType"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}
