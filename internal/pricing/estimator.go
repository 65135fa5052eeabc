// Package pricing implements the fixed-multiplier cost formula used by
// the quote and booking calculators.
package pricing

import (
	"math"
	"math/rand"
)

const baseRatePerKg = 5

type Estimate struct {
	Cost         int
	DeliveryTime string
}

// Estimator pairs the pure cost formula with a pluggable distance
// source. Distance is simulated, not routed; tests inject a fixed value.
type Estimator struct {
	distance func() int
}

func NewEstimator(distance func() int) *Estimator {
	if distance == nil {
		distance = RandomDistance
	}
	return &Estimator{distance: distance}
}

// RandomDistance returns a simulated route length in [100, 600) km.
func RandomDistance() int {
	return rand.Intn(500) + 100
}

func (e *Estimator) Distance() int {
	return e.distance()
}

// Estimate computes cost = round(weight * 5 * serviceMult * vehicleMult).
// Unknown service strings fall back to the standard multiplier; unknown
// or empty vehicle strings fall back to the medium-truck multiplier.
func (e *Estimator) Estimate(weightKg int, service, vehicleType string) Estimate {
	serviceMultiplier := 1.0
	switch service {
	case "express":
		serviceMultiplier = 1.5
	case "overnight":
		serviceMultiplier = 2
	}

	vehicleMultiplier := 1.3
	switch vehicleType {
	case "mini-truck":
		vehicleMultiplier = 1
	case "medium-truck":
		vehicleMultiplier = 1.3
	case "large-truck":
		vehicleMultiplier = 1.6
	case "trailer":
		vehicleMultiplier = 2
	}

	cost := int(math.Round(float64(weightKg) * baseRatePerKg * serviceMultiplier * vehicleMultiplier))
	return Estimate{Cost: cost, DeliveryTime: deliveryTimeLabel(service)}
}

func deliveryTimeLabel(service string) string {
	switch service {
	case "express":
		return "1-2 business days"
	case "overnight":
		return "Next business day"
	default:
		return "3-5 business days"
	}
}
