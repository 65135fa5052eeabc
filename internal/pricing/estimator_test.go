package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateStandardMediumTruck(t *testing.T) {
	e := NewEstimator(func() int { return 250 })
	got := e.Estimate(150, "standard", "medium-truck")
	assert.Equal(t, 975, got.Cost)
	assert.Equal(t, "3-5 business days", got.DeliveryTime)
}

func TestEstimateServiceMultipliers(t *testing.T) {
	e := NewEstimator(func() int { return 250 })

	tests := []struct {
		service  string
		wantCost int
		wantTime string
	}{
		{"standard", 650, "3-5 business days"},
		{"express", 975, "1-2 business days"},
		{"overnight", 1300, "Next business day"},
		{"unknown", 650, "3-5 business days"},
		{"", 650, "3-5 business days"},
	}
	for _, tt := range tests {
		got := e.Estimate(100, tt.service, "medium-truck")
		assert.Equal(t, tt.wantCost, got.Cost, "service %q", tt.service)
		assert.Equal(t, tt.wantTime, got.DeliveryTime, "service %q", tt.service)
	}
}

func TestEstimateVehicleMultipliers(t *testing.T) {
	e := NewEstimator(nil)

	tests := []struct {
		vehicle  string
		wantCost int
	}{
		{"mini-truck", 500},
		{"medium-truck", 650},
		{"large-truck", 800},
		{"trailer", 1000},
		{"unknown", 650},
		{"", 650},
	}
	for _, tt := range tests {
		got := e.Estimate(100, "standard", tt.vehicle)
		assert.Equal(t, tt.wantCost, got.Cost, "vehicle %q", tt.vehicle)
	}
}

func TestEstimateRoundsToNearest(t *testing.T) {
	e := NewEstimator(nil)
	// 7 * 5 * 1.5 * 1.3 = 68.25 -> 68
	assert.Equal(t, 68, e.Estimate(7, "express", "medium-truck").Cost)
	// 9 * 5 * 1.5 * 1.3 = 87.75 -> 88
	assert.Equal(t, 88, e.Estimate(9, "express", "medium-truck").Cost)
}

func TestDistanceUsesInjectedSource(t *testing.T) {
	e := NewEstimator(func() int { return 321 })
	assert.Equal(t, 321, e.Distance())
}

func TestRandomDistanceRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		d := RandomDistance()
		assert.GreaterOrEqual(t, d, 100)
		assert.Less(t, d, 600)
	}
}
