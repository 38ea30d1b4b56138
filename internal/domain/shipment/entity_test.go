package shipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCost(t *testing.T) {
	cases := []struct {
		weightKg float64
		want     string
	}{
		{2.5, "25.00"},
		{0.1, "1.00"},
		{1, "10.00"},
		{0.15, "1.50"},
		{3.333, "33.33"},
		{100, "1000.00"},
	}

	for _, tc := range cases {
		got := EstimateCost(tc.weightKg)
		assert.Equal(t, tc.want, got.StringFixed(2), "weight %v kg", tc.weightKg)
	}
}
