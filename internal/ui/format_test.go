package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		code string
		want string
	}{
		{"rupee profit", 50, "INR", "₹50.00"},
		{"rupee loss magnitude", 100, "INR", "₹100.00"},
		{"dollar", 425, "USD", "$425.00"},
		{"two-decimal rounding", 49.756, "INR", "₹49.76"},
		{"zero", 0, "INR", "₹0.00"},
		{"unknown code", 12.5, "XXX?", "12.50 XXX?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.v, tt.code))
		})
	}
}
