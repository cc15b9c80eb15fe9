package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"usd with cents", 1234.56, "USD", "$1,234.56"},
		{"usd whole", 99, "USD", "$99.00"},
		{"eur grouping", 1234567.89, "EUR", "€1,234,567.89"},
		{"gbp small", 58, "GBP", "£58.00"},
		{"jpy no decimals", 68000, "JPY", "¥68,000"},
		{"idr no decimals", 1500000, "IDR", "IDR 1.500.000"},
		{"unknown code", 42.5, "AUD", "AUD 42.50"},
		{"negative", -1234.5, "USD", "-$1,234.50"},
		{"rounding", 10.006, "USD", "$10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount, tt.code))
		})
	}
}
