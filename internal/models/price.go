package models

import (
	"math"

	"github.com/fauzanhilmi/travelmock/pkg/currency"
)

// Price carries an amount, its currency code and a display rendering.
// DisplayPrice is always derived from Amount and Currency via NewPrice;
// it is never set independently.
type Price struct {
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	DisplayPrice string  `json:"display_price"`
}

func NewPrice(amount float64, code string) Price {
	rounded := math.Round(amount*100) / 100
	return Price{
		Amount:       rounded,
		Currency:     code,
		DisplayPrice: currency.Format(rounded, code),
	}
}

// PriceBreakdown decomposes a nightly or total price. Total is always
// BasePrice + Taxes + Fees.
type PriceBreakdown struct {
	BasePrice float64 `json:"base_price"`
	Taxes     float64 `json:"taxes"`
	Fees      float64 `json:"fees"`
	Total     float64 `json:"total"`
}

// NewPriceBreakdown derives taxes (12%) and fees (5%) from the base and
// keeps the sum consistent with per-cent rounding.
func NewPriceBreakdown(base float64) PriceBreakdown {
	round := func(v float64) float64 { return math.Round(v*100) / 100 }
	b := round(base)
	taxes := round(b * 0.12)
	fees := round(b * 0.05)
	return PriceBreakdown{
		BasePrice: b,
		Taxes:     taxes,
		Fees:      fees,
		Total:     round(b + taxes + fees),
	}
}
