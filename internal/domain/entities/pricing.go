package entities

import "math"

// PricingMode selects how an avenant is priced.
//
// Wire values are the ones used by the field teams: FORFAIT (fixed price)
// and REGIE (time and materials).
type PricingMode string

const (
	PricingModeFixedPrice       PricingMode = "FORFAIT"
	PricingModeTimeAndMaterials PricingMode = "REGIE"
)

func (m PricingMode) Valid() bool {
	return m == PricingModeFixedPrice || m == PricingModeTimeAndMaterials
}

// Pricing is the populated pricing branch of an avenant.
//
// Only FixedPrice and TimeAndMaterials implement it, so a value of this type
// always carries exactly one branch.
type Pricing interface {
	Mode() PricingMode
	Total() float64
	isPricing()
}

type FixedPrice struct {
	Amount float64
}

func (FixedPrice) Mode() PricingMode { return PricingModeFixedPrice }

func (p FixedPrice) Total() float64 { return RoundCents(p.Amount) }

func (FixedPrice) isPricing() {}

type TimeAndMaterials struct {
	Hours      float64
	HourlyRate float64
}

func (TimeAndMaterials) Mode() PricingMode { return PricingModeTimeAndMaterials }

func (p TimeAndMaterials) Total() float64 { return RoundCents(p.Hours * p.HourlyRate) }

func (TimeAndMaterials) isPricing() {}

// RoundCents rounds a monetary amount to two decimals.
func RoundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
