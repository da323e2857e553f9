package draft

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"chantierplus/internal/domain/entities"
)

// maxAmount is the largest total, in euros, an avenant can carry.
const maxAmount = 1e9

// Evaluation is everything a client needs to render the permission state.
type Evaluation struct {
	Complete bool
	CanSign  bool
	Total    float64
	Missing  []Field
	Signed   bool
}

func Evaluate(d Draft) Evaluation {
	missing := Missing(d)
	return Evaluation{
		Complete: len(missing) == 0,
		CanSign:  len(missing) == 0,
		Total:    Total(d),
		Missing:  missing,
		Signed:   d.Signed(),
	}
}

// Missing lists the fields that keep the draft from being complete, in form order.
func Missing(d Draft) []Field {
	var missing []Field
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, FieldDescription)
	}
	switch d.Mode {
	case entities.PricingModeFixedPrice:
		if amount, ok := positive(d.FixedPrice); !ok || !withinBounds(amount) {
			missing = append(missing, FieldFixedPrice)
		}
	case entities.PricingModeTimeAndMaterials:
		hours, okHours := positive(d.Hours)
		rate, okRate := positive(d.HourlyRate)
		if okHours && okRate && !withinBounds(hours*rate) {
			okHours, okRate = false, false
		}
		if !okHours {
			missing = append(missing, FieldHours)
		}
		if !okRate {
			missing = append(missing, FieldHourlyRate)
		}
	default:
		missing = append(missing, FieldPricingMode)
	}
	if d.PhotoRef == "" {
		missing = append(missing, FieldPhotoRef)
	}
	return missing
}

func IsComplete(d Draft) bool {
	return len(Missing(d)) == 0
}

func CanSign(d Draft) bool {
	return IsComplete(d)
}

// Total computes the amount excluding tax from the active branch.
//
// It runs on every keystroke: blank or garbage operands count as 0 instead of failing.
func Total(d Draft) float64 {
	switch d.Mode {
	case entities.PricingModeFixedPrice:
		return entities.RoundCents(amountOrZero(d.FixedPrice))
	case entities.PricingModeTimeAndMaterials:
		return entities.RoundCents(amountOrZero(d.Hours) * amountOrZero(d.HourlyRate))
	}
	return 0
}

// Pricing returns the active branch when all its fields are strictly positive.
func Pricing(d Draft) (entities.Pricing, bool) {
	switch d.Mode {
	case entities.PricingModeFixedPrice:
		amount, ok := positive(d.FixedPrice)
		if !ok || !withinBounds(amount) {
			return nil, false
		}
		return entities.FixedPrice{Amount: amount}, true
	case entities.PricingModeTimeAndMaterials:
		hours, okHours := positive(d.Hours)
		rate, okRate := positive(d.HourlyRate)
		if !okHours || !okRate || !withinBounds(hours*rate) {
			return nil, false
		}
		return entities.TimeAndMaterials{Hours: hours, HourlyRate: rate}, true
	}
	return nil, false
}

type attestedContent struct {
	Description string `json:"description"`
	Mode        string `json:"pricing_mode"`
	FixedPrice  string `json:"fixed_price,omitempty"`
	Hours       string `json:"hours,omitempty"`
	HourlyRate  string `json:"hourly_rate,omitempty"`
	PhotoRef    string `json:"photo_ref"`
}

// ContentDigest is the SHA-256 of the content a signature attests to:
// description, active pricing branch and photo.
func ContentDigest(d Draft) string {
	c := attestedContent{
		Description: d.Description,
		Mode:        string(d.Mode),
		PhotoRef:    d.PhotoRef,
	}
	switch d.Mode {
	case entities.PricingModeFixedPrice:
		c.FixedPrice = d.FixedPrice
	case entities.PricingModeTimeAndMaterials:
		c.Hours = d.Hours
		c.HourlyRate = d.HourlyRate
	}
	b, _ := json.Marshal(c)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// parseAmount accepts surrounding spaces and a decimal comma.
func parseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func positive(raw string) (float64, bool) {
	v, ok := parseAmount(raw)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// withinBounds rejects totals that cannot be held to the cent, overflow included.
func withinBounds(total float64) bool {
	return !math.IsInf(total, 0) && !math.IsNaN(total) && total <= maxAmount
}

func amountOrZero(raw string) float64 {
	v, _ := parseAmount(raw)
	return v
}
