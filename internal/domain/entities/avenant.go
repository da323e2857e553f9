package entities

import "time"

// AvenantStatus represents the lifecycle of a persisted avenant.
//
// Drafts never reach storage: an avenant is persisted already signed and
// moves to SENT once the stakeholders were notified.
type AvenantStatus string

const (
	AvenantStatusSigned AvenantStatus = "SIGNED"
	AvenantStatusSent   AvenantStatus = "SENT"
)

// Avenant is a signed contract amendment persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (chantier_id-index): chantier_id
//
// Only the pricing branch matching Type is stored; the other pointers stay nil.
type Avenant struct {
	ID              string        `json:"id"`
	ChantierID      string        `json:"chantier_id"`
	Description     string        `json:"description"`
	Type            PricingMode   `json:"type"`
	Price           *float64      `json:"price,omitempty"`
	Hours           *float64      `json:"hours,omitempty"`
	HourlyRate      *float64      `json:"hourly_rate,omitempty"`
	TotalHT         float64       `json:"total_ht"`
	PhotoURL        string        `json:"photo_url"`
	SignatureData   string        `json:"signature_data"`
	SignatureDigest string        `json:"signature_digest"`
	ContentDigest   string        `json:"content_digest"`
	SignedAt        time.Time     `json:"signed_at"`
	Status          AvenantStatus `json:"status"`
	Recipients      []string      `json:"recipients,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Pricing rebuilds the tagged pricing branch from the stored columns.
func (a Avenant) Pricing() Pricing {
	switch a.Type {
	case PricingModeFixedPrice:
		return FixedPrice{Amount: deref(a.Price)}
	case PricingModeTimeAndMaterials:
		return TimeAndMaterials{Hours: deref(a.Hours), HourlyRate: deref(a.HourlyRate)}
	}
	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
