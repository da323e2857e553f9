// Package draft holds the in-memory avenant being composed and the rules that
// decide when it can be signed and submitted.
//
// Every function here is pure: a Draft is a value, mutations return a new
// Draft, and nothing in the package performs I/O.
package draft

import "chantierplus/internal/domain/entities"

// Field names a user-editable field of a draft.
type Field string

const (
	FieldDescription Field = "description"
	FieldPricingMode Field = "pricing_mode"
	FieldFixedPrice  Field = "fixed_price"
	FieldHours       Field = "hours"
	FieldHourlyRate  Field = "hourly_rate"
	FieldPhotoRef    Field = "photo_ref"
)

// Fields lists the editable fields. All of them gate the signature.
var Fields = []Field{
	FieldDescription,
	FieldPricingMode,
	FieldFixedPrice,
	FieldHours,
	FieldHourlyRate,
	FieldPhotoRef,
}

func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Draft is the form state of an avenant under composition.
//
// Pricing inputs are kept raw, as typed by the user, for both branches so that
// switching mode back and forth does not lose what was entered. Parsing happens
// in the evaluator. An empty PhotoRef means no photo.
type Draft struct {
	ID         string
	ChantierID string
	Recipients []string

	Description string
	Mode        entities.PricingMode
	FixedPrice  string
	Hours       string
	HourlyRate  string
	PhotoRef    string

	Signature *entities.SignatureArtifact
}

// New returns an empty draft for a chantier. Fixed price is the default mode.
func New(id, chantierID string, recipients []string) Draft {
	return Draft{
		ID:         id,
		ChantierID: chantierID,
		Recipients: recipients,
		Mode:       entities.PricingModeFixedPrice,
	}
}

func (d Draft) Signed() bool {
	return d.Signature != nil
}

// Value returns the raw value of a field.
func (d Draft) Value(f Field) string {
	switch f {
	case FieldDescription:
		return d.Description
	case FieldPricingMode:
		return string(d.Mode)
	case FieldFixedPrice:
		return d.FixedPrice
	case FieldHours:
		return d.Hours
	case FieldHourlyRate:
		return d.HourlyRate
	case FieldPhotoRef:
		return d.PhotoRef
	}
	return ""
}
