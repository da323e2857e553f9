package draft

import (
	"errors"
	"strings"

	"chantierplus/internal/domain/entities"
)

// ErrValidationBlocked is returned when a signature is offered for a draft
// that cannot be signed yet.
var ErrValidationBlocked = errors.New("signing blocked: draft incomplete")

// Mutation reports the side effects of a field update.
type Mutation struct {
	Field              Field
	SignatureDiscarded bool
}

// Mutate sets one field to a raw value.
//
// A signature attests to the whole visible content, so any update of a field
// drops it, even when the draft stays complete. Unknown fields leave the draft
// untouched.
func Mutate(d Draft, f Field, value string) (Draft, Mutation) {
	m := Mutation{Field: f}
	switch f {
	case FieldDescription:
		d.Description = value
	case FieldPricingMode:
		d.Mode = entities.PricingMode(value)
	case FieldFixedPrice:
		d.FixedPrice = value
	case FieldHours:
		d.Hours = value
	case FieldHourlyRate:
		d.HourlyRate = value
	case FieldPhotoRef:
		d.PhotoRef = value
	default:
		return d, m
	}
	if d.Signature != nil {
		d.Signature = nil
		m.SignatureDiscarded = true
	}
	return d, m
}

// AppendDescription merges dictated text into the current description.
func AppendDescription(d Draft, text string) (Draft, Mutation) {
	text = strings.TrimSpace(text)
	if text == "" {
		return d, Mutation{Field: FieldDescription}
	}
	merged := text
	if d.Description != "" {
		merged = d.Description + " " + text
	}
	return Mutate(d, FieldDescription, merged)
}

// Sign attaches a captured signature, stamped with the digest of the content
// it attests to. A nil artifact (empty canvas) leaves the draft unsigned.
func Sign(d Draft, artifact *entities.SignatureArtifact) (Draft, error) {
	if !CanSign(d) {
		return d, ErrValidationBlocked
	}
	if artifact == nil {
		return d, nil
	}
	signed := *artifact
	signed.ContentDigest = ContentDigest(d)
	d.Signature = &signed
	return d, nil
}

// ClearSignature drops the signature. It never fails.
func ClearSignature(d Draft) Draft {
	d.Signature = nil
	return d
}
