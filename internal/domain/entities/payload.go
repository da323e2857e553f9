package entities

// AvenantPayload is the outbound amendment handed to the persistence collaborator.
//
// Total is informational; the raw pricing branch stays the source of truth.
type AvenantPayload struct {
	DraftID     string
	ChantierID  string
	Description string
	Pricing     Pricing
	Total       float64
	PhotoRef    string
	Signature   SignatureArtifact
	Recipients  []string
}

// ToAvenant flattens the payload into the persisted shape.
func (p AvenantPayload) ToAvenant(id string) Avenant {
	a := Avenant{
		ID:              id,
		ChantierID:      p.ChantierID,
		Description:     p.Description,
		TotalHT:         p.Total,
		PhotoURL:        p.PhotoRef,
		SignatureData:   p.Signature.DataURL(),
		SignatureDigest: p.Signature.Digest,
		ContentDigest:   p.Signature.ContentDigest,
		SignedAt:        p.Signature.CapturedAt,
		Status:          AvenantStatusSigned,
		Recipients:      p.Recipients,
	}
	switch pr := p.Pricing.(type) {
	case FixedPrice:
		a.Type = pr.Mode()
		amount := pr.Amount
		a.Price = &amount
	case TimeAndMaterials:
		a.Type = pr.Mode()
		hours, rate := pr.Hours, pr.HourlyRate
		a.Hours = &hours
		a.HourlyRate = &rate
	}
	return a
}
