package draft

import (
	"errors"
	"fmt"

	"chantierplus/internal/domain/entities"
)

// ErrPreconditionFailed is returned when a draft is submitted without a
// signature that is valid for its current content.
var ErrPreconditionFailed = errors.New("precondition failed")

// Assemble builds the outbound payload of a signed draft.
//
// Only the active pricing branch is carried; the raw inputs of the other
// branch never leave the draft.
func Assemble(d Draft) (entities.AvenantPayload, error) {
	if d.Signature == nil {
		return entities.AvenantPayload{}, fmt.Errorf("%w: signature missing", ErrPreconditionFailed)
	}
	if !CanSign(d) {
		return entities.AvenantPayload{}, fmt.Errorf("%w: draft incomplete", ErrPreconditionFailed)
	}
	pricing, ok := Pricing(d)
	if !ok {
		return entities.AvenantPayload{}, fmt.Errorf("%w: pricing incomplete", ErrPreconditionFailed)
	}
	if d.Signature.ContentDigest != ContentDigest(d) {
		return entities.AvenantPayload{}, fmt.Errorf("%w: signature does not match current content", ErrPreconditionFailed)
	}

	return entities.AvenantPayload{
		DraftID:     d.ID,
		ChantierID:  d.ChantierID,
		Description: d.Description,
		Pricing:     pricing,
		Total:       Total(d),
		PhotoRef:    d.PhotoRef,
		Signature:   *d.Signature,
		Recipients:  d.Recipients,
	}, nil
}
