package entities

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 120.0, RoundCents(119.999))
	assert.Equal(t, 0.3, RoundCents(0.1+0.2))
	assert.Equal(t, 0.0, RoundCents(math.NaN()))
	assert.Equal(t, 0.0, RoundCents(math.Inf(1)))
}

func TestAvenantPayload_ToAvenant(t *testing.T) {
	signedAt := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sig := SignatureArtifact{Data: []byte{0x89}, ContentType: "image/png", Digest: "d1", ContentDigest: "c1", CapturedAt: signedAt}

	t.Run("fixed price keeps only the price", func(t *testing.T) {
		p := AvenantPayload{ChantierID: "c-1", Description: "x", Pricing: FixedPrice{Amount: 150}, Total: 150, PhotoRef: "uploads/p.png", Signature: sig}
		a := p.ToAvenant("av-1")

		require.NotNil(t, a.Price)
		assert.Equal(t, 150.0, *a.Price)
		assert.Nil(t, a.Hours)
		assert.Nil(t, a.HourlyRate)
		assert.Equal(t, PricingModeFixedPrice, a.Type)
		assert.Equal(t, AvenantStatusSigned, a.Status)
		assert.Equal(t, signedAt, a.SignedAt)
		assert.Equal(t, "data:image/png;base64,iQ==", a.SignatureData)
		assert.Equal(t, FixedPrice{Amount: 150}, a.Pricing())
	})

	t.Run("time and materials keeps hours and rate", func(t *testing.T) {
		p := AvenantPayload{ChantierID: "c-1", Pricing: TimeAndMaterials{Hours: 3, HourlyRate: 40}, Total: 120, Signature: sig}
		a := p.ToAvenant("av-2")

		assert.Nil(t, a.Price)
		require.NotNil(t, a.Hours)
		assert.Equal(t, 3.0, *a.Hours)
		assert.Equal(t, 40.0, *a.HourlyRate)
		assert.Equal(t, 120.0, a.Pricing().Total())
	})
}
