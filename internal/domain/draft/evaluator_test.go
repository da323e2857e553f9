package draft

import (
	"testing"

	"chantierplus/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeFixed() Draft {
	d := New("d-1", "ch-1", nil)
	d.Description = "Pose d'une prise supplémentaire"
	d.FixedPrice = "150.00"
	d.PhotoRef = "uploads/p.jpg"
	return d
}

func completeRegie() Draft {
	d := New("d-1", "ch-1", nil)
	d.Mode = entities.PricingModeTimeAndMaterials
	d.Description = "Reprise d'enduit"
	d.Hours = "3"
	d.HourlyRate = "40"
	d.PhotoRef = "uploads/p.jpg"
	return d
}

func TestEvaluate_EmptyDraft(t *testing.T) {
	d := New("d-1", "ch-1", nil)
	d.Description = ""

	ev := Evaluate(d)
	assert.False(t, ev.Complete)
	assert.False(t, ev.CanSign)
	assert.False(t, IsComplete(d))
	assert.False(t, CanSign(d))
	assert.Equal(t, []Field{FieldDescription, FieldFixedPrice, FieldPhotoRef}, ev.Missing)
	assert.Equal(t, 0.0, ev.Total)
}

func TestEvaluate_FixedPrice(t *testing.T) {
	d := completeFixed()

	ev := Evaluate(d)
	assert.True(t, ev.Complete)
	assert.True(t, ev.CanSign)
	assert.Empty(t, ev.Missing)
	assert.Equal(t, 150.0, ev.Total)
}

func TestEvaluate_TimeAndMaterials(t *testing.T) {
	d := completeRegie()
	assert.Equal(t, 120.0, Total(d))
	assert.True(t, CanSign(d))
}

func TestIsComplete_PricingValues(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"positive", "12.5", true},
		{"decimal comma", "12,5", true},
		{"padded", "  12 ", true},
		{"zero", "0", false},
		{"negative", "-3", false},
		{"garbage", "abc", false},
		{"blank", "", false},
		{"spaces", "   ", false},
		{"nan", "NaN", false},
		{"inf", "Inf", false},
		{"largest amount", "1000000000", true},
		{"beyond largest amount", "1000000000.01", false},
		{"huge exponent", "1e200", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := completeFixed()
			d.FixedPrice = tc.value
			assert.Equal(t, tc.want, IsComplete(d))
		})
	}
}

func TestIsComplete_OverflowingRegieProduct(t *testing.T) {
	d := completeRegie()
	d.Hours = "1e200"
	d.HourlyRate = "1e200"

	assert.False(t, IsComplete(d))
	assert.False(t, CanSign(d))
	assert.Equal(t, []Field{FieldHours, FieldHourlyRate}, Missing(d))
	_, ok := Pricing(d)
	assert.False(t, ok)

	_, err := Sign(d, &entities.SignatureArtifact{Data: []byte{1}, ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrValidationBlocked)

	d.Hours = "1e-200"
	assert.True(t, IsComplete(d), "a finite product within bounds stays complete")
}

func TestIsComplete_BlankDescriptionAndMissingPhoto(t *testing.T) {
	d := completeFixed()
	d.Description = " \n\t "
	assert.False(t, IsComplete(d))

	d = completeFixed()
	d.PhotoRef = ""
	assert.Equal(t, []Field{FieldPhotoRef}, Missing(d))
}

func TestIsComplete_UnknownMode(t *testing.T) {
	d := completeFixed()
	d.Mode = "DEVIS"
	assert.False(t, IsComplete(d))
	assert.Contains(t, Missing(d), FieldPricingMode)
	assert.Equal(t, 0.0, Total(d))
}

func TestTotal_DegradesToZero(t *testing.T) {
	d := completeRegie()
	d.Hours = ""
	assert.Equal(t, 0.0, Total(d), "blank operand counts as zero")
	assert.False(t, IsComplete(d), "blank operand blocks signing")

	d.Hours = "4x"
	assert.Equal(t, 0.0, Total(d))

	d = completeFixed()
	d.FixedPrice = "-"
	assert.Equal(t, 0.0, Total(d))

	d.FixedPrice = "19,99"
	assert.Equal(t, 19.99, Total(d))
}

func TestTotal_RoundsToCents(t *testing.T) {
	d := completeRegie()
	d.Hours = "0.1"
	d.HourlyRate = "3"
	assert.Equal(t, 0.3, Total(d))
}

func TestTotal_InvariantUnderInactiveBranch(t *testing.T) {
	fixed := completeFixed()
	before := Total(fixed)
	for _, f := range []Field{FieldHours, FieldHourlyRate} {
		for _, v := range []string{"", "7", "-1", "zz", "1e3"} {
			after, _ := Mutate(fixed, f, v)
			assert.Equal(t, before, Total(after), "field %s value %q", f, v)
		}
	}

	regie := completeRegie()
	before = Total(regie)
	for _, v := range []string{"", "999", "-1", "zz"} {
		after, _ := Mutate(regie, FieldFixedPrice, v)
		assert.Equal(t, before, Total(after))
	}
}

func TestPricing_ActiveBranchOnly(t *testing.T) {
	d := completeFixed()
	d.Hours = "8"
	p, ok := Pricing(d)
	require.True(t, ok)
	assert.Equal(t, entities.FixedPrice{Amount: 150}, p)

	d.Mode = entities.PricingModeTimeAndMaterials
	_, ok = Pricing(d)
	assert.False(t, ok, "hourly rate is still blank")

	d.HourlyRate = "45"
	p, ok = Pricing(d)
	require.True(t, ok)
	assert.Equal(t, entities.TimeAndMaterials{Hours: 8, HourlyRate: 45}, p)
}

func TestContentDigest(t *testing.T) {
	d := completeFixed()
	base := ContentDigest(d)
	assert.Len(t, base, 64)
	assert.Equal(t, base, ContentDigest(d))

	other := d
	other.Hours = "12"
	assert.Equal(t, base, ContentDigest(other), "inactive branch is not attested")

	other = d
	other.PhotoRef = "uploads/other.jpg"
	assert.NotEqual(t, base, ContentDigest(other))
}
