package request

import (
	"chantierplus/internal/domain/signature"
	"strings"
)

// OpenDraftRequest opens a composition session on a chantier.
type OpenDraftRequest struct {
	Recipients []string `json:"recipients"`
}

// UpdateFieldRequest sets one raw field of a draft. Value is kept as typed;
// an empty value clears the field.
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (r UpdateFieldRequest) ResolveField() string {
	return strings.ToLower(strings.TrimSpace(r.Field))
}

type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SignatureRequest carries the strokes drawn on the signature pad, in canvas
// coordinates.
type SignatureRequest struct {
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Strokes [][]PointRequest `json:"strokes"`
}

func (r SignatureRequest) ToCanvas() signature.Canvas {
	c := signature.Canvas{Width: r.Width, Height: r.Height}
	for _, s := range r.Strokes {
		stroke := make(signature.Stroke, 0, len(s))
		for _, p := range s {
			stroke = append(stroke, signature.Point{X: p.X, Y: p.Y})
		}
		c.Strokes = append(c.Strokes, stroke)
	}
	return c
}
