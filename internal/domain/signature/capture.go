// Package signature turns the strokes drawn on a signature pad into an image artifact.
package signature

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"chantierplus/internal/domain/entities"
)

const (
	defaultPenWidth = 2.5
	trimPadding     = 4
	maxDimension    = 2048
)

var ErrEncodingFailed = errors.New("signature encoding failed")

// Point is a pen position in canvas pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one continuous pen gesture.
type Stroke []Point

// Canvas is the raw pad input. A non-positive size means the client did not
// report it; the image is then sized from the strokes.
type Canvas struct {
	Width   int
	Height  int
	Strokes []Stroke
}

// Pad rasterizes and encodes signatures.
//
// The primary encoder is lossless PNG; the fallback is used only when the
// primary fails, so a drawn signature is not lost to an encoding edge case.
type Pad struct {
	primary  Encoder
	fallback Encoder
	penWidth float64
	now      func() time.Time
}

func NewPad() *Pad {
	return NewPadWithEncoders(PNGEncoder{}, JPEGEncoder{Quality: 60})
}

func NewPadWithEncoders(primary, fallback Encoder) *Pad {
	return &Pad{
		primary:  primary,
		fallback: fallback,
		penWidth: defaultPenWidth,
		now:      time.Now,
	}
}

// Capture returns nil when nothing was drawn.
func (p *Pad) Capture(c Canvas) (*entities.SignatureArtifact, error) {
	strokes := sanitize(c.Strokes)
	if len(strokes) == 0 {
		return nil, nil
	}

	img := p.rasterize(c, strokes)
	data, contentType, err := p.encode(img)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	return &entities.SignatureArtifact{
		Data:        data,
		ContentType: contentType,
		Digest:      hex.EncodeToString(sum[:]),
		CapturedAt:  p.now().UTC(),
	}, nil
}

// Clear always yields no signature.
func (p *Pad) Clear() *entities.SignatureArtifact {
	return nil
}

func (p *Pad) encode(img image.Image) ([]byte, string, error) {
	var buf bytes.Buffer
	primaryErr := p.primary.Encode(&buf, img)
	if primaryErr == nil && buf.Len() > 0 {
		return buf.Bytes(), p.primary.ContentType(), nil
	}
	if p.fallback == nil {
		return nil, "", fmt.Errorf("%w: %v", ErrEncodingFailed, primaryErr)
	}

	buf.Reset()
	if err := p.fallback.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("%w: primary: %v, fallback: %v", ErrEncodingFailed, primaryErr, err)
	}
	if buf.Len() == 0 {
		return nil, "", fmt.Errorf("%w: empty output", ErrEncodingFailed)
	}
	return buf.Bytes(), p.fallback.ContentType(), nil
}

// rasterize draws the strokes in black on a transparent image trimmed to the inked area.
func (p *Pad) rasterize(c Canvas, strokes []Stroke) *image.NRGBA {
	limitX, limitY := float64(maxDimension), float64(maxDimension)
	if c.Width > 0 && c.Height > 0 {
		limitX = math.Min(float64(c.Width), limitX)
		limitY = math.Min(float64(c.Height), limitY)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, s := range strokes {
		for j, pt := range s {
			pt.X = clamp(pt.X, 0, limitX)
			pt.Y = clamp(pt.Y, 0, limitY)
			strokes[i][j] = pt
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}

	pad := float64(trimPadding) + p.penWidth
	originX, originY := math.Floor(minX-pad), math.Floor(minY-pad)
	w := int(math.Ceil(maxX+pad) - originX)
	h := int(math.Ceil(maxY+pad) - originY)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	ink := color.NRGBA{A: 0xff}
	radius := p.penWidth / 2
	for _, s := range strokes {
		if len(s) == 1 {
			dot(img, s[0].X-originX, s[0].Y-originY, radius, ink)
			continue
		}
		for i := 1; i < len(s); i++ {
			line(img, s[i-1].X-originX, s[i-1].Y-originY, s[i].X-originX, s[i].Y-originY, radius, ink)
		}
	}
	return img
}

func sanitize(strokes []Stroke) []Stroke {
	out := make([]Stroke, 0, len(strokes))
	for _, s := range strokes {
		clean := make(Stroke, 0, len(s))
		for _, pt := range s {
			if isFinite(pt.X) && isFinite(pt.Y) {
				clean = append(clean, pt)
			}
		}
		if len(clean) > 0 {
			out = append(out, clean)
		}
	}
	return out
}

func line(img *image.NRGBA, x0, y0, x1, y1, radius float64, c color.NRGBA) {
	steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0) * 2))
	if steps == 0 {
		dot(img, x0, y0, radius, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		dot(img, x0+(x1-x0)*t, y0+(y1-y0)*t, radius, c)
	}
}

func dot(img *image.NRGBA, cx, cy, radius float64, c color.NRGBA) {
	r2 := radius * radius
	for y := int(math.Floor(cy - radius)); y <= int(math.Ceil(cy+radius)); y++ {
		for x := int(math.Floor(cx - radius)); x <= int(math.Ceil(cx+radius)); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r2+0.25 {
				if (image.Point{X: x, Y: y}).In(img.Rect) {
					img.SetNRGBA(x, y, c)
				}
			}
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
