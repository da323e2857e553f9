package signature

import (
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
)

// Encoder writes an image in a given format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	ContentType() string
}

type PNGEncoder struct{}

func (PNGEncoder) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

func (PNGEncoder) ContentType() string { return "image/png" }

// JPEGEncoder has no alpha channel, so the signature is flattened on white first.
type JPEGEncoder struct {
	Quality int
}

func (e JPEGEncoder) Encode(w io.Writer, img image.Image) error {
	flat := image.NewRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)
	return jpeg.Encode(w, flat, &jpeg.Options{Quality: e.Quality})
}

func (JPEGEncoder) ContentType() string { return "image/jpeg" }
