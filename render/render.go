// Package render draws a point set and its minimum star-triple to an image.
//
// Layout: the bounding box of the points (geom.Bounds) is scaled uniformly
// into the canvas minus a padding, y pointing up. Every point is a small
// dot; the triple is drawn as its two legs plus enlarged dots, the center
// in its own colour. Drawing goes through github.com/fogleman/gg.
package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/startriple/geom"
	"github.com/katalvlaran/startriple/startriple"
)

// ErrBadCanvas indicates a non-positive canvas or a padding that leaves no
// drawable area.
var ErrBadCanvas = errors.New("render: canvas too small")

// Options configures Draw.
type Options struct {
	Width, Height int
	Padding       float64 // pixels on every side
	PointRadius   float64 // pixels; triple dots are drawn at twice this
	LineWidth     float64 // pixels, triple legs

	Background  color.Color
	PointColor  color.Color
	TripleColor color.Color
	CenterColor color.Color
}

// DefaultOptions returns a 1024×1024 dark canvas.
func DefaultOptions() Options {
	return Options{
		Width:       1024,
		Height:      1024,
		Padding:     24,
		PointRadius: 1.5,
		LineWidth:   2,
		Background:  color.RGBA{0x10, 0x10, 0x18, 0xff},
		PointColor:  color.RGBA{0xb0, 0xb8, 0xc8, 0xff},
		TripleColor: color.RGBA{0x30, 0xd0, 0x70, 0xff},
		CenterColor: color.RGBA{0xff, 0x40, 0x40, 0xff},
	}
}

// Frame maps plane coordinates to pixel coordinates.
type Frame struct {
	bounds r2.Rect
	scale  float64
	pad    float64
	height float64
}

// NewFrame fits bounds into a w×h canvas with pad pixels on every side.
// A degenerate extent (single point, one shared x or y) is centred.
func NewFrame(bounds r2.Rect, w, h int, pad float64) (Frame, error) {
	var (
		innerW = float64(w) - 2*pad
		innerH = float64(h) - 2*pad
	)
	if w <= 0 || h <= 0 || innerW <= 0 || innerH <= 0 {
		return Frame{}, ErrBadCanvas
	}

	f := Frame{bounds: bounds, scale: 1, pad: pad, height: float64(h)}
	if bounds.IsEmpty() {
		return f, nil
	}

	var (
		spanX = bounds.X.Length()
		spanY = bounds.Y.Length()
	)
	switch {
	case spanX > 0 && spanY > 0:
		f.scale = min(innerW/spanX, innerH/spanY)
	case spanX > 0:
		f.scale = innerW / spanX
	case spanY > 0:
		f.scale = innerH / spanY
	}

	// Centre the scaled box inside the inner area.
	f.bounds.X.Lo -= (innerW/f.scale - spanX) / 2
	f.bounds.Y.Lo -= (innerH/f.scale - spanY) / 2

	return f, nil
}

// Project returns the pixel position of p (origin top-left, y down).
func (f Frame) Project(p geom.Point) (float64, float64) {
	x := f.pad + (p.X-f.bounds.X.Lo)*f.scale
	y := f.pad + (p.Y-f.bounds.Y.Lo)*f.scale

	return x, f.height - y
}

// Draw renders points and, when res.Found, the triple.
func Draw(points []geom.Point, res startriple.Result, opts Options) (image.Image, error) {
	frame, err := NewFrame(geom.Bounds(points), opts.Width, opts.Height, opts.Padding)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(opts.Background)
	dc.Clear()

	// Stage 1 - the cloud.
	var x, y float64
	dc.SetColor(opts.PointColor)
	for _, p := range points {
		x, y = frame.Project(p)
		dc.DrawCircle(x, y, opts.PointRadius)
	}
	dc.Fill()

	if !res.Found {
		return dc.Image(), nil
	}

	// Stage 2 - the two legs of the star.
	cx, cy := frame.Project(res.Points[0])
	dc.SetColor(opts.TripleColor)
	dc.SetLineWidth(opts.LineWidth)
	for _, leaf := range res.Points[1:] {
		x, y = frame.Project(leaf)
		dc.DrawLine(cx, cy, x, y)
	}
	dc.Stroke()

	// Stage 3 - leaves, then the center on top.
	for _, leaf := range res.Points[1:] {
		x, y = frame.Project(leaf)
		dc.DrawCircle(x, y, 2*opts.PointRadius)
	}
	dc.Fill()
	dc.SetColor(opts.CenterColor)
	dc.DrawCircle(cx, cy, 2*opts.PointRadius)
	dc.Fill()

	return dc.Image(), nil
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}
