// Package render draws triangulations for debugging and for the demo CLI. The
// output is meant for eyeballing results, not for production graphics.
package render

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"sync"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var ErrNothingToDraw = errors.New("nothing to draw")

type Style struct {
	// Pixels per unit
	Scale float64
	// Pixels around the bounding box of the points
	Padding   float64
	LineWidth float64
	// Draw the index of every vertex
	Labels bool
}

func DefaultStyle() Style {
	return Style{Scale: 50, Padding: 20, LineWidth: 1, Labels: true}
}

const (
	polygonStyle = "fill:rgb(77,51,255);fill-opacity:0.5;stroke:rgb(0,255,0)"
	labelStyle   = "fill:white;font-size:10px;font-family:sans-serif;text-anchor:middle"
	labelSize    = 10
)

// Maps points into image space, with the y axis pointing up.
type frame struct {
	bounds        r2.Rect
	width, height int
	style         Style
}

func newFrame(points []r2.Point, indices []int, style Style) (frame, error) {
	if len(points) == 0 || len(indices) == 0 {
		return frame{}, ErrNothingToDraw
	}
	if len(indices)%3 != 0 {
		return frame{}, errors.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for _, index := range indices {
		if index < 0 || index >= len(points) {
			return frame{}, errors.Errorf("index %d out of range for %d points", index, len(points))
		}
	}
	if style.Scale <= 0 {
		return frame{}, errors.Errorf("invalid scale %v", style.Scale)
	}

	bounds := r2.RectFromPoints(points...)
	size := bounds.Size()
	return frame{
		bounds: bounds,
		width:  int(math.Ceil(size.X*style.Scale+2*style.Padding)) + 1,
		height: int(math.Ceil(size.Y*style.Scale+2*style.Padding)) + 1,
		style:  style,
	}, nil
}

func (f frame) project(p r2.Point) (float64, float64) {
	x := f.style.Padding + (p.X-f.bounds.X.Lo)*f.style.Scale
	y := float64(f.height) - f.style.Padding - (p.Y-f.bounds.Y.Lo)*f.style.Scale
	return x, y
}

var (
	labelFaceOnce sync.Once
	labelFace     font.Face
	labelFaceErr  error
)

func loadLabelFace() (font.Face, error) {
	labelFaceOnce.Do(func() {
		parsed, err := truetype.Parse(goregular.TTF)
		if err != nil {
			labelFaceErr = errors.Wrap(err, "parsing label font")
			return
		}
		labelFace = truetype.NewFace(parsed, &truetype.Options{Size: labelSize})
	})
	return labelFace, labelFaceErr
}

func draw(points []r2.Point, indices []int, style Style) (*gg.Context, error) {
	f, err := newFrame(points, indices, style)
	if err != nil {
		return nil, err
	}

	c := gg.NewContext(f.width, f.height)
	c.SetRGB(0, 0, 0)
	c.Clear()
	c.SetLineWidth(style.LineWidth)

	// Fill everything first so strokes are never covered
	for _, stroke := range []bool{false, true} {
		for t := 0; t < len(indices); t += 3 {
			for k := 0; k < 3; k++ {
				x, y := f.project(points[indices[t+k]])
				if k == 0 {
					c.MoveTo(x, y)
				} else {
					c.LineTo(x, y)
				}
			}
			c.ClosePath()
			if stroke {
				c.SetRGB(0, 1, 0)
				c.Stroke()
			} else {
				c.SetRGBA(0.3, 0.2, 1, 0.5)
				c.Fill()
			}
		}
	}

	if style.Labels {
		face, err := loadLabelFace()
		if err != nil {
			return nil, err
		}
		c.SetFontFace(face)
		c.SetRGB(1, 1, 1)
		for i, p := range points {
			x, y := f.project(p)
			c.DrawStringAnchored(strconv.Itoa(i), x, y, 0.5, 0.5)
		}
	}
	return c, nil
}

// PNG writes a raster preview of the triangles given by indices.
func PNG(w io.Writer, points []r2.Point, indices []int, style Style) error {
	c, err := draw(points, indices, style)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

// SVG writes the same preview as PNG as a vector image. Coordinates are
// rounded to whole pixels.
func SVG(w io.Writer, points []r2.Point, indices []int, style Style) error {
	f, err := newFrame(points, indices, style)
	if err != nil {
		return err
	}

	canvas := svg.New(w)
	canvas.Start(f.width, f.height)
	canvas.Rect(0, 0, f.width, f.height, "fill:black")

	xs, ys := make([]int, 3), make([]int, 3)
	for t := 0; t < len(indices); t += 3 {
		for k := 0; k < 3; k++ {
			x, y := f.project(points[indices[t+k]])
			xs[k], ys[k] = int(math.Round(x)), int(math.Round(y))
		}
		canvas.Polygon(xs, ys, polygonStyle)
	}

	if style.Labels {
		for i, p := range points {
			x, y := f.project(p)
			canvas.Text(int(math.Round(x)), int(math.Round(y)), strconv.Itoa(i), labelStyle)
		}
	}
	canvas.End()
	return nil
}

// Terminal prints the PNG preview inline (iTerm only).
func Terminal(w io.Writer, points []r2.Point, indices []int, style Style) error {
	var buf bytes.Buffer
	if err := PNG(&buf, points, indices, style); err != nil {
		return err
	}
	return errors.Wrap(imgcat.Cat(&buf, w), "printing preview")
}
