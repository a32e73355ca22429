// seehuhn.de/go/wireframe - a scripted 3D wireframe renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package canvas implements the drawing surface used by the interpreter.
//
// A Canvas owns an RGBA pixel buffer.  Edges and triangles are projected
// orthographically onto the xy plane, with the y axis pointing up and the
// origin in the bottom-left corner of the image.  Every draw call is also
// kept in a display list, so that the picture can be written as a vector
// PDF file.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/wireframe/geometry"
	"seehuhn.de/go/wireframe/raster"
)

// PolygonStyle selects how visible triangles are drawn.
type PolygonStyle int

const (
	// Fill paints the interior of each visible triangle.
	Fill PolygonStyle = iota

	// Wire strokes the three sides of each visible triangle.
	Wire
)

func (s PolygonStyle) String() string {
	switch s {
	case Fill:
		return "fill"
	case Wire:
		return "wire"
	default:
		return fmt.Sprintf("PolygonStyle(%d)", int(s))
	}
}

// ParsePolygonStyle converts "fill" or "wire" into a PolygonStyle.
func ParsePolygonStyle(s string) (PolygonStyle, error) {
	switch s {
	case "fill":
		return Fill, nil
	case "wire":
		return Wire, nil
	default:
		return 0, fmt.Errorf("unknown polygon style %q", s)
	}
}

// ParseLineCap converts "butt", "round" or "square" into a line cap style.
func ParseLineCap(s string) (graphics.LineCapStyle, error) {
	switch s {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown line cap %q", s)
	}
}

// Viewer shows an image on screen.  Show blocks until the user is done
// looking at the image.
type Viewer interface {
	Show(img image.Image) error
}

// Options configure a Canvas.
type Options struct {
	Width, Height int

	Background color.RGBA

	// LineWidth is the stroke width in pixels.
	LineWidth float64
	LineCap   graphics.LineCapStyle

	// Antialias selects smooth edges.  If false, a pixel is painted when
	// at least half of it is covered.
	Antialias bool

	Polygons PolygonStyle

	// Viewer is used by Display.  If nil, Display does nothing.
	Viewer Viewer
}

// DefaultOptions returns the settings for a black 500x500 image with one
// pixel wide, anti-aliased lines.
func DefaultOptions() Options {
	return Options{
		Width:      500,
		Height:     500,
		Background: color.RGBA{A: 255},
		LineWidth:  1,
		LineCap:    graphics.LineCapButt,
		Antialias:  true,
		Polygons:   Fill,
	}
}

type opKind int

const (
	opLines opKind = iota
	opFill
	opWire
)

// op is a display list entry.  For opLines, pts holds pairs of end points;
// otherwise it holds triangle vertices.
type op struct {
	kind  opKind
	color color.RGBA
	pts   []vec.Vec2
}

// Canvas is a pixel buffer with a display list.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	opt  Options
	img  *image.RGBA
	r    *raster.Rasteriser
	ops  []op
	path path.Data
}

// New allocates a canvas and clears it to the background colour.
func New(opt Options) *Canvas {
	if opt.Width <= 0 || opt.Height <= 0 {
		panic(fmt.Sprintf("canvas: invalid size %dx%d", opt.Width, opt.Height))
	}
	c := &Canvas{
		opt: opt,
		img: image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height)),
		r:   raster.NewRasteriser(rect.Rect{URx: float64(opt.Width), URy: float64(opt.Height)}),
	}
	c.Clear()
	return c
}

// Bounds returns the size of the canvas in pixels.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Image returns the pixel buffer.  The image is updated by later draw
// calls.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear resets all pixels to the background colour and empties the
// display list.
func (c *Canvas) Clear() {
	bg := c.opt.Background
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	c.ops = c.ops[:0]
}

// DrawLines strokes every segment of e in the given colour.
func (c *Canvas) DrawLines(e geometry.Edges, col color.RGBA) {
	if len(e) == 0 {
		return
	}
	pts := make([]vec.Vec2, 0, 2*len(e))
	for _, seg := range e {
		pts = append(pts, project(seg[0]), project(seg[1]))
	}
	c.ops = append(c.ops, op{kind: opLines, color: col, pts: pts})

	c.prepare()
	emit := c.painter(col)
	for i := 0; i < len(pts); i += 2 {
		c.r.StrokeLine(pts[i], pts[i+1], emit)
	}
}

// DrawPolygons draws the triangles of p which face the viewer.  The viewer
// looks along the negative z axis; triangles whose normal has a
// non-positive z component are culled.
func (c *Canvas) DrawPolygons(p geometry.Polygons, col color.RGBA) {
	var pts []vec.Vec2
	for _, tri := range p {
		if !FacesViewer(tri) {
			continue
		}
		pts = append(pts, project(tri[0]), project(tri[1]), project(tri[2]))
	}
	if len(pts) == 0 {
		return
	}

	kind := opFill
	if c.opt.Polygons == Wire {
		kind = opWire
	}
	c.ops = append(c.ops, op{kind: kind, color: col, pts: pts})

	c.prepare()
	emit := c.painter(col)
	for i := 0; i < len(pts); i += 3 {
		a, b, d := pts[i], pts[i+1], pts[i+2]
		if kind == opWire {
			c.r.StrokeLine(a, b, emit)
			c.r.StrokeLine(b, d, emit)
			c.r.StrokeLine(d, a, emit)
			continue
		}
		c.path.Cmds = c.path.Cmds[:0]
		c.path.Coords = c.path.Coords[:0]
		c.path.MoveTo(a).LineTo(b).LineTo(d).Close()
		c.r.FillNonZero(&c.path, emit)
	}
}

// FacesViewer reports whether the front side of t is visible.
func FacesViewer(t geometry.Triangle) bool {
	return t.Normal().Z() > 0
}

// Display shows the current image using the configured viewer.
func (c *Canvas) Display() error {
	if c.opt.Viewer == nil {
		return nil
	}
	snapshot := image.NewRGBA(c.img.Rect)
	copy(snapshot.Pix, c.img.Pix)
	return c.opt.Viewer.Show(snapshot)
}

// prepare sets the rasteriser parameters for the next draw call.
func (c *Canvas) prepare() {
	c.r.CTM = matrix.Matrix{1, 0, 0, -1, 0, float64(c.opt.Height)}
	c.r.Width = c.opt.LineWidth
	c.r.Cap = c.opt.LineCap
}

// painter returns an emit function which composites col over the pixel
// buffer, using the coverage values as alpha.
func (c *Canvas) painter(col color.RGBA) raster.EmitFunc {
	img := c.img
	aa := c.opt.Antialias
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+4*xMin:]
		for i, a := range coverage {
			if !aa {
				if a < 0.5 {
					continue
				}
				a = 1
			}
			px := row[4*i : 4*i+4 : 4*i+4]
			px[0] = blend(px[0], col.R, a)
			px[1] = blend(px[1], col.G, a)
			px[2] = blend(px[2], col.B, a)
			px[3] = blend(px[3], col.A, a)
		}
	}
}

func blend(dst, src uint8, a float32) uint8 {
	v := float32(src)*a + float32(dst)*(1-a)
	return uint8(min(255, max(0, v+0.5)))
}

// project drops the z coordinate.
func project(p geometry.Point) vec.Vec2 {
	return vec.Vec2{X: p.X(), Y: p.Y()}
}
