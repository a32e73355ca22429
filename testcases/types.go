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

package testcases

import (
	"seehuhn.de/go/wireframe/canvas"
	"seehuhn.de/go/wireframe/interp"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string   // lowercase a-z and _ only
	Script []string // the script, one instruction or argument line per entry
	Width  int      // canvas width in pixels
	Height int      // canvas height in pixels

	Step     float64              // tessellation step (zero means default)
	Mode     interp.TransformMode // zero value is ComposeTransform
	Polygons canvas.PolygonStyle  // zero value is Fill

	// Probes list pixels with known state in the rendered image.
	Probes []Probe
}

// Probe checks a single pixel of the output.  X and Y are image
// coordinates, with y pointing down.
type Probe struct {
	X, Y int
	Lit  bool // whether the pixel is painted, as opposed to background
}

func lit(x, y int) Probe   { return Probe{X: x, Y: y, Lit: true} }
func unlit(x, y int) Probe { return Probe{X: x, Y: y} }
