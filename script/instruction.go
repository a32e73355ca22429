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

package script

import (
	"image/color"

	"seehuhn.de/go/wireframe/geometry"
	"seehuhn.de/go/wireframe/mat4"
)

// Instruction is one parsed script command.  The concrete types are
// listed below; each carries exactly the arguments of its command.
type Instruction interface {
	// Name returns the command name as written in a script.
	Name() string
}

// Push duplicates the active transform.
type Push struct{}

// Pop discards the active transform, unless it is the last one.
type Pop struct{}

// Ident resets the active transform to the identity.
type Ident struct{}

// Scale composes a scaling with the active transform.
type Scale struct{ X, Y, Z float64 }

// Move composes a translation with the active transform.
type Move struct{ X, Y, Z float64 }

// Rotate composes a rotation with the active transform.
type Rotate struct {
	Axis    mat4.Axis
	Degrees float64
}

// Color sets the drawing colour.
type Color struct{ color.RGBA }

// Line draws a line segment.
type Line struct{ X0, Y0, Z0, X1, Y1, Z1 float64 }

// Circle draws a circle parallel to the xy plane.
type Circle struct{ CX, CY, CZ, R float64 }

// Curve draws a Hermite or Bezier curve in the xy plane.  The meaning of
// the last four values depends on Kind, see [geometry.Edges.AddCurve].
type Curve struct {
	Kind           geometry.CurveKind
	X0, Y0, X1, Y1 float64
	A0, A1, B0, B1 float64
}

// Box draws a solid box.
type Box struct{ X, Y, Z, W, H, D float64 }

// Sphere draws a solid sphere.
type Sphere struct{ CX, CY, CZ, R float64 }

// Torus draws a solid torus with tube radius R1 and ring radius R2.
type Torus struct{ CX, CY, CZ, R1, R2 float64 }

// Clear has no lasting effect; geometry buffers are discarded after every
// command anyway.
type Clear struct{}

// Display shows the image.
type Display struct{}

// Save writes the image to a file.
type Save struct{ Path string }

// Quit ends the script.
type Quit struct{}

// Unknown is a line which is not a command.  It is kept so that the
// interpreter can report it; executing it has no effect.
type Unknown struct{ Text string }

func (Push) Name() string    { return "push" }
func (Pop) Name() string     { return "pop" }
func (Ident) Name() string   { return "ident" }
func (Scale) Name() string   { return "scale" }
func (Move) Name() string    { return "move" }
func (Rotate) Name() string  { return "rotate" }
func (Color) Name() string   { return "color" }
func (Line) Name() string    { return "line" }
func (Circle) Name() string  { return "circle" }
func (c Curve) Name() string { return c.Kind.String() }
func (Box) Name() string     { return "box" }
func (Sphere) Name() string  { return "sphere" }
func (Torus) Name() string   { return "torus" }
func (Clear) Name() string   { return "clear" }
func (Display) Name() string { return "display" }
func (Save) Name() string    { return "save" }
func (Quit) Name() string    { return "quit" }
func (Unknown) Name() string { return "" }

// Statement is an instruction together with the script line it was read
// from.  Line numbers start at 1.
type Statement struct {
	Line int
	Instruction
}

// Program is a parsed script.
type Program []Statement
