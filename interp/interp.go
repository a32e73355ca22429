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

// Package interp executes parsed drawing scripts.
//
// The interpreter keeps a stack of coordinate systems.  Transformation
// commands modify the coordinate system on top of the stack.  Drawing
// commands generate their geometry in a fresh buffer, map it through the
// active transform and pass it to a [Canvas], after which the buffer is
// dropped.
package interp

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"seehuhn.de/go/wireframe/geometry"
	"seehuhn.de/go/wireframe/mat4"
	"seehuhn.de/go/wireframe/script"
)

// Canvas receives the output of the interpreter.
type Canvas interface {
	DrawLines(e geometry.Edges, c color.RGBA)
	DrawPolygons(p geometry.Polygons, c color.RGBA)
	Display() error
	Save(path string) error
}

// TransformMode selects how scale, move and rotate change the active
// transform.
type TransformMode int

const (
	// ComposeTransform multiplies the active transform by the new
	// transform, applying the new transform inside the current frame.
	ComposeTransform TransformMode = iota

	// ReplaceTransform makes the new transform the active transform,
	// discarding the previous value.
	ReplaceTransform
)

func (m TransformMode) String() string {
	switch m {
	case ComposeTransform:
		return "compose"
	case ReplaceTransform:
		return "replace"
	default:
		return fmt.Sprintf("TransformMode(%d)", int(m))
	}
}

// ParseTransformMode converts "compose" or "replace" to a TransformMode.
func ParseTransformMode(s string) (TransformMode, error) {
	switch s {
	case "compose":
		return ComposeTransform, nil
	case "replace":
		return ReplaceTransform, nil
	default:
		return 0, fmt.Errorf("unknown transform mode %q", s)
	}
}

// DefaultColor is the drawing colour at the start of a run.
var DefaultColor = color.RGBA{G: 255, A: 255}

// State is the mutable state of a script run.
type State struct {
	Stack *CoordinateStack
	Color color.RGBA
}

// NewState returns the initial state, with an identity transform and the
// given drawing colour.
func NewState(c color.RGBA) *State {
	return &State{Stack: NewCoordinateStack(), Color: c}
}

// SinkError reports a failure of the canvas.
type SinkError struct {
	Op   string // "display" or "save"
	Line int
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Op, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// Interpreter executes programs on a canvas.
type Interpreter struct {
	Canvas Canvas

	// Step is the parameter step for curves and surfaces.  Zero selects
	// [geometry.DefaultStep].
	Step float64

	Mode TransformMode

	// Logger receives diagnostics.  If nil, nothing is logged.
	Logger *slog.Logger
}

// Run executes prog, starting from state st.  Execution stops at the end of
// the program, at a quit command, or at the first canvas error, which is
// returned as a *SinkError.
func (it *Interpreter) Run(prog script.Program, st *State) error {
	log := it.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	step := it.Step
	if step == 0 {
		step = geometry.DefaultStep
	}

	for _, stmt := range prog {
		switch in := stmt.Instruction.(type) {
		case script.Push:
			st.Stack.Push()
		case script.Pop:
			if !st.Stack.Pop() {
				log.Debug("pop on base frame ignored", "line", stmt.Line)
			}
		case script.Ident:
			st.Stack.SetTop(mat4.Identity)
		case script.Scale:
			it.apply(st, mat4.Scale(in.X, in.Y, in.Z))
		case script.Move:
			it.apply(st, mat4.Translate(in.X, in.Y, in.Z))
		case script.Rotate:
			it.apply(st, mat4.Rotate(in.Axis, in.Degrees*math.Pi/180))
		case script.Color:
			st.Color = in.RGBA

		case script.Line:
			var e geometry.Edges
			e.AddEdge(geometry.Point{in.X0, in.Y0, in.Z0}, geometry.Point{in.X1, in.Y1, in.Z1})
			it.drawLines(st, e)
		case script.Circle:
			var e geometry.Edges
			e.AddCircle(in.CX, in.CY, in.CZ, in.R, step)
			it.drawLines(st, e)
		case script.Curve:
			var e geometry.Edges
			e.AddCurve(in.Kind, in.X0, in.Y0, in.X1, in.Y1, in.A0, in.A1, in.B0, in.B1, step)
			it.drawLines(st, e)
		case script.Box:
			var p geometry.Polygons
			p.AddBox(in.X, in.Y, in.Z, in.W, in.H, in.D)
			it.drawPolygons(st, p)
		case script.Sphere:
			var p geometry.Polygons
			p.AddSphere(in.CX, in.CY, in.CZ, in.R, step)
			it.drawPolygons(st, p)
		case script.Torus:
			var p geometry.Polygons
			p.AddTorus(in.CX, in.CY, in.CZ, in.R1, in.R2, step)
			it.drawPolygons(st, p)

		case script.Clear:
			log.Debug("clear", "line", stmt.Line)
		case script.Display:
			log.Debug("display", "line", stmt.Line)
			if err := it.Canvas.Display(); err != nil {
				return &SinkError{Op: "display", Line: stmt.Line, Err: err}
			}
		case script.Save:
			if err := it.Canvas.Save(in.Path); err != nil {
				return &SinkError{Op: "save", Line: stmt.Line, Err: err}
			}
			log.Info("image saved", "file", in.Path)
		case script.Quit:
			log.Debug("quit", "line", stmt.Line)
			return nil
		default:
			log.Debug("ignoring line", "line", stmt.Line, "text", unknownText(stmt.Instruction))
		}
	}
	return nil
}

// apply combines t with the active transform.
func (it *Interpreter) apply(st *State, t mat4.Matrix) {
	if it.Mode == ReplaceTransform {
		st.Stack.SetTop(t)
		return
	}
	st.Stack.SetTop(st.Stack.Top().Mul(t))
}

func (it *Interpreter) drawLines(st *State, e geometry.Edges) {
	e.Transform(st.Stack.Top())
	it.Canvas.DrawLines(e, st.Color)
}

func (it *Interpreter) drawPolygons(st *State, p geometry.Polygons) {
	p.Transform(st.Stack.Top())
	it.Canvas.DrawPolygons(p, st.Color)
}

func unknownText(in script.Instruction) string {
	if u, ok := in.(script.Unknown); ok {
		return u.Text
	}
	return fmt.Sprintf("%T", in)
}
