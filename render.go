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

// Package wireframe renders scripted 3D wireframe drawings.
//
// A script is a list of textual commands.  Transformation commands (move,
// scale, rotate) act on a stack of coordinate systems, drawing commands
// (line, circle, hermite, bezier, box, sphere, torus) generate geometry
// in the current coordinate system, and output commands (display, save)
// show or store the picture drawn so far.  Example:
//
//	push
//	rotate
//	y 30
//	sphere
//	250 250 0 100
//	pop
//	save
//	sphere.png
//
// The packages [seehuhn.de/go/wireframe/script],
// [seehuhn.de/go/wireframe/interp] and [seehuhn.de/go/wireframe/canvas]
// implement the individual stages.  This package connects them.
package wireframe

//go:generate go run ./testcases/export

import (
	"fmt"
	"os"

	"seehuhn.de/go/wireframe/canvas"
	"seehuhn.de/go/wireframe/config"
	"seehuhn.de/go/wireframe/interp"
	"seehuhn.de/go/wireframe/script"
	"seehuhn.de/go/wireframe/testcases"
)

// Render runs prog on a new canvas configured by cfg.  The display command
// shows the image using v; if v is nil, display does nothing.
//
// The canvas is returned even if the run fails, so that the picture drawn
// up to the point of failure can be inspected.
func Render(cfg *config.Config, prog script.Program, v canvas.Viewer) (*canvas.Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := cfg.TransformMode()
	if err != nil {
		return nil, err
	}
	opt, err := cfg.CanvasOptions()
	if err != nil {
		return nil, err
	}
	opt.Viewer = v

	c := canvas.New(opt)
	it := &interp.Interpreter{
		Canvas: c,
		Step:   cfg.Step,
		Mode:   mode,
		Logger: Logger(),
	}
	err = it.Run(prog, interp.NewState(cfg.DrawColor()))
	return c, err
}

// RenderFile reads, parses and runs the script in the named file.
func RenderFile(cfg *config.Config, fname string, v canvas.Viewer) (*canvas.Canvas, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	prog, err := script.Parse(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	Logger().Debug("script loaded", "file", fname, "statements", len(prog))

	c, err := Render(cfg, prog, v)
	if err != nil {
		return c, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// RenderExample renders a test case, without a viewer.
func RenderExample(tc testcases.TestCase) (*canvas.Canvas, error) {
	prog, err := script.ParseLines(tc.Script)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	cfg.Width = tc.Width
	cfg.Height = tc.Height
	if tc.Step > 0 {
		cfg.Step = tc.Step
	}
	cfg.Mode = tc.Mode.String()
	cfg.Polygons = tc.Polygons.String()
	cfg.Viewer = config.ViewerNone
	return Render(cfg, prog, nil)
}
