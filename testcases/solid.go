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

import "seehuhn.de/go/wireframe/canvas"

var solidCases = []TestCase{
	{
		Name:   "box",
		Script: []string{"box", "16 48 0 32 32 32"},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 32), lit(20, 20), unlit(8, 8), unlit(56, 32)},
	},
	{
		Name:     "box_wire",
		Script:   []string{"box", "16 48 0 32 32 32"},
		Width:    64,
		Height:   64,
		Polygons: canvas.Wire,
		Probes:   []Probe{lit(31, 31), unlit(24, 32), unlit(8, 8)},
	},
	{
		Name: "box_turned",
		Script: []string{
			"move", "32 32 0",
			"rotate", "x 30",
			"rotate", "y 30",
			"box", "-12 12 12 24 24 24",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 32), unlit(2, 2), unlit(61, 61)},
	},
	{
		Name:   "sphere",
		Script: []string{"sphere", "32 32 0 20"},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 31), lit(45, 31), unlit(2, 2), unlit(8, 32)},
	},
	{
		Name:     "sphere_wire",
		Script:   []string{"sphere", "32 32 0 24"},
		Width:    64,
		Height:   64,
		Polygons: canvas.Wire,
		Probes:   []Probe{unlit(1, 1), unlit(62, 62)},
	},
	{
		Name: "torus",
		Script: []string{
			"rotate", "x 90",
			"torus", "32 0 -32 5 20",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(52, 31), lit(11, 31), unlit(32, 31), unlit(2, 2)},
	},
}
