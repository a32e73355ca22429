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

// Lines are placed on pixel centres, so that a one pixel wide line covers
// a single row or column of pixels.
var transformCases = []TestCase{
	{
		Name:   "line",
		Script: []string{"line", "10.5 32.5 0 53.5 32.5 0"},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 31), lit(12, 31), unlit(32, 20), unlit(5, 31), unlit(58, 31)},
	},
	{
		Name: "scale",
		Script: []string{
			"scale", "2 2 1",
			"line", "5.25 16.25 0 26.75 16.25 0",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 31), unlit(32, 47), unlit(5, 31)},
	},
	{
		Name: "move",
		Script: []string{
			"move", "20 0 0",
			"line", "0.5 10.5 0 0.5 50.5 0",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(20, 32), unlit(0, 32), unlit(10, 32)},
	},
	{
		Name: "rotate",
		Script: []string{
			"move", "32.5 32 0",
			"rotate", "z 90",
			"line", "0 0 0 20 0 0",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 20), unlit(40, 20), unlit(32, 45), unlit(45, 31)},
	},
	{
		Name: "color",
		Script: []string{
			"color", "255 0 0",
			"line", "10.5 32.5 0 53.5 32.5 0",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 31), unlit(32, 40)},
	},
	{
		Name: "spokes",
		Script: []string{
			"move", "32 32 0",
			"line", "0 0 0 28 0 0",
			"rotate", "z 45",
			"line", "0 0 0 28 0 0",
			"rotate", "z 45",
			"line", "0 0 0 28 0 0",
			"rotate", "z 45",
			"line", "0 0 0 28 0 0",
			"rotate", "z 45",
			"line", "0 0 0 28 0 0",
			"rotate", "z 45",
			"line", "0 0 0 28 0 0",
			"rotate", "z 45",
			"line", "0 0 0 28 0 0",
			"rotate", "z 45",
			"line", "0 0 0 28 0 0",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{unlit(2, 10), unlit(62, 50)},
	},
}
