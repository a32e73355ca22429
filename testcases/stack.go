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

var stackCases = []TestCase{
	{
		Name: "push_pop",
		Script: []string{
			"push",
			"move", "40 0 0",
			"line", "0.5 10.5 0 0.5 50.5 0",
			"pop",
			"line", "10.5 10.5 0 10.5 50.5 0",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(40, 32), lit(10, 32), unlit(25, 32), unlit(50, 32)},
	},
	{
		Name: "nested",
		Script: []string{
			"move", "10 0 0",
			"push",
			"move", "10 0 0",
			"push",
			"move", "10 0 0",
			"line", "0.5 10.5 0 0.5 50.5 0",
			"pop",
			"line", "0.5 10.5 0 0.5 50.5 0",
			"pop",
			"line", "0.5 10.5 0 0.5 50.5 0",
			"pop",
			"pop",
			"line", "0.5 10.5 0 0.5 20.5 0",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(30, 32), lit(20, 32), lit(10, 32), lit(10, 50), unlit(0, 32), unlit(15, 32)},
	},
	{
		Name: "ident",
		Script: []string{
			"move", "30 0 0",
			"ident",
			"line", "10.5 10.5 0 10.5 50.5 0",
		},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(10, 32), unlit(40, 32)},
	},
}
