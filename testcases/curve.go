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

var curveCases = []TestCase{
	{
		Name:   "circle",
		Script: []string{"circle", "32.5 32.5 0 20"},
		Width:  64,
		Height: 64,
		Step:   0.01,
		Probes: []Probe{lit(32, 11), lit(12, 31), lit(52, 31), lit(32, 51), unlit(32, 31), unlit(2, 2)},
	},
	{
		Name:   "circle_coarse",
		Script: []string{"circle", "32 32 25"},
		Width:  64,
		Height: 64,
		Probes: []Probe{unlit(32, 32), unlit(1, 1)},
	},
	{
		Name:   "hermite_straight",
		Script: []string{"hermite", "10.5 32.5 53.5 32.5 43 0 43 0"},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 31), lit(15, 31), unlit(32, 25)},
	},
	{
		Name:   "bezier_straight",
		Script: []string{"bezier", "10.5 32.5 24.5 32.5 38.5 32.5 53.5 32.5"},
		Width:  64,
		Height: 64,
		Probes: []Probe{lit(32, 31), lit(50, 31), unlit(32, 25)},
	},
	{
		Name:   "bezier_arch",
		Script: []string{"bezier", "8 8 8 60 56 60 56 8"},
		Width:  64,
		Height: 64,
		Step:   0.02,
		Probes: []Probe{unlit(32, 40), unlit(32, 60)},
	},
	{
		Name:   "hermite_tangents",
		Script: []string{"hermite", "16 32 48 32 0 120 0 -120"},
		Width:  64,
		Height: 64,
		Step:   0.02,
		Probes: []Probe{unlit(2, 2)},
	},
}
