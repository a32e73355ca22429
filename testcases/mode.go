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

import "seehuhn.de/go/wireframe/interp"

var modeScript = []string{
	"move", "100 0 0",
	"move", "20 0 0",
	"line", "0.5 10.5 0 0.5 50.5 0",
}

var modeCases = []TestCase{
	{
		Name:   "compose",
		Script: modeScript,
		Width:  64,
		Height: 64,
		Probes: []Probe{unlit(20, 32)},
	},
	{
		Name:   "replace",
		Script: modeScript,
		Width:  64,
		Height: 64,
		Mode:   interp.ReplaceTransform,
		Probes: []Probe{lit(20, 32), unlit(0, 32)},
	},
}
