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

// Package geometry generates edge and triangle lists approximating lines,
// circles, cubic curves, spheres, tori and boxes.
//
// All functions in this package are pure; they append to the buffer they
// are called on and keep no state between calls.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultStep is the parameter step used when no other value is configured.
// It gives ten subdivisions per unit of parameter range.
const DefaultStep = 0.1

// MinStep is the smallest usable parameter step.  Smaller steps are
// treated as MinStep.
const MinStep = 1e-3

// Point is a point in three-dimensional space.
type Point = mgl64.Vec3

// Steps returns the number of subdivisions used for a parameter range of
// length one.  The result is between 1 and 1/MinStep.
func Steps(step float64) int {
	if !(step > 0) {
		step = DefaultStep
	}
	step = max(step, MinStep)
	return max(1, int(math.Round(1/step)))
}
