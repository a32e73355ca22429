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

package geometry

import (
	"math"

	"seehuhn.de/go/wireframe/mat4"
)

// Edge is a line segment between two points.
type Edge [2]Point

// Edges is an ordered list of line segments.
type Edges []Edge

// Transform applies m to every point in e, in place.
func (e Edges) Transform(m mat4.Matrix) {
	for i := range e {
		e[i][0] = m.Apply(e[i][0])
		e[i][1] = m.Apply(e[i][1])
	}
}

// AddEdge appends the segment from p0 to p1.
func (e *Edges) AddEdge(p0, p1 Point) {
	*e = append(*e, Edge{p0, p1})
}

// AddCircle appends a closed polygon approximating the circle of radius r
// around (cx, cy, cz) in the plane z = cz.
//
// The circle is sampled at Steps(step) equally spaced angles.  The last
// segment ends exactly at the first sample.
func (e *Edges) AddCircle(cx, cy, cz, r, step float64) {
	n := Steps(step)
	first := Point{cx + r, cy, cz}
	prev := first
	for i := 1; i < n; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		p := Point{cx + r*c, cy + r*s, cz}
		e.AddEdge(prev, p)
		prev = p
	}
	e.AddEdge(prev, first)
}

// CurveKind selects how the four curve parameters are interpreted.
type CurveKind int

const (
	// Hermite curves are given by two end points and the tangent vectors
	// at these points.
	Hermite CurveKind = iota

	// Bezier curves are given by four control points.
	Bezier
)

func (k CurveKind) String() string {
	switch k {
	case Hermite:
		return "hermite"
	case Bezier:
		return "bezier"
	default:
		return "CurveKind(?)"
	}
}

// AddCurve appends a polyline approximating a planar cubic curve in the
// plane z = 0.
//
// For Hermite curves, (x0, y0) and (x1, y1) are the end points and
// (a0, a1), (b0, b1) are the tangents at the start and end.  For Bezier
// curves, (x0, y0), (x1, y1), (a0, a1), (b0, b1) are the four control
// points in order.  The curve is sampled at Steps(step)+1 parameter values
// from t=0 to t=1.
func (e *Edges) AddCurve(kind CurveKind, x0, y0, x1, y1, a0, a1, b0, b1, step float64) {
	cx := cubicCoefficients(kind, x0, x1, a0, b0)
	cy := cubicCoefficients(kind, y0, y1, a1, b1)

	n := Steps(step)
	prev := Point{cx.eval(0), cy.eval(0), 0}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		p := Point{cx.eval(t), cy.eval(t), 0}
		e.AddEdge(prev, p)
		prev = p
	}
}

// cubic holds the coefficients of a·t³ + b·t² + c·t + d.
type cubic struct {
	a, b, c, d float64
}

func (q cubic) eval(t float64) float64 {
	return ((q.a*t+q.b)*t+q.c)*t + q.d
}

// cubicCoefficients converts one coordinate of the curve description
// into polynomial form.  The arguments are ordered as in AddCurve.
func cubicCoefficients(kind CurveKind, p0, p1, u, v float64) cubic {
	switch kind {
	case Bezier:
		// control points p0, p1, u, v
		return cubic{
			a: -p0 + 3*p1 - 3*u + v,
			b: 3*p0 - 6*p1 + 3*u,
			c: -3*p0 + 3*p1,
			d: p0,
		}
	default:
		// end points p0, p1 with tangents u, v
		return cubic{
			a: 2*p0 - 2*p1 + u + v,
			b: -3*p0 + 3*p1 - 2*u - v,
			c: u,
			d: p0,
		}
	}
}
