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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/wireframe/mat4"
)

func TestSteps(t *testing.T) {
	assert.Equal(t, 10, Steps(0.1))
	assert.Equal(t, 100, Steps(0.01))
	assert.Equal(t, 1, Steps(5))
	assert.Equal(t, 10, Steps(0))
	assert.Equal(t, 10, Steps(-1))
	assert.Equal(t, 10, Steps(math.NaN()))
	assert.Equal(t, 1000, Steps(1e-5))
	assert.Equal(t, 1000, Steps(5e-324))
}

func TestCircleClosed(t *testing.T) {
	var e Edges
	e.AddCircle(0, 0, 0, 5, 0.1)
	require.Len(t, e, 10)

	for i := range e {
		next := e[(i+1)%len(e)]
		assert.Equal(t, e[i][1], next[0], "segment %d is not connected to its successor", i)
	}
	assert.Equal(t, e[0][0], e[len(e)-1][1])

	for _, seg := range e {
		r := math.Hypot(seg[0].X(), seg[0].Y())
		assert.InDelta(t, 5, r, 1e-12)
		assert.Zero(t, seg[0].Z())
	}
}

func TestCircleCenterIndependent(t *testing.T) {
	for _, step := range []float64{0.1, 0.05, 0.01} {
		var a, b Edges
		a.AddCircle(0, 0, 0, 3, step)
		b.AddCircle(100, -40, 7, 3, step)
		require.Len(t, b, len(a), "step %g", step)
		for i := range a {
			d := b[i][0].Sub(a[i][0])
			assert.InDelta(t, 100, d.X(), 1e-9)
			assert.InDelta(t, -40, d.Y(), 1e-9)
			assert.InDelta(t, 7, d.Z(), 1e-9)
		}
	}
}

func TestCurveEndpoints(t *testing.T) {
	type testCase struct {
		name string
		kind CurveKind
		args [8]float64
	}
	cases := []testCase{
		{"hermite", Hermite, [8]float64{10, 20, 150, 80, 50, 200, -30, 40}},
		{"bezier", Bezier, [8]float64{10, 20, 40, 200, 120, -50, 150, 80}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.args
			var e Edges
			e.AddCurve(tc.kind, a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], 0.1)
			require.Len(t, e, 10)

			start := e[0][0]
			assert.Equal(t, Point{10, 20, 0}, start)

			var end Point
			switch tc.kind {
			case Hermite:
				end = Point{a[2], a[3], 0}
			case Bezier:
				end = Point{a[6], a[7], 0}
			}
			last := e[len(e)-1][1]
			assert.InDelta(t, end.X(), last.X(), 1e-9)
			assert.InDelta(t, end.Y(), last.Y(), 1e-9)

			for i := 1; i < len(e); i++ {
				assert.Equal(t, e[i-1][1], e[i][0])
			}
		})
	}
}

func TestBezierMidpoint(t *testing.T) {
	// B(1/2) = (p0 + 3 p1 + 3 p2 + p3) / 8
	var e Edges
	e.AddCurve(Bezier, 0, 0, 8, 0, 8, 8, 0, 8, 0.5)
	require.Len(t, e, 2)
	assert.InDelta(t, 6, e[0][1].X(), 1e-12)
	assert.InDelta(t, 4, e[0][1].Y(), 1e-12)
}

func TestHermiteTangent(t *testing.T) {
	// straight line with consistent tangents is sampled uniformly
	var e Edges
	e.AddCurve(Hermite, 0, 0, 10, 0, 10, 0, 10, 0, 0.1)
	for i, seg := range e {
		assert.InDelta(t, float64(i), seg[0].X(), 1e-12)
		assert.InDelta(t, 0, seg[0].Y(), 1e-12)
	}
}

func TestEdgesTranslate(t *testing.T) {
	e := Edges{{Point{1, 2, 3}, Point{-4, 5.5, 0}}}
	e.Transform(mat4.Translate(10, -20, 0.5))
	assert.Equal(t, Edges{{Point{11, -18, 3.5}, Point{6, -14.5, 0.5}}}, e)
}

func TestBox(t *testing.T) {
	var p Polygons
	p.AddBox(1, 2, 3, 4, 5, 6)
	require.Len(t, p, 12)

	center := Point{1 + 2, 2 - 2.5, 3 - 3}
	checkOutward(t, p, func(Point) Point { return center })

	for _, tri := range p {
		for _, v := range tri {
			assert.Contains(t, []float64{1, 5}, v.X())
			assert.Contains(t, []float64{2, -3}, v.Y())
			assert.Contains(t, []float64{3, -3}, v.Z())
		}
	}
}

func TestSphere(t *testing.T) {
	const r = 50
	c := Point{10, 20, 30}
	var p Polygons
	p.AddSphere(c.X(), c.Y(), c.Z(), r, 0.1)
	assert.Len(t, p, 2*10*9)

	for _, tri := range p {
		for _, v := range tri {
			d := v.Sub(c)
			assert.InDelta(t, r, d.Len(), 1e-9)
		}
	}
	checkOutward(t, p, func(Point) Point { return c })
}

func TestTorus(t *testing.T) {
	const r1, r2 = 10, 40
	c := Point{0, 5, -5}
	var p Polygons
	p.AddTorus(c.X(), c.Y(), c.Z(), r1, r2, 0.1)
	assert.Len(t, p, 2*10*10)

	// the tube centre closest to a point on the surface
	tube := func(q Point) Point {
		d := q.Sub(c)
		rho := math.Hypot(d.X(), d.Z())
		return Point{c.X() + d.X()*r2/rho, c.Y(), c.Z() + d.Z()*r2/rho}
	}
	for _, tri := range p {
		for _, v := range tri {
			d := v.Sub(tube(v))
			assert.InDelta(t, r1, d.Len(), 1e-9)
		}
	}
	checkOutward(t, p, tube)
}

// checkOutward verifies that every triangle faces away from inside(centroid).
func checkOutward(t *testing.T, p Polygons, inside func(Point) Point) {
	t.Helper()
	for i, tri := range p {
		n := tri.Normal()
		g := tri[0].Add(tri[1]).Add(tri[2]).Mul(1.0 / 3)
		if n.Dot(n) < 1e-18 {
			t.Errorf("triangle %d is degenerate", i)
			continue
		}
		if n.Dot(g.Sub(inside(g))) <= 0 {
			t.Errorf("triangle %d faces inwards: %v", i, tri)
		}
	}
}

func TestPolygonsTransform(t *testing.T) {
	var p Polygons
	p.AddTriangle(Point{1, 0, 0}, Point{0, 1, 0}, Point{0, 0, 1})
	p.Transform(mat4.Scale(2, 3, 4))
	assert.Equal(t, Triangle{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}, p[0])
}
