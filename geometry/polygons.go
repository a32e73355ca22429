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

// Triangle is a triangle with vertices in counter-clockwise order, as seen
// from the side the surface faces.
type Triangle [3]Point

// Normal returns the (unnormalised) normal vector of the triangle.
// It points to the side from which the vertices appear counter-clockwise.
func (t Triangle) Normal() Point {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// Polygons is an ordered list of triangles.
type Polygons []Triangle

// Transform applies m to every vertex in p, in place.
func (p Polygons) Transform(m mat4.Matrix) {
	for i := range p {
		for j := range 3 {
			p[i][j] = m.Apply(p[i][j])
		}
	}
}

// AddTriangle appends the triangle a, b, c.
func (p *Polygons) AddTriangle(a, b, c Point) {
	*p = append(*p, Triangle{a, b, c})
}

// addQuad appends two triangles covering the quadrilateral a, b, c, d,
// given in counter-clockwise order.
func (p *Polygons) addQuad(a, b, c, d Point) {
	p.AddTriangle(a, b, c)
	p.AddTriangle(a, c, d)
}

// AddBox appends the 12 triangles of an axis-aligned box.  One corner is at
// (x, y, z); the box extends by w in positive x direction, by h in negative
// y direction and by d in negative z direction.  For positive w, h, d all
// faces point outwards.
func (p *Polygons) AddBox(x, y, z, w, h, d float64) {
	x0, x1 := x, x+w
	y0, y1 := y, y-h
	z0, z1 := z, z-d

	// corner returns the vertex selected by the three flags
	corner := func(hx, hy, hz bool) Point {
		q := Point{x0, y0, z0}
		if hx {
			q[0] = x1
		}
		if hy {
			q[1] = y1
		}
		if hz {
			q[2] = z1
		}
		return q
	}
	const o, l = false, true

	p.addQuad(corner(o, o, o), corner(o, l, o), corner(l, l, o), corner(l, o, o)) // front, +z
	p.addQuad(corner(l, o, l), corner(l, l, l), corner(o, l, l), corner(o, o, l)) // back, -z
	p.addQuad(corner(l, o, o), corner(l, l, o), corner(l, l, l), corner(l, o, l)) // right, +x
	p.addQuad(corner(o, o, l), corner(o, l, l), corner(o, l, o), corner(o, o, o)) // left, -x
	p.addQuad(corner(o, o, o), corner(l, o, o), corner(l, o, l), corner(o, o, l)) // top, +y
	p.addQuad(corner(o, l, l), corner(l, l, l), corner(l, l, o), corner(o, l, o)) // bottom, -y
}

// AddSphere appends a triangulated sphere of radius r around (cx, cy, cz).
//
// The polar axis is the x axis.  The sphere is cut into Steps(step)
// latitude bands and Steps(step) longitude sectors; the triangles which
// would degenerate at the two poles are left out.
func (p *Polygons) AddSphere(cx, cy, cz, r, step float64) {
	n := Steps(step)
	at := func(i, j int) Point {
		theta := math.Pi * float64(j) / float64(n)
		phi := 2 * math.Pi * float64(i%n) / float64(n)
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)
		if j == n {
			st, ct = 0, -1 // pin the far pole to a single point
		}
		return Point{cx + r*ct, cy + r*st*cp, cz + r*st*sp}
	}

	for i := range n {
		for j := range n {
			a := at(i, j)
			b := at(i, j+1)
			c := at(i+1, j+1)
			d := at(i+1, j)
			if j < n-1 {
				p.AddTriangle(a, b, c)
			}
			if j > 0 {
				p.AddTriangle(a, c, d)
			}
		}
	}
}

// AddTorus appends a triangulated torus around (cx, cy, cz).  The ring lies
// in the plane y = cy, has radius r2 and is swept by a circular tube of
// radius r1.  Both angles are divided into Steps(step) parts.
func (p *Polygons) AddTorus(cx, cy, cz, r1, r2, step float64) {
	n := Steps(step)
	at := func(i, j int) Point {
		phi := 2 * math.Pi * float64(i%n) / float64(n)   // around the ring
		theta := 2 * math.Pi * float64(j%n) / float64(n) // around the tube
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)
		k := r2 + r1*ct
		return Point{cx + k*cp, cy + r1*st, cz - k*sp}
	}

	for i := range n {
		for j := range n {
			a := at(i, j)
			b := at(i, j+1)
			c := at(i+1, j+1)
			d := at(i+1, j)
			p.AddTriangle(a, c, b)
			p.AddTriangle(a, d, c)
		}
	}
}
