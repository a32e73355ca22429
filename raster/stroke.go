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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// kappa is the control point distance for approximating a quarter circle
// of radius one by a cubic Bézier curve.
const kappa = 0.5522847498

// StrokeLine fills the outline of the segment from a to b, drawn with the
// current Width and Cap.  Points are in user space.
//
// A zero-length segment produces a dot for round and square caps and
// nothing for butt caps.
func (r *Rasteriser) StrokeLine(a, b vec.Vec2, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	d := r.Width / 2
	o := &r.outline
	o.Cmds = o.Cmds[:0]
	o.Coords = o.Coords[:0]

	delta := b.Sub(a)
	l := delta.Length()
	if l < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			o.MoveTo(a.Add(vec.Vec2{X: d}))
			for _, dir := range [4]vec.Vec2{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}} {
				quarterArc(o, a, dir, vec.Vec2{X: -dir.Y, Y: dir.X}, d)
			}
			o.Close()
		case graphics.LineCapSquare:
			o.MoveTo(a.Add(vec.Vec2{X: d, Y: d})).
				LineTo(a.Add(vec.Vec2{X: -d, Y: d})).
				LineTo(a.Add(vec.Vec2{X: -d, Y: -d})).
				LineTo(a.Add(vec.Vec2{X: d, Y: -d})).
				Close()
		default:
			return
		}
		r.FillNonZero(o, emit)
		return
	}

	T := delta.Mul(1 / l)          // unit tangent
	N := vec.Vec2{X: -T.Y, Y: T.X} // unit normal, 90° counter-clockwise
	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(T.Mul(d))
		b = b.Add(T.Mul(d))
	}
	Nd := N.Mul(d)
	negN := vec.Vec2{X: -N.X, Y: -N.Y}
	negT := vec.Vec2{X: -T.X, Y: -T.Y}

	o.MoveTo(a.Add(Nd)).LineTo(b.Add(Nd))
	if r.Cap == graphics.LineCapRound {
		quarterArc(o, b, N, T, d)
		quarterArc(o, b, T, negN, d)
	} else {
		o.LineTo(b.Sub(Nd))
	}
	o.LineTo(a.Sub(Nd))
	if r.Cap == graphics.LineCapRound {
		quarterArc(o, a, negN, negT, d)
		quarterArc(o, a, negT, N, d)
	}
	o.Close()

	r.FillNonZero(o, emit)
}

// quarterArc appends a quarter circle of radius rad around center, from
// direction u to the perpendicular direction v.  The current point must
// be center+rad·u.
func quarterArc(o *path.Data, center, u, v vec.Vec2, rad float64) {
	k := kappa * rad
	start := center.Add(u.Mul(rad))
	end := center.Add(v.Mul(rad))
	o.CubeTo(start.Add(v.Mul(k)), end.Add(u.Mul(k)), end)
}
