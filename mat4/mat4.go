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

// Package mat4 implements 4x4 matrices for affine transformations of
// three-dimensional points in homogeneous coordinates.
//
// Points are treated as column vectors.  A matrix M maps a point p to M·p,
// and for two matrices A and B the product A.Mul(B) maps p to A·(B·p).
// This means that B is applied first, in the coordinate frame set up by A.
//
// The arithmetic is done by [mgl64]; this package adds the operations
// used by the coordinate stack.
package mat4

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 matrix in column-major order, as used by mgl64.
//
// Matrix is an array type, so assignment copies the whole matrix.
type Matrix mgl64.Mat4

// Identity is the identity transformation.
var Identity = Matrix(mgl64.Ident4())

// Scale returns a matrix which scales the coordinate axes by sx, sy and sz.
func Scale(sx, sy, sz float64) Matrix {
	return Matrix(mgl64.Scale3D(sx, sy, sz))
}

// Translate returns a matrix which shifts points by (tx, ty, tz).
func Translate(tx, ty, tz float64) Matrix {
	return Matrix(mgl64.Translate3D(tx, ty, tz))
}

// RotateX returns a counter-clockwise rotation by theta radians about the
// x axis, as seen looking from positive x towards the origin.
func RotateX(theta float64) Matrix {
	return Matrix(mgl64.HomogRotate3DX(theta))
}

// RotateY returns a counter-clockwise rotation by theta radians about the
// y axis.
func RotateY(theta float64) Matrix {
	return Matrix(mgl64.HomogRotate3DY(theta))
}

// RotateZ returns a counter-clockwise rotation by theta radians about the
// z axis.
func RotateZ(theta float64) Matrix {
	return Matrix(mgl64.HomogRotate3DZ(theta))
}

// Axis names one of the three coordinate axes.
type Axis byte

// These are the supported rotation axes.
const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

func (a Axis) String() string {
	switch a {
	case AxisX, AxisY, AxisZ:
		return string(rune(a))
	default:
		return fmt.Sprintf("Axis(%d)", byte(a))
	}
}

// Rotate returns a rotation by theta radians about the given axis.
func Rotate(axis Axis, theta float64) Matrix {
	switch axis {
	case AxisX:
		return RotateX(theta)
	case AxisY:
		return RotateY(theta)
	case AxisZ:
		return RotateZ(theta)
	default:
		panic(fmt.Sprintf("mat4: invalid rotation axis %v", axis))
	}
}

// Mul returns the matrix product m·other.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix(mgl64.Mat4(m).Mul4(mgl64.Mat4(other)))
}

// Apply returns the image of the point p under m.
//
// The homogeneous coordinate is dropped without division, so the result
// is only meaningful for affine transformations.
func (m Matrix) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Mat4(m).Mul4x1(p.Vec4(1)).Vec3()
}

// IsIdentity reports whether m equals the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}
