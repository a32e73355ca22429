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

package mat4

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// near reports whether all coordinates of p and q differ by at most eps.
func near(p, q mgl64.Vec3, eps float64) bool {
	for i := range 3 {
		if math.Abs(p[i]-q[i]) > eps {
			return false
		}
	}
	return true
}

func TestTranslateExact(t *testing.T) {
	m := Translate(0.25, -3, 1e6)
	got := m.Apply(mgl64.Vec3{1.5, 2, -7.125})
	if want := (mgl64.Vec3{1.75, -1, 1e6 - 7.125}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScale(t *testing.T) {
	got := Scale(2, 3, -1).Apply(mgl64.Vec3{1, 1, 1})
	if want := (mgl64.Vec3{2, 3, -1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRotateInverse(t *testing.T) {
	const eps = 1e-9
	points := []mgl64.Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{3, -4, 5},
		{-0.5, 12, 1e3},
	}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, deg := range []float64{0, 17, 90, 180, 271.5, -45} {
			theta := deg * math.Pi / 180
			m := Rotate(axis, theta).Mul(Rotate(axis, -theta))
			for _, p := range points {
				q := m.Apply(p)
				if !near(q, p, eps) {
					t.Errorf("%v %g°: %v -> %v", axis, deg, p, q)
				}
			}
		}
	}
}

func TestRotateDirection(t *testing.T) {
	const eps = 1e-15
	type testCase struct {
		axis    Axis
		in, out mgl64.Vec3
	}
	cases := []testCase{
		{AxisX, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{AxisY, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},
		{AxisZ, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
	}
	for _, tc := range cases {
		got := Rotate(tc.axis, math.Pi/2).Apply(tc.in)
		if !near(got, tc.out, eps) {
			t.Errorf("%v: %v -> %v, want %v", tc.axis, tc.in, got, tc.out)
		}
	}
}

// TestMulOrder checks that the right-hand factor is applied first.
func TestMulOrder(t *testing.T) {
	p := mgl64.Vec3{1, 1, 1}

	got := Translate(10, 0, 0).Mul(Scale(2, 2, 2)).Apply(p)
	if want := (mgl64.Vec3{12, 2, 2}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	got = Scale(2, 2, 2).Mul(Translate(10, 0, 0)).Apply(p)
	if want := (mgl64.Vec3{22, 2, 2}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if m.Mul(Identity) != m || Identity.Mul(m) != m {
		t.Error("identity is not neutral")
	}
	if !Identity.IsIdentity() || m.IsIdentity() {
		t.Error("IsIdentity is wrong")
	}
}

func TestRotateInvalidAxis(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Rotate(Axis('w'), 1)
}
