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

package interp

import "seehuhn.de/go/wireframe/mat4"

// CoordinateStack is a stack of transformation matrices.  The stack is
// never empty; its top element is the active transform.
//
// Entries are stored by value, so a matrix obtained from the stack never
// changes when the stack is modified later.
type CoordinateStack struct {
	frames []mat4.Matrix
}

// NewCoordinateStack returns a stack holding a single identity matrix.
func NewCoordinateStack() *CoordinateStack {
	return &CoordinateStack{frames: []mat4.Matrix{mat4.Identity}}
}

// Depth returns the number of entries on the stack.
func (s *CoordinateStack) Depth() int {
	return len(s.frames)
}

// Top returns the active transform.
func (s *CoordinateStack) Top() mat4.Matrix {
	return s.frames[len(s.frames)-1]
}

// SetTop replaces the active transform.
func (s *CoordinateStack) SetTop(m mat4.Matrix) {
	s.frames[len(s.frames)-1] = m
}

// At returns the entry at position i, counting from the bottom of the stack.
func (s *CoordinateStack) At(i int) mat4.Matrix {
	return s.frames[i]
}

// Push duplicates the top entry.
func (s *CoordinateStack) Push() {
	s.frames = append(s.frames, s.Top())
}

// Pop removes the top entry.  The bottom entry is never removed; Pop
// reports whether an entry was removed.
func (s *CoordinateStack) Pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return true
}
