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

// Package viewer shows rendered images to the user.
package viewer

import (
	"errors"
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrClosed is returned by Window.Show after the window has been closed.
var ErrClosed = errors.New("viewer window closed")

// Window shows images in a desktop window.
//
// Rendering happens in a background goroutine started by Run, while the
// window event loop occupies the calling goroutine.  Each call to Show
// replaces the window contents and waits until the user presses Space or
// Enter.  Escape or closing the window ends the session.
type Window struct {
	title         string
	width, height int
	scale         int

	frames chan frame
	closed chan struct{}
}

type frame struct {
	img  *image.RGBA
	seen chan struct{}
}

// NewWindow allocates a new window.  The window is opened by Run.
// Images are magnified by the integer factor scale.
func NewWindow(title string, width, height, scale int) *Window {
	return &Window{
		title:  title,
		width:  width,
		height: height,
		scale:  max(scale, 1),
		frames: make(chan frame),
		closed: make(chan struct{}),
	}
}

// Run opens the window and calls work in a new goroutine.  The window
// closes once work returns, or earlier if the user closes it.  Run must be
// called from the main goroutine; it returns the error from work.
func (w *Window) Run(work func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- work()
	}()

	g := &windowGame{w: w, workDone: done}
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width*w.scale, w.height*w.scale)
	ebiten.SetTPS(30)
	err := ebiten.RunGame(g)
	close(w.closed)

	if g.finished {
		return g.workErr
	}
	workErr := <-done
	if err != nil {
		return err
	}
	return workErr
}

// Closed returns a channel which is closed when the window goes away.
func (w *Window) Closed() <-chan struct{} {
	return w.closed
}

// Show displays img and blocks until the user has looked at it.
func (w *Window) Show(img image.Image) error {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	f := frame{img: rgba, seen: make(chan struct{})}
	select {
	case w.frames <- f:
	case <-w.closed:
		return ErrClosed
	}
	select {
	case <-f.seen:
		return nil
	case <-w.closed:
		return ErrClosed
	}
}

type windowGame struct {
	w *Window

	current *frame
	screen  *ebiten.Image

	workDone chan error
	finished bool
	workErr  error
}

func (g *windowGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.current != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			close(g.current.seen)
			g.current = nil
		}
		return nil
	}

	select {
	case f := <-g.w.frames:
		g.current = &f
		g.upload(f.img)
	case err := <-g.workDone:
		g.finished = true
		g.workErr = err
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *windowGame) upload(img *image.RGBA) {
	b := img.Bounds()
	if g.screen == nil || g.screen.Bounds().Size() != b.Size() {
		if g.screen != nil {
			g.screen.Deallocate()
		}
		g.screen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.screen.WritePixels(img.Pix)
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.screen != nil {
		screen.DrawImage(g.screen, nil)
	}
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.width, g.w.height
}
