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

package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/wireframe/geometry"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func small() Options {
	opt := DefaultOptions()
	opt.Width, opt.Height = 20, 20
	return opt
}

func TestClear(t *testing.T) {
	opt := small()
	opt.Background = color.RGBA{R: 1, G: 2, B: 3, A: 255}
	c := New(opt)
	assert.Equal(t, image.Rect(0, 0, 20, 20), c.Bounds())
	assert.Equal(t, opt.Background, c.Image().RGBAAt(7, 5))

	c.DrawLines(geometry.Edges{{{0, 5.5, 0}, {20, 5.5, 0}}}, red)
	require.NotEmpty(t, c.ops)
	c.Clear()
	assert.Empty(t, c.ops)
	assert.Equal(t, opt.Background, c.Image().RGBAAt(10, 14))
}

func TestDrawLinesYUp(t *testing.T) {
	c := New(small())
	// user y = 10.5 covers device row 9
	c.DrawLines(geometry.Edges{{{2, 10.5, 3}, {18, 10.5, -7}}}, red)

	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(10, 9))
	assert.Equal(t, black, img.RGBAAt(10, 10))
	assert.Equal(t, black, img.RGBAAt(10, 8))
	assert.Equal(t, black, img.RGBAAt(0, 9))
}

func TestAntialias(t *testing.T) {
	for _, aa := range []bool{true, false} {
		opt := small()
		opt.Antialias = aa
		c := New(opt)
		// user y = 10 straddles device rows 9 and 10
		c.DrawLines(geometry.Edges{{{2, 10, 0}, {18, 10, 0}}}, red)
		got := c.Image().RGBAAt(10, 9)
		if aa {
			assert.Equal(t, uint8(128), got.R)
		} else {
			assert.Equal(t, red, got)
		}
	}
}

func TestDrawPolygonsCulling(t *testing.T) {
	front := geometry.Triangle{{2, 2, 0}, {18, 2, 0}, {10, 18, 0}}
	back := geometry.Triangle{front[0], front[2], front[1]}
	require.True(t, FacesViewer(front))
	require.False(t, FacesViewer(back))

	c := New(small())
	c.DrawPolygons(geometry.Polygons{back}, red)
	assert.Equal(t, black, c.Image().RGBAAt(10, 13))
	assert.Empty(t, c.ops)

	c.DrawPolygons(geometry.Polygons{front}, red)
	assert.Equal(t, red, c.Image().RGBAAt(10, 13))
	require.Len(t, c.ops, 1)
	assert.Len(t, c.ops[0].pts, 3)
}

func TestDrawPolygonsWire(t *testing.T) {
	opt := small()
	opt.Polygons = Wire
	c := New(opt)
	tri := geometry.Triangle{{2, 2.5, 0}, {18, 2.5, 0}, {10, 18, 0}}
	c.DrawPolygons(geometry.Polygons{tri}, red)

	img := c.Image()
	assert.Equal(t, black, img.RGBAAt(10, 13), "interior must stay empty")
	assert.Equal(t, red, img.RGBAAt(10, 17), "bottom side must be drawn")
}

type countingViewer struct {
	shown []image.Image
}

func (v *countingViewer) Show(img image.Image) error {
	v.shown = append(v.shown, img)
	return nil
}

func TestDisplay(t *testing.T) {
	c := New(small())
	require.NoError(t, c.Display())

	v := &countingViewer{}
	opt := small()
	opt.Viewer = v
	c = New(opt)
	require.NoError(t, c.Display())
	require.Len(t, v.shown, 1)

	// later drawing must not change the image already shown
	c.DrawLines(geometry.Edges{{{0, 0.5, 0}, {20, 0.5, 0}}}, red)
	shown := v.shown[0].(*image.RGBA)
	assert.Equal(t, black, shown.RGBAAt(10, 19))
	assert.Equal(t, red, c.Image().RGBAAt(10, 19))
}

func TestSaveRaster(t *testing.T) {
	dir := t.TempDir()
	c := New(small())
	c.DrawPolygons(geometry.Polygons{{{2, 2, 0}, {18, 2, 0}, {10, 18, 0}}}, red)

	decoders := map[string]func(*os.File) (image.Image, error){
		"out.png": func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"OUT.BMP": func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"out.tif": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	for name, decode := range decoders {
		fname := filepath.Join(dir, name)
		require.NoError(t, c.Save(fname), name)

		f, err := os.Open(fname)
		require.NoError(t, err)
		img, err := decode(f)
		f.Close()
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds(), name)

		r, g, b, _ := img.At(10, 13).RGBA()
		assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b}, name)
	}

	for _, name := range []string{"out.jpg", "out.gif"} {
		fname := filepath.Join(dir, name)
		require.NoError(t, c.Save(fname), name)
		info, err := os.Stat(fname)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestSavePDF(t *testing.T) {
	opt := small()
	opt.LineCap = graphics.LineCapRound
	c := New(opt)
	c.DrawLines(geometry.Edges{{{1, 1, 0}, {19, 19, 0}}}, red)
	c.DrawPolygons(geometry.Polygons{{{2, 2, 0}, {18, 2, 0}, {10, 18, 0}}}, red)

	fname := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, c.Save(fname))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestSaveErrors(t *testing.T) {
	c := New(small())
	err := c.Save(filepath.Join(t.TempDir(), "out.xyz"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	err = c.Save(filepath.Join(t.TempDir(), "missing", "out.png"))
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	c := New(small())
	dir := t.TempDir()
	for _, ext := range Formats() {
		require.NoError(t, c.Save(filepath.Join(dir, "out"+ext)), ext)
	}
}

func TestWriteFileRemovesPartial(t *testing.T) {
	boom := errors.New("boom")
	fname := filepath.Join(t.TempDir(), "out.png")
	err := writeFile(fname, func(w io.Writer) error {
		w.Write(make([]byte, 8192))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	_, err = os.Stat(fname)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "partial file left behind")
}

func TestParse(t *testing.T) {
	s, err := ParsePolygonStyle("wire")
	require.NoError(t, err)
	assert.Equal(t, Wire, s)
	_, err = ParsePolygonStyle("solid")
	assert.Error(t, err)

	lc, err := ParseLineCap("square")
	require.NoError(t, err)
	assert.Equal(t, graphics.LineCapSquare, lc)
	_, err = ParseLineCap("pointy")
	assert.Error(t, err)
}
