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
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// ErrUnsupportedFormat is returned by Save for file names with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// encoders maps lower-case file extensions to raster image encoders.
var encoders = map[string]func(io.Writer, image.Image) error{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  encodeGIF,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Formats returns the file extensions accepted by Save.
func Formats() []string {
	return []string{".bmp", ".gif", ".jpeg", ".jpg", ".pdf", ".png", ".tif", ".tiff"}
}

// Save writes the canvas to a file.  The format is chosen by the file name
// extension.  PDF output is generated from the display list; all other
// formats store the pixel buffer.
func (c *Canvas) Save(fname string) error {
	ext := strings.ToLower(filepath.Ext(fname))
	if ext == ".pdf" {
		return c.savePDF(fname)
	}
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%s: %w", fname, ErrUnsupportedFormat)
	}
	return writeFile(fname, func(w io.Writer) error {
		return enc(w, c.img)
	})
}

func writeFile(fname string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(fname)
		}
	}()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return err
	}
	return w.Flush()
}

// savePDF writes the display list as a single page PDF file.  PDF user
// space has its origin in the bottom-left corner with y pointing up, which
// matches the canvas coordinates, so no transformation is needed.
func (c *Canvas) savePDF(fname string) error {
	w, h := float64(c.opt.Width), float64(c.opt.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(deviceRGB(c.opt.Background))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	page.SetLineWidth(c.opt.LineWidth)
	page.SetLineCap(c.opt.LineCap)

	for _, o := range c.ops {
		switch o.kind {
		case opLines:
			page.SetStrokeColor(deviceRGB(o.color))
			for i := 0; i < len(o.pts); i += 2 {
				page.MoveTo(o.pts[i].X, o.pts[i].Y)
				page.LineTo(o.pts[i+1].X, o.pts[i+1].Y)
			}
			page.Stroke()
		case opFill, opWire:
			if o.kind == opFill {
				page.SetFillColor(deviceRGB(o.color))
			} else {
				page.SetStrokeColor(deviceRGB(o.color))
			}
			for i := 0; i < len(o.pts); i += 3 {
				page.MoveTo(o.pts[i].X, o.pts[i].Y)
				page.LineTo(o.pts[i+1].X, o.pts[i+1].Y)
				page.LineTo(o.pts[i+2].X, o.pts[i+2].Y)
				page.ClosePath()
			}
			if o.kind == opFill {
				page.Fill()
			} else {
				page.Stroke()
			}
		}
	}

	return page.Close()
}

func deviceRGB(c color.RGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
