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

// Package config holds the settings of a rendering run.
//
// Settings can be loaded from YAML or TOML files.  Fields which are not
// present in the file keep their default values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/wireframe/canvas"
	"seehuhn.de/go/wireframe/geometry"
	"seehuhn.de/go/wireframe/interp"
)

// Viewer kinds.
const (
	ViewerWindow  = "window"
	ViewerCommand = "command"
	ViewerNone    = "none"
)

// Config describes a rendering run.
type Config struct {
	Width  int     `yaml:"width" toml:"width"`
	Height int     `yaml:"height" toml:"height"`
	Step   float64 `yaml:"step" toml:"step"`

	// Mode is "compose" or "replace".
	Mode string `yaml:"mode" toml:"mode"`

	Background [3]int `yaml:"background" toml:"background"`
	Color      [3]int `yaml:"color" toml:"color"`

	LineWidth float64 `yaml:"line_width" toml:"line_width"`
	LineCap   string  `yaml:"line_cap" toml:"line_cap"`
	Antialias bool    `yaml:"antialias" toml:"antialias"`
	Polygons  string  `yaml:"polygons" toml:"polygons"`

	Viewer        string `yaml:"viewer" toml:"viewer"`
	ViewerCommand string `yaml:"viewer_command" toml:"viewer_command"`
	ViewerScale   int    `yaml:"viewer_scale" toml:"viewer_scale"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Width:         500,
		Height:        500,
		Step:          geometry.DefaultStep,
		Mode:          interp.ComposeTransform.String(),
		Background:    [3]int{0, 0, 0},
		Color:         [3]int{0, 255, 0},
		LineWidth:     1,
		LineCap:       "butt",
		Antialias:     true,
		Polygons:      canvas.Fill.String(),
		Viewer:        ViewerWindow,
		ViewerCommand: "display -",
		ViewerScale:   1,
	}
}

// ErrUnknownFormat is returned by Load for files which are neither YAML
// nor TOML.
var ErrUnknownFormat = errors.New("unknown config file format")

// Load reads a configuration file.  The format is chosen by the file name
// extension: ".yaml" or ".yml" for YAML, ".toml" for TOML.  Unknown keys
// are an error.  The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil // empty file
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if !(c.Step >= geometry.MinStep && c.Step <= 1) {
		return fmt.Errorf("step %g out of range [%g, 1]", c.Step, geometry.MinStep)
	}
	if !(c.LineWidth > 0) {
		return fmt.Errorf("invalid line width %g", c.LineWidth)
	}
	if err := checkRGB("background", c.Background); err != nil {
		return err
	}
	if err := checkRGB("color", c.Color); err != nil {
		return err
	}
	if _, err := c.TransformMode(); err != nil {
		return err
	}
	if _, err := c.CanvasOptions(); err != nil {
		return err
	}
	switch c.Viewer {
	case ViewerWindow:
		if c.ViewerScale < 1 {
			return fmt.Errorf("invalid viewer scale %d", c.ViewerScale)
		}
	case ViewerCommand:
		if strings.TrimSpace(c.ViewerCommand) == "" {
			return errors.New("empty viewer command")
		}
	case ViewerNone:
		// pass
	default:
		return fmt.Errorf("unknown viewer %q", c.Viewer)
	}
	return nil
}

func checkRGB(name string, rgb [3]int) error {
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return fmt.Errorf("%s: channel value %d out of range 0..255", name, v)
		}
	}
	return nil
}

// TransformMode returns the transform mode selected by c.Mode.
func (c *Config) TransformMode() (interp.TransformMode, error) {
	return interp.ParseTransformMode(c.Mode)
}

// DrawColor returns the initial drawing colour.
func (c *Config) DrawColor() color.RGBA {
	return rgba(c.Color)
}

// CanvasOptions returns the canvas settings described by c.  The Viewer
// field of the result is left nil.
func (c *Config) CanvasOptions() (canvas.Options, error) {
	lineCap, err := canvas.ParseLineCap(c.LineCap)
	if err != nil {
		return canvas.Options{}, err
	}
	style, err := canvas.ParsePolygonStyle(c.Polygons)
	if err != nil {
		return canvas.Options{}, err
	}
	return canvas.Options{
		Width:      c.Width,
		Height:     c.Height,
		Background: rgba(c.Background),
		LineWidth:  c.LineWidth,
		LineCap:    lineCap,
		Antialias:  c.Antialias,
		Polygons:   style,
	}, nil
}

func rgba(v [3]int) color.RGBA {
	return color.RGBA{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: 255}
}
