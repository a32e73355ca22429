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

// Command export renders all test cases to testdata/scenes, as PNG and PDF
// files, and writes an index of the scene scripts to
// testdata/scenes/index.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/testcases"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			c, err := wireframe.RenderExample(tc)
			if err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			for _, ext := range []string{".png", ".pdf"} {
				if err := c.Save(filepath.Join(outDir, name+ext)); err != nil {
					log.Fatalf("%s: %v", name, err)
				}
			}
			out.Scenes = append(out.Scenes, toJSON(name, tc))
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

type jsonScene struct {
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Step     float64  `json:"step,omitempty"`
	Mode     string   `json:"mode"`
	Polygons string   `json:"polygons"`
	Script   []string `json:"script"`
}

func toJSON(name string, tc testcases.TestCase) jsonScene {
	return jsonScene{
		Name:     name,
		Width:    tc.Width,
		Height:   tc.Height,
		Step:     tc.Step,
		Mode:     tc.Mode.String(),
		Polygons: tc.Polygons.String(),
		Script:   tc.Script,
	}
}
