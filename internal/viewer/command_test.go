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

package viewer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	c, err := NewCommand(`display -title "my scene" -`)
	require.NoError(t, err)
	assert.Equal(t, "display", c.Name)
	assert.Equal(t, []string{"-title", "my scene", "-"}, c.Args)

	_, err = NewCommand("   ")
	assert.Error(t, err)

	_, err = NewCommand(`display "unterminated`)
	assert.Error(t, err)

	_, err = NewCommand("display - ; rm -rf x")
	assert.Error(t, err)
	_, err = NewCommand("cat | lpr")
	assert.Error(t, err)

	c, err = NewCommand(`sh -c "cat > out.png"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"-c", "cat > out.png"}, c.Args)
}

func TestCommandShow(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell available")
	}

	out := filepath.Join(t.TempDir(), "out.png")
	c := &Command{Name: "sh", Args: []string{"-c", `cat > "$0"`, out}}

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	require.NoError(t, c.Show(img))

	fd, err := os.Open(out)
	require.NoError(t, err)
	defer fd.Close()
	got, err := png.Decode(fd)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	r, _, _, _ := got.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestCommandShowFails(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell available")
	}

	c := &Command{Name: "sh", Args: []string{"-c", "echo broken >&2; exit 3"}}
	err := c.Show(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}
