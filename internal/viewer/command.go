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
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Command shows images by piping them, PNG encoded, into the standard
// input of an external program.
type Command struct {
	Name string
	Args []string
}

// NewCommand splits a command line into program name and arguments.
// Quoting follows the rules of the shell.  The command is run directly, not
// through a shell, so an unquoted ; & | < or > is rejected.
func NewCommand(cmdLine string) (*Command, error) {
	p := shellwords.NewParser()
	words, err := p.Parse(cmdLine)
	if err != nil {
		return nil, fmt.Errorf("viewer command %q: %w", cmdLine, err)
	}
	if p.Position != -1 {
		return nil, fmt.Errorf("viewer command %q: shell operators are not supported", cmdLine)
	}
	if len(words) == 0 {
		return nil, errors.New("empty viewer command")
	}
	return &Command{Name: words[0], Args: words[1:]}, nil
}

// Show runs the command and waits for it to exit.
func (c *Command) Show(img image.Image) error {
	in := &bytes.Buffer{}
	if err := png.Encode(in, img); err != nil {
		return err
	}

	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = in
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", c.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}
