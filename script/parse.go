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

// Package script reads drawing scripts.
//
// A script is a sequence of lines.  Each command is a single word on a
// line of its own; commands which take arguments read them from the line
// directly after the command.  Arguments are separated by white space.
// The file name of "save" may be quoted shell-style if it contains spaces;
// an unquoted name is taken literally, backslashes included.
// Lines which are not commands are ignored.  Reading stops at "quit".
//
// All argument lines are checked when the script is parsed, so that a
// malformed script is rejected before anything is drawn.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"seehuhn.de/go/wireframe/geometry"
	"seehuhn.de/go/wireframe/mat4"
)

// ArgumentError reports a malformed argument line.
type ArgumentError struct {
	Line        int    // line number of the command
	Instruction string // the command name
	Reason      string
	Err         error // underlying error, if any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Instruction, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// parser builds one instruction from its argument tokens.
type parser struct {
	// nArgs lists the accepted argument counts.  An empty list means the
	// command takes no argument line.
	nArgs  []int
	// quoted is set for commands whose argument may use shell quoting.
	quoted bool
	parse  func(a *args) Instruction
}

var commands = map[string]parser{
	"push":    {parse: func(*args) Instruction { return Push{} }},
	"pop":     {parse: func(*args) Instruction { return Pop{} }},
	"ident":   {parse: func(*args) Instruction { return Ident{} }},
	"clear":   {parse: func(*args) Instruction { return Clear{} }},
	"display": {parse: func(*args) Instruction { return Display{} }},
	"quit":    {parse: func(*args) Instruction { return Quit{} }},

	"scale": {nArgs: []int{3}, parse: func(a *args) Instruction {
		return Scale{a.num(), a.num(), a.num()}
	}},
	"move": {nArgs: []int{3}, parse: func(a *args) Instruction {
		return Move{a.num(), a.num(), a.num()}
	}},
	"rotate": {nArgs: []int{2}, parse: func(a *args) Instruction {
		return Rotate{Axis: a.axis(), Degrees: a.num()}
	}},
	"color": {nArgs: []int{3}, parse: func(a *args) Instruction {
		var c Color
		c.R, c.G, c.B, c.A = a.channel(), a.channel(), a.channel(), 255
		return c
	}},
	"line": {nArgs: []int{6}, parse: func(a *args) Instruction {
		return Line{a.num(), a.num(), a.num(), a.num(), a.num(), a.num()}
	}},
	"circle": {nArgs: []int{3, 4}, parse: func(a *args) Instruction {
		if len(a.tokens) == 3 {
			return Circle{CX: a.num(), CY: a.num(), R: a.num()}
		}
		return Circle{a.num(), a.num(), a.num(), a.num()}
	}},
	"hermite": {nArgs: []int{8}, parse: func(a *args) Instruction {
		return a.curve(geometry.Hermite)
	}},
	"bezier": {nArgs: []int{8}, parse: func(a *args) Instruction {
		return a.curve(geometry.Bezier)
	}},
	"box": {nArgs: []int{6}, parse: func(a *args) Instruction {
		return Box{a.num(), a.num(), a.num(), a.num(), a.num(), a.num()}
	}},
	"sphere": {nArgs: []int{4}, parse: func(a *args) Instruction {
		return Sphere{a.num(), a.num(), a.num(), a.num()}
	}},
	"torus": {nArgs: []int{5}, parse: func(a *args) Instruction {
		return Torus{a.num(), a.num(), a.num(), a.num(), a.num()}
	}},
	"save": {nArgs: []int{1}, quoted: true, parse: func(a *args) Instruction {
		return Save{Path: a.next()}
	}},
}

// TakesArguments reports whether name is a command which reads an
// argument line.
func TakesArguments(name string) bool {
	return len(commands[name].nArgs) > 0
}

// Parse reads a script from r.
func Parse(r io.Reader) (Program, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// ParseString reads a script from a string.
func ParseString(s string) (Program, error) {
	return Parse(strings.NewReader(s))
}

// ParseLines parses a script given as a list of lines.  If an argument
// line is malformed, the error is an *ArgumentError.
func ParseLines(lines []string) (Program, error) {
	var prog Program
	for i := 0; i < len(lines); i++ {
		lineNo := i + 1
		word := strings.TrimSpace(lines[i])
		if word == "" {
			continue
		}

		p, ok := commands[word]
		if !ok {
			prog = append(prog, Statement{Line: lineNo, Instruction: Unknown{Text: word}})
			continue
		}

		a := &args{line: lineNo, name: word}
		if len(p.nArgs) > 0 {
			i++
			if i >= len(lines) {
				return nil, &ArgumentError{Line: lineNo, Instruction: word, Reason: "missing argument line"}
			}
			tokens, err := split(lines[i], p.quoted)
			if err != nil {
				return nil, &ArgumentError{Line: lineNo, Instruction: word, Reason: "malformed argument line", Err: err}
			}
			if !countOK(p.nArgs, len(tokens)) {
				return nil, &ArgumentError{
					Line:        lineNo,
					Instruction: word,
					Reason:      fmt.Sprintf("expected %s arguments, got %d", countString(p.nArgs), len(tokens)),
				}
			}
			a.tokens = tokens
		}

		instr := p.parse(a)
		if a.err != nil {
			return nil, a.err
		}
		prog = append(prog, Statement{Line: lineNo, Instruction: instr})

		if word == "quit" {
			break
		}
	}
	return prog, nil
}

var errOperator = errors.New("unquoted shell operator")

// split breaks an argument line into tokens.  Lines are split at white
// space, unless quoted is set and the line contains quote characters; then
// shell quoting rules apply and anything after an unquoted ; & | < or > is
// an error.
func split(line string, quoted bool) ([]string, error) {
	if !quoted || !strings.ContainsAny(line, `"'`) {
		return strings.Fields(line), nil
	}
	p := shellwords.NewParser()
	tokens, err := p.Parse(line)
	if err != nil {
		return nil, err
	}
	if p.Position != -1 {
		return nil, errOperator
	}
	return tokens, nil
}

func countOK(allowed []int, n int) bool {
	for _, k := range allowed {
		if k == n {
			return true
		}
	}
	return false
}

func countString(allowed []int) string {
	parts := make([]string, len(allowed))
	for i, k := range allowed {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " or ")
}

// args hands out the argument tokens of one command in order.  The first
// conversion error is kept in err; later conversions return zero values.
type args struct {
	line   int
	name   string
	tokens []string
	pos    int
	err    *ArgumentError
}

func (a *args) next() string {
	tok := a.tokens[a.pos]
	a.pos++
	return tok
}

func (a *args) fail(reason string, err error) {
	if a.err == nil {
		a.err = &ArgumentError{Line: a.line, Instruction: a.name, Reason: reason, Err: err}
	}
}

// num converts the next token to a finite floating point number.
func (a *args) num() float64 {
	tok := a.next()
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		a.fail(fmt.Sprintf("argument %d: %q is not a number", a.pos, tok), err)
		return 0
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		a.fail(fmt.Sprintf("argument %d: %q is not a finite number", a.pos, tok), nil)
		return 0
	}
	return x
}

// channel converts the next token to a colour channel value.  Numbers are
// rounded and clamped to the range 0, ..., 255.
func (a *args) channel() uint8 {
	x := a.num()
	return uint8(min(255, max(0, math.Round(x))))
}

func (a *args) axis() mat4.Axis {
	tok := a.next()
	switch strings.ToLower(tok) {
	case "x":
		return mat4.AxisX
	case "y":
		return mat4.AxisY
	case "z":
		return mat4.AxisZ
	}
	a.fail(fmt.Sprintf("argument %d: invalid axis %q", a.pos, tok), nil)
	return mat4.AxisZ
}

func (a *args) curve(kind geometry.CurveKind) Instruction {
	return Curve{kind,
		a.num(), a.num(), a.num(), a.num(),
		a.num(), a.num(), a.num(), a.num()}
}
