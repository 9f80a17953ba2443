// Package script describes driver sequences for a turtle and executes them.
//
// A Program is an ordered list of commands. Programs come from Reference, or from TOML and
// YAML files through Parse and Load.
package script

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lixenwraith/vi-turtle/turtle"
)

var (
	ErrUnknownOp     = errors.New("unknown command")
	ErrBadRepeat     = errors.New("invalid repeat count")
	ErrUnknownFormat = errors.New("unknown script format")
)

// Op names
const (
	OpForward  = "forward"
	OpBackward = "backward"
	OpLeft     = "left"
	OpRight    = "right"
	OpPenUp    = "penup"
	OpPenDown  = "pendown"
	OpRepeat   = "repeat"
)

var aliases = map[string]string{
	"fd": OpForward,
	"bk": OpBackward,
	"lt": OpLeft,
	"rt": OpRight,
	"pu": OpPenUp,
	"pd": OpPenDown,
}

// Command is one driver step
// Arg is a distance for moves and degrees for turns; Times and Body apply to repeat only
type Command struct {
	Op    string    `toml:"op" yaml:"op"`
	Arg   float32   `toml:"arg,omitempty" yaml:"arg,omitempty"`
	Times int       `toml:"times,omitempty" yaml:"times,omitempty"`
	Body  []Command `toml:"body,omitempty" yaml:"body,omitempty"`
}

// Program is a named driver sequence
type Program struct {
	Name     string    `toml:"name" yaml:"name"`
	Commands []Command `toml:"commands" yaml:"commands"`
}

// Canonical returns the lowercase op name with aliases resolved
func Canonical(op string) string {
	op = strings.ToLower(strings.TrimSpace(op))
	if full, ok := aliases[op]; ok {
		return full
	}
	return op
}

// Validate checks every command, including nested repeat bodies
func Validate(p Program) error {
	return validate(p.Commands, "")
}

func validate(cmds []Command, path string) error {
	for i, c := range cmds {
		at := fmt.Sprintf("%s%d", path, i)
		switch Canonical(c.Op) {
		case OpForward, OpBackward, OpLeft, OpRight, OpPenUp, OpPenDown:
		case OpRepeat:
			if c.Times < 0 {
				return fmt.Errorf("command %s: %w: %d", at, ErrBadRepeat, c.Times)
			}
			if err := validate(c.Body, at+"."); err != nil {
				return err
			}
		default:
			return fmt.Errorf("command %s: %w: %q", at, ErrUnknownOp, c.Op)
		}
	}
	return nil
}

// Run validates the program, then applies it to t in order
// Nothing is executed when validation fails
func Run(t *turtle.Turtle, p Program) error {
	if err := Validate(p); err != nil {
		return err
	}
	log.Printf("Running program %q (%d commands)", p.Name, len(p.Commands))
	run(t, p.Commands)
	log.Printf("Program %q done: %v", p.Name, t)
	return nil
}

func run(t *turtle.Turtle, cmds []Command) {
	for _, c := range cmds {
		switch Canonical(c.Op) {
		case OpForward:
			t.Forward(c.Arg)
		case OpBackward:
			t.Backward(c.Arg)
		case OpLeft:
			t.Left(c.Arg)
		case OpRight:
			t.Right(c.Arg)
		case OpPenUp:
			t.PenUp()
		case OpPenDown:
			t.PenDown()
		case OpRepeat:
			for range c.Times {
				run(t, c.Body)
			}
			continue
		}
		log.Printf("%s %g -> %v", Canonical(c.Op), c.Arg, t)
	}
}

// Reference is the driver sequence of the reference drawing:
// a 10x3 rectangle, then a pen-up hop and an 8x16 rectangle
func Reference() Program {
	return Program{
		Name: "reference",
		Commands: []Command{
			{Op: OpRepeat, Times: 2, Body: []Command{
				{Op: OpForward, Arg: 3},
				{Op: OpLeft, Arg: 90},
				{Op: OpBackward, Arg: 10},
				{Op: OpLeft, Arg: 90},
			}},
			{Op: OpPenUp},
			{Op: OpBackward, Arg: 10},
			{Op: OpRight, Arg: 90},
			{Op: OpForward, Arg: 8},
			{Op: OpLeft, Arg: 90},
			{Op: OpPenDown},
			{Op: OpRepeat, Times: 2, Body: []Command{
				{Op: OpForward, Arg: 16},
				{Op: OpRight, Arg: 90},
				{Op: OpForward, Arg: 8},
				{Op: OpRight, Arg: 90},
			}},
		},
	}
}
