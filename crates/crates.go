// Package crates simulates a crane rearranging labeled stacks of crates.
//
// The input is a fixed-width drawing of the stacks followed by a blank line
// and a list of moves:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
//	move 3 from 1 to 3
//
// A single-item crane moves crates one at a time, so a group of moved crates
// ends up reversed; a bulk crane moves the whole group at once and keeps its
// order. The answer is the top crate of each stack in label order.
package crates

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Label names one stack. It is the character drawn under the stack's
// column on the label line.
type Label = byte

// A Crate is the character drawn inside a crate's brackets.
type Crate = byte

// Stacks maps each label to the crates on that stack, bottom first.
// The last element is the top of the stack.
type Stacks map[Label][]Crate

// Labels returns the stack labels in ascending order.
func (s Stacks) Labels() []Label {
	labels := maps.Keys(s)
	slices.Sort(labels)
	return labels
}

// Clone returns a deep copy of s.
func (s Stacks) Clone() Stacks {
	c := make(Stacks, len(s))
	for label, stack := range s {
		c[label] = slices.Clone(stack)
		if c[label] == nil {
			c[label] = []Crate{}
		}
	}
	return c
}

// A Move relocates Count crates from the top of stack From to the top of
// stack To.
type Move struct {
	Count int
	From  Label
	To    Label
}

func (m Move) String() string {
	return fmt.Sprintf("move %d from %c to %c", m.Count, m.From, m.To)
}

// Mode selects how a Move relocates its crates.
type Mode int

const (
	// SingleItem moves crates one at a time, reversing their order.
	SingleItem Mode = iota
	// Bulk moves all the crates of a Move together, keeping their order.
	Bulk
)

func (m Mode) String() string {
	switch m {
	case SingleItem:
		return "single-item"
	case Bulk:
		return "bulk"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	ErrMalformedLayout    = errors.New("malformed stack layout")
	ErrInvalidCount       = errors.New("invalid move count")
	ErrUnknownLabel       = errors.New("unknown stack label")
	ErrInsufficientCrates = errors.New("not enough crates on stack")
	ErrEmptyStack         = errors.New("empty stack")
)

// A ParseError reports a problem with one line of input.
type ParseError struct {
	Line int    // 1-based line number in the input
	Col  int    // 0-based byte offset in the line, or -1
	Text string // the offending line
	Msg  string
	Err  error // ErrMalformedLayout or ErrInvalidCount
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d", e.Line)
	if e.Col >= 0 {
		fmt.Fprintf(&b, ", column %d", e.Col)
	}
	fmt.Fprintf(&b, ": %s", e.Err)
	if e.Msg != "" {
		fmt.Fprintf(&b, ": %s", e.Msg)
	}
	fmt.Fprintf(&b, " (%q)", e.Text)
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// A MoveError reports a move that could not be applied.
type MoveError struct {
	Index int // 1-based position of the move in the program
	Move  Move
	Label Label // the stack at fault
	Err   error // ErrUnknownLabel or ErrInsufficientCrates
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move #%d (%s): stack %q: %s", e.Index, e.Move, e.Label, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// A Puzzle is a parsed input: the starting stacks and the moves to apply.
type Puzzle struct {
	Stacks Stacks
	Order  []Label // labels as they appear on the label line
	Moves  []Move
}

// Parse splits input at its first empty line and parses the stack layout
// before it and the moves after it. Input without an empty line is a
// layout with no moves.
func Parse(input string) (*Puzzle, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	layout, moves := strings.TrimRight(input, "\n"), ""
	offset := 0
	if i := strings.Index(input, "\n\n"); i >= 0 {
		layout, moves = input[:i], input[i+2:]
		offset = strings.Count(layout, "\n") + 2
	}
	stacks, order, err := ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	ms, err := parseMoves(moves, offset)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Stacks: stacks, Order: order, Moves: ms}, nil
}

// Run parses input, applies its moves with the given mode, and returns the
// top crate of every stack.
func Run(input string, mode Mode) (string, error) {
	p, err := Parse(input)
	if err != nil {
		return "", err
	}
	if err := Apply(p.Stacks, p.Moves, mode); err != nil {
		return "", err
	}
	return Tops(p.Stacks)
}

// RunSingleItem solves input with a crane that moves one crate at a time.
func RunSingleItem(input string) (string, error) { return Run(input, SingleItem) }

// RunBulk solves input with a crane that moves many crates at once.
func RunBulk(input string) (string, error) { return Run(input, Bulk) }
