package crates

import (
	"golang.org/x/exp/slices"
)

// A Machine applies a program of moves to a set of stacks, one move per
// step. It mutates the stacks it was given.
type Machine struct {
	stacks Stacks
	moves  []Move
	mode   Mode
	pc     int
	moved  int64
}

func NewMachine(stacks Stacks, moves []Move, mode Mode) *Machine {
	return &Machine{stacks: stacks, moves: moves, mode: mode}
}

// Step applies the next move. It returns false once every move has been
// applied. A move that fails leaves the stacks and the machine unchanged.
func (m *Machine) Step() (bool, error) {
	if m.pc >= len(m.moves) {
		return false, nil
	}
	mv := m.moves[m.pc]
	if err := m.check(mv); err != nil {
		return false, err
	}
	switch m.mode {
	case SingleItem:
		for i := 0; i < mv.Count; i++ {
			src := m.stacks[mv.From]
			c := src[len(src)-1]
			m.stacks[mv.From] = src[:len(src)-1]
			m.stacks[mv.To] = append(m.stacks[mv.To], c)
		}
	case Bulk:
		src := m.stacks[mv.From]
		cut := len(src) - mv.Count
		block := slices.Clone(src[cut:])
		m.stacks[mv.From] = src[:cut]
		m.stacks[mv.To] = append(m.stacks[mv.To], block...)
	default:
		panic("crates: bad mode " + m.mode.String())
	}
	m.pc++
	m.moved += int64(mv.Count)
	return true, nil
}

func (m *Machine) check(mv Move) error {
	for _, label := range []Label{mv.From, mv.To} {
		if _, ok := m.stacks[label]; !ok {
			return &MoveError{Index: m.pc + 1, Move: mv, Label: label, Err: ErrUnknownLabel}
		}
	}
	if len(m.stacks[mv.From]) < mv.Count {
		return &MoveError{Index: m.pc + 1, Move: mv, Label: mv.From, Err: ErrInsufficientCrates}
	}
	return nil
}

// Run steps until every move is applied or one fails.
func (m *Machine) Run() error {
	for {
		ok, err := m.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Next returns the move the next Step will apply.
func (m *Machine) Next() (Move, bool) {
	if m.pc >= len(m.moves) {
		return Move{}, false
	}
	return m.moves[m.pc], true
}

// Pos returns the number of moves applied so far.
func (m *Machine) Pos() int { return m.pc }

// Len returns the number of moves in the program.
func (m *Machine) Len() int { return len(m.moves) }

// Moved returns the number of crates moved so far.
func (m *Machine) Moved() int64 { return m.moved }

func (m *Machine) Stacks() Stacks { return m.stacks }

func (m *Machine) Mode() Mode { return m.mode }

// Apply applies moves to stacks in order with the given mode, stopping at
// the first move that fails.
func Apply(stacks Stacks, moves []Move, mode Mode) error {
	return NewMachine(stacks, moves, mode).Run()
}
