package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/advent/crates"
	"github.com/chzyer/readline"
)

// day5step runs the day 5 moves interactively, one or more at a time.
func day5step(cfg *config, args []string) error {
	fs := flag.NewFlagSet("5step", flag.ContinueOnError)
	fs.SetOutput(stderr)
	bulk := fs.Bool("bulk", false, "Use a crane that moves many crates at once")
	if err := fs.Parse(args); err != nil {
		return err
	}
	input, err := readInput(cfg, 5, fs.Args())
	if err != nil {
		return err
	}
	p, err := crates.Parse(input)
	if err != nil {
		return err
	}
	mode := crates.SingleItem
	if *bulk {
		mode = crates.Bulk
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "5step> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent-5step.txt"),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	return stepLoop(rl, stdout, crates.NewMachine(p.Stacks, p.Moves, mode), p.Order)
}

type lineReader interface {
	Readline() (string, error)
}

const stepHelp = "commands: n or empty (one move), N (N moves), r (run to end), p (print), q (quit)"

func stepLoop(r lineReader, w io.Writer, m *crates.Machine, order []crates.Label) error {
	fmt.Fprintf(w, "%s crane, %d moves\n", m.Mode(), m.Len())
	fmt.Fprintln(w, crates.Render(m.Stacks(), order))
	for m.Pos() < m.Len() {
		line, err := r.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}

		var n int
		switch cmd := strings.TrimSpace(line); cmd {
		case "", "n":
			n = 1
		case "r":
			n = m.Len() - m.Pos()
		case "p":
			fmt.Fprintln(w, crates.Render(m.Stacks(), order))
			continue
		case "q":
			return nil
		default:
			n, err = strconv.Atoi(cmd)
			if err != nil || n < 1 {
				fmt.Fprintln(w, stepHelp)
				continue
			}
		}
		for i := 0; i < n; i++ {
			mv, ok := m.Next()
			if !ok {
				break
			}
			if _, err := m.Step(); err != nil {
				return err
			}
			fmt.Fprintf(w, "%d/%d: %s\n", m.Pos(), m.Len(), mv)
		}
		fmt.Fprintln(w, crates.Render(m.Stacks(), order))
	}
	answer, err := crates.Tops(m.Stacks())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, answer)
	return nil
}
