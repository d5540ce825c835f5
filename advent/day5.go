package main

import (
	"flag"
	"fmt"

	"github.com/cespare/advent/crates"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func init() {
	register("5a", day5(crates.SingleItem))
	register("5b", day5(crates.Bulk))
	register("5step", day5step)
}

func day5(mode crates.Mode) solution {
	return func(cfg *config, args []string) error {
		fs := flag.NewFlagSet("day5", flag.ContinueOnError)
		fs.SetOutput(stderr)
		verbose := fs.Bool("v", false, "Print the final stacks and move counts to stderr")
		debug := fs.Bool("debug", false, "Print the parsed puzzle to stderr")
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
		if *debug {
			pretty.Fprintf(stderr, "%# v\n", p)
		}

		m := crates.NewMachine(p.Stacks, p.Moves, mode)
		if err := m.Run(); err != nil {
			return err
		}
		answer, err := crates.Tops(m.Stacks())
		if err != nil {
			return err
		}
		if *verbose {
			fmt.Fprintf(stderr, "%s crane: %s moves, %s crates moved\n",
				mode, humanize.Comma(int64(m.Pos())), humanize.Comma(m.Moved()))
			fmt.Fprintln(stderr, crates.Render(m.Stacks(), p.Order))
		}
		fmt.Fprintln(stdout, answer)
		return nil
	}
}
