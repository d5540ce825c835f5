package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed input/day5.txt
var day5Input string

// Puzzle inputs used when none is given on the command line or in the
// config file.
var defaultInputs = map[int]string{
	5: day5Input,
}

// readInput returns the input for a day. In order, it tries the file named
// by args ("-" for stdin), the file named in cfg, and the built-in input.
func readInput(cfg *config, day int, args []string) (string, error) {
	switch len(args) {
	case 0:
	case 1:
		if args[0] == "-" {
			b, err := io.ReadAll(stdin)
			if err != nil {
				return "", fmt.Errorf("error reading stdin: %s", err)
			}
			return string(b), nil
		}
		return readInputFile(args[0])
	default:
		return "", errors.New("too many arguments (want at most an input file)")
	}
	if path := cfg.inputPath(day); path != "" {
		return readInputFile(path)
	}
	if s, ok := defaultInputs[day]; ok {
		return s, nil
	}
	return "", fmt.Errorf("no input for day %d", day)
}

func readInputFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading input: %s", err)
	}
	return string(b), nil
}
