package crates

import (
	"strings"
)

// Each stack occupies a fixed-width column: "[X] ".
const colWidth = 4

// ParseLayout parses a drawing of the starting stacks. The last line names
// the stacks; the lines above it draw one crate per column, top row first.
// It returns the stacks along with their labels in label line order.
func ParseLayout(text string) (Stacks, []Label, error) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	n := len(lines)
	columns, order, err := parseLabels(lines[n-1], n)
	if err != nil {
		return nil, nil, err
	}
	stacks := make(Stacks, len(order))
	for _, label := range order {
		stacks[label] = []Crate{}
	}
	// Bottom row first, so each stack ends with its topmost crate.
	for i := n - 2; i >= 0; i-- {
		if err := parseRow(stacks, columns, lines[i], i+1); err != nil {
			return nil, nil, err
		}
	}
	return stacks, order, nil
}

// parseLabels reads the label line. columns[k] is the label of column k,
// or 0 if the column is unlabeled.
func parseLabels(line string, lineno int) (columns, order []Label, err error) {
	seen := make(map[Label]bool)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ' ' {
			continue
		}
		switch {
		case !printable(c):
			return nil, nil, layoutError(lineno, i, line, "label is not a printable character")
		case i%colWidth != 1:
			return nil, nil, layoutError(lineno, i, line, "label is not aligned with a column")
		case seen[c]:
			return nil, nil, layoutError(lineno, i, line, "duplicate label")
		}
		seen[c] = true
		k := i / colWidth
		for len(columns) <= k {
			columns = append(columns, 0)
		}
		columns[k] = c
		order = append(order, c)
	}
	if len(order) == 0 {
		return nil, nil, layoutError(lineno, -1, line, "no stack labels")
	}
	return columns, order, nil
}

func parseRow(stacks Stacks, columns []Label, line string, lineno int) error {
	for start := 0; start < len(line); start += colWidth {
		slot := line[start:min(start+colWidth, len(line))]
		if strings.Trim(slot, " ") == "" {
			continue
		}
		if len(slot) < 3 || slot[0] != '[' || slot[2] != ']' {
			return layoutError(lineno, start, line, "expected a crate like [A] or an empty slot")
		}
		c := slot[1]
		if !printable(c) || c == '[' || c == ']' {
			return layoutError(lineno, start+1, line, "bad crate")
		}
		if len(slot) == colWidth && slot[3] != ' ' {
			return layoutError(lineno, start+3, line, "columns must be separated by a space")
		}
		k := start / colWidth
		if k >= len(columns) || columns[k] == 0 {
			return layoutError(lineno, start, line, "crate in a column with no label")
		}
		stacks[columns[k]] = append(stacks[columns[k]], c)
	}
	return nil
}

func printable(c byte) bool { return c > ' ' && c <= '~' }

func layoutError(lineno, col int, line, msg string) error {
	return &ParseError{
		Line: lineno,
		Col:  col,
		Text: line,
		Msg:  msg,
		Err:  ErrMalformedLayout,
	}
}
