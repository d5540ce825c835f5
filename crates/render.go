package crates

import (
	"fmt"
	"strings"
)

// Tops returns the top crate of every stack, in label order.
func Tops(stacks Stacks) (string, error) {
	var b strings.Builder
	for _, label := range stacks.Labels() {
		stack := stacks[label]
		if len(stack) == 0 {
			return "", fmt.Errorf("stack %q: %w", label, ErrEmptyStack)
		}
		b.WriteByte(stack[len(stack)-1])
	}
	return b.String(), nil
}

// Render draws stacks in the same format ParseLayout reads, with columns in
// the given order. A nil order draws the columns in label order.
func Render(stacks Stacks, order []Label) string {
	if order == nil {
		order = stacks.Labels()
	}
	height := 0
	for _, label := range order {
		height = max(height, len(stacks[label]))
	}
	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		var line strings.Builder
		for i, label := range order {
			if i > 0 {
				line.WriteByte(' ')
			}
			if stack := stacks[label]; row < len(stack) {
				fmt.Fprintf(&line, "[%c]", stack[row])
			} else {
				line.WriteString("   ")
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	for i, label := range order {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, " %c ", label)
	}
	return strings.TrimRight(b.String(), " ")
}
