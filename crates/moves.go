package crates

import (
	"regexp"
	"strconv"
	"strings"
)

var moveRx = regexp.MustCompile(`^move (\d+) from ([!-~]) to ([!-~])$`)

// ParseMoves parses one move per line, in order. Lines that are not moves
// are ignored. Labels are not checked against any layout here; applying a
// move to a missing stack fails later.
func ParseMoves(text string) ([]Move, error) {
	return parseMoves(text, 0)
}

// parseMoves reports line numbers offset by the lines that precede text
// in the full input.
func parseMoves(text string, offset int) ([]Move, error) {
	var moves []Move
	for i, line := range strings.Split(text, "\n") {
		m := moveRx.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n == 0 {
			msg := "count must be positive"
			if err != nil {
				msg = "count out of range"
			}
			return nil, &ParseError{
				Line: offset + i + 1,
				Col:  -1,
				Text: strings.TrimSuffix(line, "\r"),
				Msg:  msg,
				Err:  ErrInvalidCount,
			}
		}
		moves = append(moves, Move{Count: n, From: m[2][0], To: m[3][0]})
	}
	return moves, nil
}
