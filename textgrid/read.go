// SPDX-License-Identifier: MIT

package textgrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvdist/grid"
)

// ErrBadRune indicates a character that is neither a feature nor a background mark.
var ErrBadRune = errors.New("textgrid: unexpected character")

// maxLineBytes bounds a single input row.
const maxLineBytes = 16 << 20

// ReadBinary parses a feature grid from r. Rows must all have the same
// number of cells; a ragged row yields grid.ErrNonRectangular. Empty input
// yields a 0×0 grid.
func ReadBinary(r io.Reader) (*grid.Bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]bool
	blanks := 0 // blank lines seen since the last non-blank row
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blanks++
			continue
		}
		// Blank lines are only tolerated at the end.
		for ; blanks > 0; blanks-- {
			rows = append(rows, []bool{})
		}

		row, err := parseRow(text, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textgrid.ReadBinary: %w", err)
	}

	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("textgrid.ReadBinary: %w", err)
	}

	return g, nil
}

func parseRow(text string, line int) ([]bool, error) {
	row := make([]bool, 0, len(text))
	col := 0
	for _, r := range text {
		col++
		switch r {
		case '#', '1', 'x', 'X', '*':
			row = append(row, true)
		case '.', '0', '-', '_', ' ':
			row = append(row, false)
		default:
			return nil, fmt.Errorf("textgrid.ReadBinary: line %d col %d: %q: %w", line, col, r, ErrBadRune)
		}
	}

	return row, nil
}
