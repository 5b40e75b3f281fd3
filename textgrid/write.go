// SPDX-License-Identifier: MIT

package textgrid

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdist/grid"
)

// Format selects the WriteFloat output layout.
type Format int

const (
	// FormatText writes one space-separated row per line.
	FormatText Format = iota
	// FormatCSV writes RFC 4180 records, one per row.
	FormatCSV
)

var formatNames = [...]string{
	FormatText: "text",
	FormatCSV:  "csv",
}

// ErrUnknownFormat indicates a format name or value WriteFloat does not support.
var ErrUnknownFormat = errors.New("textgrid: unknown format")

// String returns the name accepted by ParseFormat.
func (f Format) String() string {
	if f < FormatText || f > FormatCSV {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat maps "text" or "csv" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// formatValue renders v in the shortest form that round-trips;
// infinities are written as "inf" and "-inf".
func formatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteFloat writes g to w in the given format.
func WriteFloat(w io.Writer, g *grid.Float, f Format) error {
	if g == nil {
		return errors.New("textgrid.WriteFloat: nil grid")
	}
	width, height := g.Shape()
	row := make([]float64, width)
	rec := make([]string, width)

	switch f {
	case FormatText:
		bw := bufio.NewWriter(w)
		for y := 0; y < height; y++ {
			if err := g.Row(y, row); err != nil {
				return err
			}
			for x, v := range row {
				rec[x] = formatValue(v)
			}
			if _, err := bw.WriteString(strings.Join(rec, " ") + "\n"); err != nil {
				return fmt.Errorf("textgrid.WriteFloat: %w", err)
			}
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("textgrid.WriteFloat: %w", err)
		}

		return nil

	case FormatCSV:
		cw := csv.NewWriter(w)
		for y := 0; y < height; y++ {
			if err := g.Row(y, row); err != nil {
				return err
			}
			for x, v := range row {
				rec[x] = formatValue(v)
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("textgrid.WriteFloat: %w", err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("textgrid.WriteFloat: %w", err)
		}

		return nil
	}

	return fmt.Errorf("textgrid.WriteFloat: %v: %w", f, ErrUnknownFormat)
}
