// Package grid - text form reader.
//
// One row per line, whitespace-separated tokens: a non-negative integer,
// "." for an EMPTY cell without cranes, "X" or "#" for a BUILDING.
// String writes the same form, so Parse(g.String()) reproduces g.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a grid in text form from r. Each non-blank line that does not
// start with "//" is one row; whitespace separates cell tokens.
// Token errors wrap ErrBadToken with line and column; shape errors are those of New.
// Complexity: O(R×C).
func Parse(r io.Reader) (*Grid, error) {
	var (
		cells  [][]Cell
		lineNo int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]Cell, len(fields))
		for i, tok := range fields {
			cell, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("%w %q at line %d, column %d", err, tok, lineNo, i+1)
			}
			row[i] = cell
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	return New(cells)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// parseToken decodes a single cell token.
func parseToken(tok string) (Cell, error) {
	switch tok {
	case "X", "#":
		return BuildingCell(), nil
	case ".":
		return EmptyCell(0), nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return Cell{}, ErrBadToken
	}
	if n < 0 {
		return Cell{}, ErrNegativeCranes
	}
	return EmptyCell(n), nil
}
