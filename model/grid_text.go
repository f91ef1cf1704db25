package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrBadMap = errors.New("bad map")

// LoadGrid reads a text layout from a file, see ParseGrid.
func LoadGrid(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	g, err := ParseGrid(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseGrid reads one line per row: '#' is an obstacle, '.' or ' ' is free.
// All rows must have the same length. Empty lines are skipped.
func ParseGrid(reader io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([]string, 0)
	for scanner.Scan() {
		s := strings.TrimRight(scanner.Text(), "\r")
		if s == "" {
			continue
		}
		if len(lines) > 0 && len(s) != len(lines[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadMap, len(lines), len(s), len(lines[0]))
		}
		lines = append(lines, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadMap)
	}

	g, err := NewGrid(len(lines[0]), len(lines))
	if err != nil {
		return nil, err
	}
	for row, s := range lines {
		for col, char := range s {
			switch char {
			case '#':
				g.Block(Cell{X: col, Y: row})
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %d,%d", ErrBadMap, char, col, row)
			}
		}
	}
	return g, nil
}
