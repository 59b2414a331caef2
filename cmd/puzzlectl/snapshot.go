package main

import (
	"fmt"
	"strings"

	"puzzlebox/internal/game/minesweeper"
	"puzzlebox/internal/game/sudoku"

	"gopkg.in/yaml.v2"
)

// boardSnapshot is the YAML form of a generated board.
type boardSnapshot struct {
	Game     string `yaml:"game"`
	Level    string `yaml:"level"`
	Seed     int64  `yaml:"seed"`
	Board    string `yaml:"board"`
	Solution string `yaml:"solution,omitempty"`
}

func (s *boardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// formatGrid renders one row per line with '.' for blanks.
func formatGrid(g sudoku.Grid) string {
	var b strings.Builder
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + g[r][c]))
			}
		}
		if r < len(g)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// parseGrid accepts nine rows of digits; '0' or '.' is a blank. Whitespace
// inside a row is ignored.
func parseGrid(text string) (sudoku.Grid, error) {
	var g sudoku.Grid
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != sudoku.Size {
		return g, fmt.Errorf("want %d rows, got %d", sudoku.Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != sudoku.Size {
			return g, fmt.Errorf("row %d: want %d cells, got %d", r+1, sudoku.Size, len(row))
		}
		for c, ch := range row {
			switch {
			case ch == '.' || ch == '0':
			case ch >= '1' && ch <= '9':
				g[r][c] = int(ch - '0')
			default:
				return g, fmt.Errorf("row %d: bad cell %q", r+1, ch)
			}
		}
	}
	return g, nil
}

// formatMines renders '*' for mines and the neighbour count elsewhere.
func formatMines(b *minesweeper.Board) string {
	var sb strings.Builder
	for r, row := range b.Cells {
		for _, cell := range row {
			switch {
			case cell.Mined:
				sb.WriteByte('*')
			case cell.Near == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + cell.Near))
			}
		}
		if r < len(b.Cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
