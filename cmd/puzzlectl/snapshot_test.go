package main

import (
	"bytes"
	"strings"
	"testing"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/minesweeper"
	"puzzlebox/internal/game/sudoku"

	"gopkg.in/yaml.v2"
)

const samplePuzzle = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func TestParseAndFormatGrid(t *testing.T) {
	g, err := parseGrid(samplePuzzle)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g[0][0] != 5 || g[0][2] != 0 || g[8][8] != 9 {
		t.Fatalf("unexpected cells %v", g[0])
	}
	if got := formatGrid(g); got != strings.TrimSpace(samplePuzzle) {
		t.Fatalf("round trip:\n%s", got)
	}

	if !sudoku.Solve(&g) || !sudoku.Complete(g) {
		t.Fatal("sample did not solve")
	}
	if got := formatGrid(g)[:9]; got != "534678912" {
		t.Fatalf("first row = %s", got)
	}
}

func TestParseGridRejectsBadInput(t *testing.T) {
	cases := []string{
		"123",
		strings.Repeat("123456789\n", 8) + "12345678x\n",
		strings.Repeat("12345678\n", 9),
	}
	for _, tc := range cases {
		if _, err := parseGrid(tc); err == nil {
			t.Fatalf("accepted %q", tc)
		}
	}
}

func TestMinesSnapshotYAML(t *testing.T) {
	b := minesweeper.FromMines(3, []game.Point{{Row: 0, Col: 0}})
	if got := formatMines(b); got != "*1.\n11.\n..." {
		t.Fatalf("field:\n%s", got)
	}

	snap := boardSnapshot{Game: "minesweeper", Level: "custom", Seed: 7, Board: formatMines(b)}
	s, err := snap.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	var back boardSnapshot
	if err := yaml.Unmarshal([]byte(s), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != snap {
		t.Fatalf("snapshot changed: %+v", back)
	}
}

func TestSudokuGenerateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"sudoku", "generate", "--level", "easy", "--seed", "11", "--yaml", "--solution"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var snap boardSnapshot
	if err := yaml.Unmarshal(out.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if snap.Seed != 11 || snap.Level != "easy" || strings.Count(snap.Board, ".") != sudoku.RemoveCount(game.Easy) {
		t.Fatalf("snapshot %+v", snap)
	}
	sol, err := parseGrid(snap.Solution)
	if err != nil || !sudoku.Complete(sol) {
		t.Fatalf("solution invalid: %v", err)
	}
}
