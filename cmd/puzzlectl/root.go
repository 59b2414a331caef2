package main

import (
	"fmt"
	"os"

	"puzzlebox/internal/game"

	"github.com/spf13/cobra"
)

var (
	seed   int64
	level  string
	asYAML bool
)

var rootCmd = &cobra.Command{
	Use:   "puzzlectl",
	Short: "Generate, solve and inspect puzzlebox boards",
	Long: `puzzlectl works with the same generators the server uses.

Print a hard Sudoku and its solution as YAML
	puzzlectl sudoku generate --level hard --solution --yaml

Solve a puzzle read from stdin (nine rows, 0 or . for blanks)
	puzzlectl sudoku solve < puzzle.txt

Show the scoreboard of the configured database
	puzzlectl scores --game minesweeper
`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// difficulty parses --level.
func difficulty() (game.Difficulty, error) {
	d, ok := game.ParseDifficulty(level)
	if !ok {
		return 0, fmt.Errorf("invalid level %q (easy, medium, hard)", level)
	}
	return d, nil
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed; 0 picks one from the clock")
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "medium", "Difficulty: easy, medium or hard")
	rootCmd.PersistentFlags().BoolVar(&asYAML, "yaml", false, "Print a YAML snapshot instead of a grid")

	rootCmd.AddCommand(sudokuCmd, minesCmd, scoresCmd)
}
