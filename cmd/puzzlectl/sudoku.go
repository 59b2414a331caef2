package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/sudoku"

	"github.com/spf13/cobra"
)

var showSolution bool

var sudokuCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Sudoku generator and solver",
}

var sudokuGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a new puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := difficulty()
		if err != nil {
			return err
		}
		if seed == 0 {
			seed = game.NewRand(0).Int63()
		}
		g, err := sudoku.New(d, game.NewRand(seed))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asYAML {
			snap := boardSnapshot{Game: string(game.TypeSudoku), Level: d.Label(), Seed: seed, Board: formatGrid(g.Puzzle)}
			if showSolution {
				snap.Solution = formatGrid(g.Solution)
			}
			s, err := snap.Serialize()
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
			return nil
		}

		fmt.Fprintf(out, "# %s, seed %d, %d blanks\n%s\n", d.Label(), seed, g.EmptyCells(), formatGrid(g.Puzzle))
		if showSolution {
			fmt.Fprintf(out, "\n%s\n", formatGrid(g.Solution))
		}
		return nil
	},
}

var sudokuSolveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		text, err := io.ReadAll(r)
		if err != nil {
			return err
		}

		g, err := parseGrid(string(text))
		if err != nil {
			return err
		}
		if bad := sudoku.Conflicts(g); len(bad) > 0 {
			return fmt.Errorf("puzzle has %d conflicting cells", len(bad))
		}
		if !sudoku.Solve(&g) {
			return errors.New("no solution")
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatGrid(g))
		return nil
	},
}

func init() {
	sudokuGenerateCmd.Flags().BoolVar(&showSolution, "solution", false, "Also print the solution")
	sudokuCmd.AddCommand(sudokuGenerateCmd, sudokuSolveCmd)
}
