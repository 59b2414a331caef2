package main

import (
	"fmt"

	"puzzlebox/internal/game"
	"puzzlebox/internal/game/minesweeper"

	"github.com/spf13/cobra"
)

var minesCmd = &cobra.Command{
	Use:   "mines",
	Short: "Print a Minesweeper field with every mine shown",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := difficulty()
		if err != nil {
			return err
		}
		if seed == 0 {
			seed = game.NewRand(0).Int63()
		}
		b := minesweeper.New(minesweeper.LevelFor(d), false, game.NewRand(seed))

		out := cmd.OutOrStdout()
		if asYAML {
			snap := boardSnapshot{Game: string(game.TypeMinesweeper), Level: b.Level.Label, Seed: seed, Board: formatMines(b)}
			s, err := snap.Serialize()
			if err != nil {
				return err
			}
			fmt.Fprint(out, s)
			return nil
		}
		fmt.Fprintf(out, "# %s %dx%d, %d mines, seed %d\n%s\n", b.Level.Label, b.Size(), b.Size(), b.Level.Mines, seed, formatMines(b))
		return nil
	},
}
