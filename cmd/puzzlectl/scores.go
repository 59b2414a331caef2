package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"puzzlebox/internal/config"
	"puzzlebox/internal/db"
	"puzzlebox/internal/game"
	"puzzlebox/internal/logger"
	"puzzlebox/internal/repository"
	"puzzlebox/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var scoresGame string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the scoreboard from DATABASE_URL or SQLITE_PATH",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := game.Type(scoresGame)
		if g != "" && !g.Valid() {
			return fmt.Errorf("unknown game %q", scoresGame)
		}

		cfg := config.Load()
		logger.Init("warn", false)

		var store service.ScoreStore
		switch {
		case cfg.DatabaseURL != "":
			pool := db.Connect(cfg.DatabaseURL)
			defer pool.Close()
			store = repository.NewScoreRepository(pool)
		case cfg.SQLitePath != "":
			sqlDB, err := db.OpenSQLite(cfg.SQLitePath)
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			store = repository.NewSQLiteScoreRepository(sqlDB)
		default:
			return fmt.Errorf("set DATABASE_URL or SQLITE_PATH")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()
		top := service.NewScoreService(store, cfg.ScoreLimit).TopScores(ctx, g)

		out := cmd.OutOrStdout()
		if asYAML {
			b, err := yaml.Marshal(top)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(b))
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tNAME\tGAME\tTIME\tERRORS\tLEVEL\tDATE")
		for i, s := range top {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n", i+1, s.Name, s.Game,
				(time.Duration(s.Time) * time.Second).String(), s.Errors, s.Level, s.CreatedAt.Format("2006-01-02"))
		}
		return tw.Flush()
	},
}

func init() {
	scoresCmd.Flags().StringVarP(&scoresGame, "game", "g", "", "Only this game's board")
}
