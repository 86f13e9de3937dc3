package main

import (
	"fmt"

	"aesvec/internal/config"
	"aesvec/internal/services/vector"
	"aesvec/internal/store"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "repr, hex, json or rsp"},
		&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "indices for the looped ECB cases"},
		&cli.StringFlag{Name: "iv", Usage: "fixed 16-byte IV in hex; random per case when unset"},
		&cli.StringFlag{Name: "case", Aliases: []string{"c"}, Usage: "comma separated case letters, all when unset"},
		&cli.BoolFlag{Name: "record", Usage: "store the run in DATABASE_URL"},
	}
}

// withFlags overlays the generate flags that were given on top of the environment.
func withFlags(cfg config.Config, c *cli.Context) config.Config {
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("count") {
		cfg.Count = c.Int("count")
	}
	if c.IsSet("iv") {
		cfg.IVHex = c.String("iv")
	}
	if c.IsSet("case") {
		cfg.Cases = c.String("case")
	}
	return cfg
}

func generateAction(base config.Config, lg *zap.SugaredLogger) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg := withFlags(base, c)
		if cfg.Count < 1 {
			return fmt.Errorf("count must be positive, got %d", cfg.Count)
		}
		f, err := vector.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		iv, err := cfg.IV()
		if err != nil {
			return err
		}
		scenarios, err := vector.Select(vector.SplitCases(cfg.Cases))
		if err != nil {
			return err
		}
		vs, err := vector.Generate(scenarios, vector.Options{Count: cfg.Count, IV: iv, Logger: lg})
		if err != nil {
			return err
		}

		if c.Bool("record") {
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("--record needs DATABASE_URL")
			}
			st, err := store.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			run := store.NewRun("cli", f, cfg.Count, vs)
			if err := st.Record(c.Context, run); err != nil {
				return fmt.Errorf("record run: %w", err)
			}
			lg.Infow("run recorded", "id", run.ID, "vectors", len(run.Vectors))
		}

		if err := vector.Render(c.App.Writer, f, vs); err != nil {
			return err
		}
		lg.Infow("vectors generated", "format", f, "cases", len(scenarios), "vectors", len(vs))
		return nil
	}
}
