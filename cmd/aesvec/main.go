package main

import (
	"io"
	"log"
	"os"

	"aesvec/internal/config"
	"aesvec/internal/logger"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	Name    = "aesvec"
	Version = "v0.3.0"
	Usage   = "generate AES test vectors from hashed labels"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lg := logger.New(cfg.LogLevel)
	defer lg.Sync()

	if err := newApp(cfg, lg, os.Stdout).Run(os.Args); err != nil {
		lg.Fatalw("aesvec failed", "error", err)
	}
}

func newApp(cfg config.Config, lg *zap.SugaredLogger, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Version = Version
	app.Usage = Usage
	app.Writer = out
	app.Flags = generateFlags()
	app.Action = generateAction(cfg, lg)
	app.Commands = []*cli.Command{
		{
			Name:   "generate",
			Usage:  "aesvec generate --format=repr --count=1 --case=A,D",
			Flags:  generateFlags(),
			Action: generateAction(cfg, lg),
		},
		{
			Name:   "serve",
			Usage:  "serve fixtures over HTTP on HTTP_PORT",
			Action: serveAction(cfg, lg),
		},
		{
			Name:  "token",
			Usage: "mint a bearer token signed with JWT_SECRET",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "subject", Value: "aesvec", Usage: "token subject"},
				&cli.DurationFlag{Name: "ttl", Usage: "token lifetime, defaults to JWT_EXPIRES_IN"},
			},
			Action: tokenAction(cfg),
		},
	}
	return app
}
