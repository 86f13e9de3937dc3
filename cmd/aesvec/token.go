package main

import (
	"fmt"

	"aesvec/internal/auth"
	"aesvec/internal/config"

	"github.com/urfave/cli/v2"
)

func tokenAction(cfg config.Config) cli.ActionFunc {
	return func(c *cli.Context) error {
		ttl := cfg.JWTTTL
		if c.IsSet("ttl") {
			ttl = c.Duration("ttl")
		}
		tok, err := auth.Sign([]byte(cfg.JWTSecret), c.String("subject"), ttl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.App.Writer, tok)
		return err
	}
}
