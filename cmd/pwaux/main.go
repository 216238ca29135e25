// Package main provides the pwaux CLI tool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:    "pwaux",
		Version: version,
		Usage:   "PowerWorld auxiliary file tooling",
		Commands: []*cli.Command{
			checkCommand(),
			fieldsCommand(),
		},
	}

	err := app.Run(context.Background(), os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
