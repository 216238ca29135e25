package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/auxtools/pwaux"
)

func fieldsCommand() *cli.Command {
	return &cli.Command{
		Name:      "fields",
		Usage:     "Show the tokenized fields and resolved header for a line",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "line",
				Aliases:  []string{"l"},
				Usage:    "1-based line number to inspect",
				Required: true,
			},
		},
		Action: runFields,
	}
}

func runFields(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}

	file := cmd.Args().First()

	content, err := os.ReadFile(file) //#nosec G304 -- path comes from user args
	if err != nil {
		return err
	}

	lines := pwaux.SplitLines(content)

	line := int(cmd.Int("line")) - 1
	if line < 0 || line >= len(lines) {
		return fmt.Errorf("line %d out of range (file has %d lines)", line+1, len(lines))
	}

	header := pwaux.FindDataBlockHeader(lines, line)
	if header == nil {
		fmt.Println("header: none resolved")
	} else {
		fmt.Printf("header: %s (line %d)\n", header.BlockName, header.Line+1)

		for i, p := range header.Parameters {
			fmt.Printf("  param %d: %s\n", i+1, p)
		}
	}

	if pwaux.InsideSubdata(lines, line) {
		fmt.Println("line is inside a SUBDATA region (validation suppressed)")
	}

	stripped := pwaux.RemoveEOLComment(lines[line])
	for i, f := range pwaux.ParseDataLine(stripped) {
		fmt.Printf("field %d [%d:%d]: %s\n", i+1, f.Start, f.End, f.Text)
	}

	return nil
}
