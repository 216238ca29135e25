package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/auxtools/pwaux"
	"github.com/auxtools/pwaux/analysis"
)

var errNoAuxFiles = errors.New("no .aux files found")

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"lint"},
		Usage:     "Validate aux files and report diagnostics",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only report errors, not warnings",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Action: runCheck,
	}
}

func runCheck(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return errNoAuxFiles
	}

	color := !cmd.Bool("no-color") && isatty.IsTerminal(os.Stdout.Fd())
	styles := newStyles(color)
	quiet := cmd.Bool("quiet")

	analyzer := analysis.NewAnalyzerFromConfig(loadConfig(args[0]))

	var errorCount, warningCount int

	for _, file := range files {
		content, err := os.ReadFile(file) //#nosec G304 -- paths come from user args
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		f := analyzer.Analyze(file, content)

		for _, d := range f.Diagnostics {
			if d.Severity == analysis.SeverityError {
				errorCount++
			} else {
				warningCount++

				if quiet {
					continue
				}
			}

			printDiagnostic(os.Stdout, styles, file, d)
		}
	}

	printSummary(os.Stdout, styles, len(files), errorCount, warningCount)

	if errorCount > 0 {
		return cli.Exit("", 1)
	}

	return nil
}

// loadConfig finds the nearest .pwaux.yaml relative to the first target.
// A missing config is not an error.
func loadConfig(target string) *pwaux.Config {
	dir := target

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		dir = filepath.Dir(target)
	}

	cfg, err := pwaux.LoadConfig(dir)
	if err != nil {
		return nil
	}

	return cfg
}

// collectFiles expands arguments into a list of .aux files, walking
// directories recursively.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			err := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".aux") {
					files = append(files, path)
				}

				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			files = append(files, arg)
		}
	}

	return files, nil
}

// printDiagnostic writes one path:line:col: severity: message line.
func printDiagnostic(out io.Writer, styles *styles, file string, d analysis.Diagnostic) {
	severity := styles.Error.Render("error")
	if d.Severity != analysis.SeverityError {
		severity = styles.Warning.Render("warning")
	}

	_, _ = fmt.Fprintf(out, "%s %s %s\n",
		styles.Path.Render(fmt.Sprintf("%s:%d:%d:", file, d.Span.Start.Line, d.Span.Start.Column)),
		severity+":",
		d.Message)
}

// printSummary writes the closing count line.
func printSummary(out io.Writer, styles *styles, fileCount, errorCount, warningCount int) {
	total := errorCount + warningCount
	if total == 0 {
		_, _ = fmt.Fprintf(out, "%s %d file(s) checked, no problems\n",
			styles.OK.Render("ok"), fileCount)

		return
	}

	_, _ = fmt.Fprintf(out, "%d problem(s) in %d file(s): %s, %s\n",
		total, fileCount,
		styles.Error.Render(fmt.Sprintf("%d error(s)", errorCount)),
		styles.Warning.Render(fmt.Sprintf("%d warning(s)", warningCount)))
}
