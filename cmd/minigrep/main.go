package main

import (
	"fmt"
	"io"
	"os"

	"github.com/standardbeagle/minigrep/internal/config"
	"github.com/standardbeagle/minigrep/internal/debug"
	mgerrors "github.com/standardbeagle/minigrep/internal/errors"
	"github.com/standardbeagle/minigrep/internal/render"
	"github.com/standardbeagle/minigrep/internal/runner"
	"github.com/standardbeagle/minigrep/internal/source"
	"github.com/standardbeagle/minigrep/internal/version"

	"github.com/urfave/cli/v2"
)

func init() {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, version.FullInfo())
	}
}

func main() {
	env := config.EnvironmentFromOS()
	os.Exit(run(os.Args, env, os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code
func run(args []string, env config.Environment, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(env, stdin, stdout, stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", mgerrors.Prefix(err), err)
		return mgerrors.ExitCode(err)
	}
	return mgerrors.ExitOK
}

func newApp(env config.Environment, stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                   "minigrep",
		Usage:                  "Print the lines of a file that contain a query string",
		UsageText:              "minigrep [options] <query> <file|->",
		Version:                version.Version,
		UseShortOptionHandling: true,
		HideHelpCommand:        true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read settings from this file instead of .minigrep.kdl / .minigrep.toml",
			},
			&cli.BoolFlag{
				Name:    "ignore-case",
				Aliases: []string{"i"},
				Usage:   "match without regard to case",
			},
			&cli.BoolFlag{
				Name:    "case-sensitive",
				Aliases: []string{"s"},
				Usage:   "match case exactly",
			},
			&cli.BoolFlag{
				Name:  "unicode-fold",
				Usage: "use full Unicode case folding when ignoring case",
			},
			&cli.BoolFlag{
				Name:    "line-number",
				Aliases: []string{"n"},
				Usage:   "prefix each match with its line number",
			},
			&cli.BoolFlag{
				Name:  "count",
				Usage: "print only the number of matching lines",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "print the result as JSON",
			},
			&cli.BoolFlag{
				Name:    "quiet-header",
				Aliases: []string{"q"},
				Usage:   "do not print the \"Searching for\" banner",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "write diagnostics to stderr (also MINIGREP_DEBUG=1)",
			},
		},
		Action: searchAction(env, stdin, stdout, stderr),
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return mgerrors.NewConfigError("flags", "", err)
		},
		// Exit codes are decided by run, never by the cli package
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func searchAction(env config.Environment, stdin io.Reader, stdout, stderr io.Writer) cli.ActionFunc {
	return func(c *cli.Context) error {
		debug.SetDebugOutput(stderr)
		debug.SetEnabled(c.Bool("verbose") || debug.EnabledByEnv(env.Get(debug.EnvVar)))

		cfg, err := loadConfigWithOverrides(c)
		if err != nil {
			return err
		}

		searchCfg, err := config.Resolve(config.ResolveInput{
			Args:          c.Args().Slice(),
			IgnoreCase:    c.Bool("ignore-case"),
			CaseSensitive: c.Bool("case-sensitive"),
			UnicodeFold:   c.Bool("unicode-fold"),
			Env:           env,
			File:          cfg,
		})
		if err != nil {
			return err
		}

		r := runner.New(
			source.NewLoader(cfg.Source, stdin),
			render.New(stdout, render.OptionsFromConfig(cfg.Output)),
		)
		_, err = r.Run(searchCfg)
		return err
	}
}

// loadConfigWithOverrides loads the project config and applies output flags on top
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load("")
	}
	if err != nil {
		return nil, err
	}

	if c.Bool("json") && c.Bool("count") {
		return nil, mgerrors.NewConfigError("flags", "--json --count", mgerrors.ErrConflictingFlags)
	}
	switch {
	case c.Bool("json"):
		cfg.Output.Format = config.FormatJSON
	case c.Bool("count"):
		cfg.Output.Format = config.FormatCount
	}
	if c.IsSet("line-number") {
		cfg.Output.LineNumbers = c.Bool("line-number")
	}
	if c.Bool("quiet-header") {
		cfg.Output.Header = false
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
