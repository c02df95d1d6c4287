// Package main is the entry point for the tax script runner.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	takucli "github.com/taku-sh/taku/internal/cli"
	"github.com/taku-sh/taku/internal/completion"
	"github.com/taku-sh/taku/internal/config"
	"github.com/taku-sh/taku/internal/logger"
	"github.com/taku-sh/taku/internal/script"
	"github.com/taku-sh/taku/pkg/version"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := script.NewStore(cfg.ScriptsDir)

	app := &cli.Command{
		Name:            "tax",
		Usage:           "Run a managed script or executable file",
		ArgsUsage:       "<script|file> [args...]",
		Version:         version.Version,
		SkipFlagParsing: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("TAKU_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:            "completion",
				Usage:           "Resolve a shell completion request",
				ArgsUsage:       "-- [words...]",
				Hidden:          true, // called by the generated shell functions
				SkipFlagParsing: true,
				HideHelp:        true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					words, cword := takucli.ParseCompletionWords(os.Args, "completion")

					// The runner queries the manager's registry through
					// its subprocess interface; the registry format is
					// taku's business, not ours.
					return takucli.Completion(takucli.CompletionParams{
						Tool:     completion.ToolRunner,
						Registry: completion.NewExecRegistry(""),
						LogLevel: cmd.String("log-level"),
						Words:    words,
						CWord:    cword,
					})
				},
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("script or file name required")
			}

			log := logger.New(cmd.String("log-level"), os.Stderr)
			target := cmd.Args().Get(0)
			args := cmd.Args().Slice()[1:]

			return takucli.RunTarget(store, target, args, log)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
