// Package main is the entry point for the taku script manager.
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
	"github.com/taku-sh/taku/internal/setup"
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
		Name:    "taku",
		Usage:   "Manage a registry of named scripts",
		Version: version.Version,
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
				Name:      "get",
				Usage:     "Show a script's details and content",
				ArgsUsage: "<name>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("script name required")
					}
					return takucli.Get(store, cmd.Args().Get(0))
				},
			},
			{
				Name:      "new",
				Usage:     "Create a new script",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "template",
						Aliases: []string{"t"},
						Usage:   "Template name from the .templates directory",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("script name required")
					}
					return takucli.New(store, cmd.Args().Get(0), cmd.String("template"))
				},
			},
			{
				Name:      "edit",
				Usage:     "Open a script in your editor",
				ArgsUsage: "<name>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("script name required")
					}
					return takucli.Edit(store, cfg.Editor, cmd.Args().Get(0))
				},
			},
			{
				Name:      "rm",
				Usage:     "Remove a script and its installed shim",
				ArgsUsage: "<name>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("script name required")
					}
					return takucli.Rm(store, cfg.BinDir, cmd.Args().Get(0))
				},
			},
			{
				Name:            "run",
				Usage:           "Run a script, passing through the remaining arguments",
				ArgsUsage:       "<name> [args...]",
				SkipFlagParsing: true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("script name required")
					}
					log := logger.New(cmd.String("log-level"), os.Stderr)
					return takucli.Run(store, cmd.Args().Get(0), cmd.Args().Slice()[1:], log)
				},
			},
			{
				Name:  "list",
				Usage: "List all scripts",
				Action: func(_ context.Context, _ *cli.Command) error {
					return takucli.List(store)
				},
			},
			{
				Name:      "install",
				Usage:     "Install a script shim into the bin directory ('all' for every script)",
				ArgsUsage: "<name|all>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("script name required")
					}
					return takucli.Install(store, cfg.BinDir, cmd.Args().Get(0))
				},
			},
			{
				Name:      "uninstall",
				Usage:     "Remove a script's shim from the bin directory ('all' for every script)",
				ArgsUsage: "<name|all>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("script name required")
					}
					log := logger.New(cmd.String("log-level"), os.Stderr)
					return takucli.Uninstall(store, cfg.BinDir, cmd.Args().Get(0), log)
				},
			},
			{
				Name:  "init",
				Usage: "Write a default configuration file",
				Action: func(_ context.Context, _ *cli.Command) error {
					existing, err := config.Find()
					if err != nil {
						return err
					}
					if existing != "" {
						fmt.Printf("%s already exists. Skipping config\n", existing)
						return nil
					}

					path, err := config.DefaultPath()
					if err != nil {
						return err
					}
					if err := config.WriteDefault(path); err != nil {
						return err
					}

					fmt.Printf("Created config at %s\n", path)
					return nil
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate the taku configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return takucli.Validate(configPath)
				},
			},
			{
				Name:            "complete",
				Usage:           "Print script names matching a prefix",
				ArgsUsage:       "[prefix]",
				Hidden:          true, // registry query interface used by completion functions
				SkipFlagParsing: true,
				HideHelp:        true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					prefix := ""
					if cmd.Args().Len() > 0 {
						prefix = cmd.Args().Get(0)
					}
					return takucli.Complete(store, prefix)
				},
			},
			{
				Name:            "completion",
				Usage:           "Resolve a shell completion request",
				ArgsUsage:       "-- [words...]",
				Hidden:          true, // called by the generated shell functions
				SkipFlagParsing: true,
				HideHelp:        true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					// Read os.Args directly: urfave/cli filters "--" out
					// of cmd.Args(), but the word list needs it intact.
					words, cword := takucli.ParseCompletionWords(os.Args, "completion")

					return takucli.Completion(takucli.CompletionParams{
						Tool:     completion.ToolManager,
						Registry: store,
						LogLevel: cmd.String("log-level"),
						Words:    words,
						CWord:    cword,
					})
				},
			},
			{
				Name:  "hook",
				Usage: "Print shell completion code for manual installation",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   "auto",
						Usage:   "Shell type: bash, zsh, or auto",
						Sources: cli.EnvVars("TAKU_SHELL"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					shell := takucli.DetectShell(cmd.String("shell"))
					code, err := takucli.GenerateHookCode(shell)
					if err != nil {
						return err
					}
					fmt.Println(code)
					return nil
				},
			},
			{
				Name:  "setup",
				Usage: "Install or uninstall the shell completion hook",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   "auto",
						Usage:   "Shell type: bash, zsh, or auto",
						Sources: cli.EnvVars("TAKU_SHELL"),
					},
					&cli.BoolFlag{
						Name:    "uninstall",
						Aliases: []string{"u"},
						Usage:   "Uninstall the shell hook instead of installing it",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					shell := takucli.DetectShell(cmd.String("shell"))

					var result *setup.Result
					var err error
					if cmd.Bool("uninstall") {
						result, err = setup.UninstallHook(shell)
					} else {
						result, err = setup.InstallHook(shell)
					}
					if err != nil {
						return err
					}

					fmt.Println(result.Message)
					if result.Updated && !cmd.Bool("uninstall") {
						fmt.Println("\nTo activate in the current shell, run:")
						fmt.Printf("  source %s\n", result.RCFile)
					}

					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
