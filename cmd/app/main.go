package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/dagaz/internal"
	pkgconfig "github.com/starford/dagaz/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runSummarize(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	note := cmd.String("note")
	if note == "" {
		return fmt.Errorf("--note is required")
	}
	return internal.RunSummarize(ctx, cfg, note, int(cmd.Int("days")))
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunMCP(ctx, cfg)
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:   "dagaz",
		Usage:  "Work-summary generator over a daily-note vault with full-text search and an HTTP API",
		Action: runServe,
		Flags:  []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:   "summarize",
				Usage:  "Generate a work summary and insert it into a note, then exit",
				Action: runSummarize,
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{
						Name:    "note",
						Aliases: []string{"n"},
						Usage:   "Vault-relative path of the note to insert the summary into",
					},
					&cli.IntFlag{
						Name:    "days",
						Aliases: []string{"d"},
						Usage:   "Override the configured number of work days to look back (1-8)",
					},
				},
			},
			{
				Name:   "mcp",
				Usage:  "Serve MCP tools over stdio",
				Action: runMCP,
				Flags:  []cli.Flag{configFlag},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
