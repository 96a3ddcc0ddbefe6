package main

import (
	"context"
	"fmt"
	"os"

	"github.com/abyssdigger/natlog"
	"github.com/abyssdigger/natlog/internal/config"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		natlog.New(natlog.WithSink(os.Stderr)).Err(err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "natlog",
		Usage: "Colored levelled console logging",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML configuration file path",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Minimal level, only messages above it are printed (all, trace, debug, info, warning, error, fatal, none)",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Tag coloring: auto, always or never",
			},
		},
		Commands: []*cli.Command{
			DemoCommand(),
			PipeCommand(),
		},
	}
}

// setupLogger installs the default logger configured by the config file and
// the command line flags (flags win).
func setupLogger(cmd *cli.Command, extra ...natlog.Option) (*natlog.Logger, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("level") {
		cfg.MinLevel = cmd.String("level")
	}
	if cmd.IsSet("color") {
		cfg.Color = cmd.String("color")
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := natlog.Init(append(opts, extra...)...)
	logger.SetMinLevel(level)
	return logger, nil
}
