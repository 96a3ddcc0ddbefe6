package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/abyssdigger/natlog"
	"github.com/urfave/cli/v3"
)

const maxLineSize = 1 << 20

// PipeCommand logs every line read from stdin at a fixed level.
func PipeCommand() *cli.Command {
	return &cli.Command{
		Name:  "pipe",
		Usage: "Print stdin lines as log records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "at",
				Usage: "Level of the piped lines",
				Value: "info",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level, err := natlog.ParseLevel(cmd.String("at"))
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}
			logger, err := setupLogger(cmd)
			if err != nil {
				return err
			}
			defer logger.Stop()

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
			for scanner.Scan() {
				if err := ctx.Err(); err != nil {
					return err
				}
				logger.LogBytes(level, scanner.Bytes())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			return nil
		},
	}
}
