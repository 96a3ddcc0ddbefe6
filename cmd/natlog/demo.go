package main

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/abyssdigger/natlog"
	"github.com/abyssdigger/natlog/logrushook"
	"github.com/abyssdigger/natlog/trace"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

// Template with a verb/argument mismatch, kept in a variable so vet lets it through.
var mismatched = "FILEIO: [%d] failed to open"

// DemoCommand prints a message through every entry point of the logger.
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Print sample messages at every level and from every adapter",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lib := trace.NewLoopback()
			logger, err := setupLogger(cmd, natlog.WithAdapter(trace.New(lib)))
			if err != nil {
				return err
			}
			defer logger.Stop()

			for level := natlog.LVL_ALL; level <= natlog.LVL_NONE; level++ {
				logger.Logf(level, "message at level %d (%s)", level, level)
			}
			logger.Log(natlog.LogLevel(42), "message at a level outside the scale")
			logger.Err(errors.New("an error value"))
			logger.Infof("%s", strings.Repeat("long ", natlog.DEFAULT_MSG_BUFF))

			lib.TraceLog(trace.LOG_INFO, "TEXTURE: [ID %d] Texture loaded successfully (%dx%d)", 3, 256, 256)
			lib.TraceLog(trace.LOG_WARNING, "SHADER: [ID %d] Failed to compile", 7)
			lib.TraceLog(trace.LOG_ERROR, mismatched, "not a number")
			lib.TraceLog(trace.LOG_DEBUG, "%s", strings.Repeat("x", natlog.DEFAULT_MSG_BUFF))

			lr := logrus.New()
			logrushook.Route(lr, logger)
			lr.WithField("component", "demo").Warn("routed from logrus")

			log.New(logger.Lvl(natlog.LVL_DEBUG), "", 0).Println("routed from the standard log package")
			return nil
		},
	}
}
