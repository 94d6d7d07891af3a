package main

import (
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/bytetrail/minesweeper-go/internal/config"
	"github.com/bytetrail/minesweeper-go/internal/game"
)

var log = logrus.New()

func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
		game.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   "logs/minesweeper.log",
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Warn("unable to set up file logging: ", err)
		return
	}
	log.AddHook(hook)
}

func main() {
	setupLogging()

	root := &cobra.Command{
		Use:           "minesweeper",
		Short:         "Testbed for the mine-discovery puzzle engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPlayCmd(), newShowCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
