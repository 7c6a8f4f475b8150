package main

import (
	"os"

	"github.com/beka-birhanu/frontier-maze/config"
	"github.com/beka-birhanu/frontier-maze/logger"
	"github.com/spf13/cobra"
)

var (
	appConfig config.Config
	appLogger *logger.Logger
)

var mainCommand = &cobra.Command{
	Use:               "frontier-maze",
	Short:             "Generate perfect mazes by randomized frontier growth",
	PersistentPreRunE: preRun,
	SilenceUsage:      true,
}

func preRun(cmd *cobra.Command, args []string) error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		return err
	}

	appLogger, err = logger.New("APP", config.ColorGreen, os.Stderr, logger.WithLevel(appConfig.LogLevel))
	return err
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
