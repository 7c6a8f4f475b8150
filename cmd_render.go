package main

import (
	"fmt"

	"github.com/beka-birhanu/frontier-maze/maze"
	"github.com/spf13/cobra"
)

var commandRender = &cobra.Command{
	Use:   "render",
	Short: "Print a freshly generated maze",
	RunE:  render,
	Args:  cobra.NoArgs,
}

var (
	renderSize int
	renderSeed uint64
)

func init() {
	commandRender.Flags().IntVarP(&renderSize, "size", "s", maze.DefaultSize, "number of cells along each side")
	commandRender.Flags().Uint64Var(&renderSeed, "seed", 0, "seed for a reproducible maze")
	mainCommand.AddCommand(commandRender)
}

func render(cmd *cobra.Command, args []string) error {
	size := renderSize
	if !cmd.Flags().Changed("size") {
		size = appConfig.DefaultMazeSize
	}

	var opts []maze.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, maze.WithRandomSource(maze.NewSeededSource(renderSeed)))
	}

	m, err := maze.New(size, opts...)
	if err != nil {
		appLogger.Error("building maze", "size", size, "error", err)
		return fmt.Errorf("build maze: %w", err)
	}
	appLogger.Debug("maze built", "size", size, "passages", m.Passages().Len())

	_, err = m.WriteTo(cmd.OutOrStdout())
	return err
}
