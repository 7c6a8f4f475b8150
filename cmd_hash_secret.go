package main

import (
	"fmt"

	"github.com/beka-birhanu/frontier-maze/service"
	"github.com/spf13/cobra"
)

// hash-secret needs neither the environment config nor the logger, so it
// replaces the root pre-run.
var commandHashSecret = &cobra.Command{
	Use:               "hash-secret <secret>",
	Short:             "Print the bcrypt hash to use as API_CLIENT_SECRET_HASH",
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              hashSecret,
	Args:              cobra.ExactArgs(1),
}

func init() {
	mainCommand.AddCommand(commandHashSecret)
}

func hashSecret(cmd *cobra.Command, args []string) error {
	hash, err := service.HashSecret(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
