package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet",
		Short: "Print the configured greeting",
		Args:  cobra.NoArgs,
		RunE:  runGreet,
	}
}

func runGreet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), cfg.Greeting)
	return nil
}
