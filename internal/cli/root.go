// Package cli defines the cobra commands for the focuspad binary.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev" // set via ldflags at build time

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "focuspad",
		Short: "Task and focus-session tracker served over HTTP",
		Long: `focuspad keeps tasks and timed focus sessions in memory and exposes
them, together with aggregate statistics, as a JSON API.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
