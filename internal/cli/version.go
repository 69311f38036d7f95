package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharedcode/employee"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the program version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), employee.Version)
		},
	}
}
