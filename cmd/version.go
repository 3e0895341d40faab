package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version <id>",
	Short: "Freeze the current state of a resource into a historical snapshot",
	Long:  `Version moves the resource's current document and auxiliary files into an immutable snapshot keyed by its version string, then clears the current location. The move is one-way.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	if err := newStore().Freeze(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Froze %s\n", args[0])
	return nil
}
