package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hasVersionCmd = &cobra.Command{
	Use:   "has-version <id> <version>",
	Short: "Check whether a version resolves for a resource",
	Long:  `Has-version prints true when the token (exact, range like "0.0.x", or "latest") resolves against the resource's current or frozen versions.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runHasVersion,
}

func init() {
	rootCmd.AddCommand(hasVersionCmd)
}

func runHasVersion(cmd *cobra.Command, args []string) error {
	ok, err := newStore().HasVersion(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}
