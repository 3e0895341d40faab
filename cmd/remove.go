package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removePath string

var removeCmd = &cobra.Command{
	Use:   "remove [id] [version]",
	Short: "Remove a resource, or one of its historical snapshots",
	Long: `Remove without a version deletes only the current location; frozen
snapshots survive. With a version it deletes exactly the resolved location.
With --path it deletes by structural path regardless of id.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removePath, "path", "", "remove by structural path relative to the collection directory")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if removePath != "" {
		if len(args) != 0 {
			return fmt.Errorf("--path and an id are mutually exclusive")
		}
		return newStore().Remove(cmd.Context(), removePath)
	}
	if len(args) == 0 {
		return fmt.Errorf("an id or --path is required")
	}
	version := ""
	if len(args) == 2 {
		version = args[1]
	}
	return newStore().RemoveByID(cmd.Context(), args[0], version)
}
