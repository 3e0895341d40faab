package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XaaXaaX/sdk/catalog/infrastructure"
)

var getCmd = &cobra.Command{
	Use:   "get <id> [version]",
	Short: "Print a resource document",
	Long:  `Get resolves the requested version (exact, range like "0.0.x", or "latest" when omitted) and prints the stored document.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	id := args[0]
	version := ""
	if len(args) == 2 {
		version = args[1]
	}

	resource, err := newStore().Get(cmd.Context(), id, version)
	if err != nil {
		return err
	}
	if resource == nil {
		return fmt.Errorf("resource %s not found", id)
	}
	data, err := infrastructure.MarshalDocument(resource)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
