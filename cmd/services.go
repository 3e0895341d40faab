package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage the services attached to a resource",
}

var servicesAddCmd = &cobra.Command{
	Use:   "add <id> <service-id>@<service-version> [version]",
	Short: "Add a service reference to a resource",
	Long:  `Add appends a service reference to the resource's services list unless an entry with the same id and version already exists.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runServicesAdd,
}

func init() {
	servicesCmd.AddCommand(servicesAddCmd)
	rootCmd.AddCommand(servicesCmd)
}

func runServicesAdd(cmd *cobra.Command, args []string) error {
	ref := resourceArg(args[1])
	if ref.Version == "" {
		return fmt.Errorf("service must be given as <id>@<version>")
	}
	version := ""
	if len(args) == 3 {
		version = args[2]
	}
	if err := newStore().AddService(cmd.Context(), args[0], ref, version); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", ref.Key(), args[0])
	return nil
}
