package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/XaaXaaX/sdk/catalog/domain"
	"github.com/XaaXaaX/sdk/catalog/infrastructure"
	"github.com/XaaXaaX/sdk/internal/log"
)

var writePath string

var writeCmd = &cobra.Command{
	Use:   "write [file]",
	Short: "Write a resource document into the catalog",
	Long:  `Write reads a markdown document with YAML front matter from the given file (or stdin) and persists it at its current location. Writing a version that already exists, current or frozen, fails.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWrite,
}

func init() {
	writeCmd.Flags().StringVar(&writePath, "path", "", "store at an explicit path instead of the id-derived one")
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	resource, err := infrastructure.ParseDocument(data)
	if err != nil {
		return err
	}
	if resource.ID == "" {
		resource.ID = uuid.NewString()
		log.Info(log.CatCLI, "Document has no id, generated one", "id", resource.ID)
	}
	if resource.Version == "" {
		return fmt.Errorf("document front matter has no version")
	}

	path := writePath
	if path == "" {
		path = resource.ID
	}
	if err := newStore().WriteAt(cmd.Context(), resource, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s@%s\n", resource.ID, resource.Version)
	return nil
}

// resourceArg splits a "<id>@<version>" argument; the version part is
// optional.
func resourceArg(arg string) domain.ServiceRef {
	for i := len(arg) - 1; i >= 0; i-- {
		if arg[i] == '@' {
			return domain.ServiceRef{ID: arg[:i], Version: arg[i+1:]}
		}
	}
	return domain.ServiceRef{ID: arg}
}
