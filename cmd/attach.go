package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/XaaXaaX/sdk/catalog/domain"
)

var attachCmd = &cobra.Command{
	Use:   "attach <id> <file> [version]",
	Short: "Attach an auxiliary file to a resource",
	Long:  `Attach writes the given file next to the resource's document, at the current location by default or at the version-qualified snapshot.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)
}

func runAttach(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[1], err)
	}
	version := ""
	if len(args) == 3 {
		version = args[2]
	}
	file := domain.File{FileName: filepath.Base(args[1]), Content: content}
	if err := newStore().AttachFile(cmd.Context(), args[0], file, version); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Attached %s to %s\n", file.FileName, args[0])
	return nil
}
