package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

var showCmd = &cobra.Command{
	Use:   "show <id> [version]",
	Short: "Render a resource's markdown in the terminal",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	version := ""
	if len(args) == 2 {
		version = args[1]
	}
	resource, err := newStore().Get(cmd.Context(), args[0], version)
	if err != nil {
		return err
	}
	if resource == nil {
		return fmt.Errorf("resource %s not found", args[0])
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	body, err := renderer.Render(resource.Markdown)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("%s (%s)", resource.Name, resource.Version)))
	fmt.Fprint(cmd.OutOrStdout(), body)
	return nil
}
