package cmd

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/XaaXaaX/sdk/catalog/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the catalog for changes",
	Long:  `Watch prints a line for every debounced change under the collection directory until interrupted.`,
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := filepath.Join(cfg.CatalogDir, cfg.Collection)
	watcher, err := watch.New(root, cfg.WatchDebounce)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ev.Op, ev.Path)
		}
	}
}
