package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xform/internal/adapters/watcher"
	"go.trai.ch/xform/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep transforms resolved while the scene file changes",
		Long: "Resolve every transform, print the derived matrices, then reload the scene " +
			"file whenever it changes and print the matrices that changed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			lenient, _ := cmd.Flags().GetBool("lenient")
			traced, _ := cmd.Flags().GetBool("trace")
			debounce, _ := cmd.Flags().GetDuration("debounce")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

			return c.app.Watch(cmd.Context(), file, app.WatchOptions{
				Lenient:     lenient,
				Trace:       traced,
				Debounce:    debounce,
				MetricsAddr: metricsAddr,
			})
		},
	}
	addSceneFlags(cmd)
	cmd.Flags().Duration("debounce", watcher.DefaultDebounceWindow, "Quiet period before a changed scene is reloaded")
	cmd.Flags().String("metrics-addr", "", "Serve resolver metrics on this address (e.g. :9090)")
	return cmd
}
