package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/replica/internal/app"
	"go.trai.ch/replica/internal/core/domain"
)

func (c *CLI) newServeCmd() *cobra.Command {
	defaults := domain.DefaultTuning()
	cmd := &cobra.Command{
		Use:    "serve [dir]",
		Short:  "Run the worker daemon for a workspace (internal use)",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			tuning := domain.Tuning{}
			tuning.CleanupInterval, _ = flags.GetDuration("cleanup-interval")
			tuning.Retention, _ = flags.GetDuration("retention")
			tuning.ChecksumBufferSize, _ = flags.GetInt("checksum-buffer")
			tuning.ProjectSyncThreshold, _ = flags.GetInt("project-sync-threshold")
			tuning.DocumentBulkThreshold, _ = flags.GetInt("document-bulk-threshold")
			tuning.IdleTimeout, _ = flags.GetDuration("idle-timeout")
			tuning.Verify, _ = flags.GetBool("verify")
			metricsAddr, _ := flags.GetString("metrics-addr")
			trace, _ := flags.GetBool("trace")

			return c.app.Serve(cmd.Context(), rootArg(args), app.ServeOptions{
				Tuning:      tuning,
				MetricsAddr: metricsAddr,
				Trace:       trace,
				TraceOutput: cmd.ErrOrStderr(),
			})
		},
	}
	cmd.Flags().Duration("cleanup-interval", defaults.CleanupInterval, "How often the asset cache is swept")
	cmd.Flags().Duration("retention", defaults.Retention, "How long an untouched asset stays cached")
	cmd.Flags().Int("checksum-buffer", defaults.ChecksumBufferSize, "Initial capacity of pooled checksum batches")
	cmd.Flags().Int("project-sync-threshold", defaults.ProjectSyncThreshold,
		"Project count up to which projects are synchronized with one request each")
	cmd.Flags().Int("document-bulk-threshold", defaults.DocumentBulkThreshold,
		"Changed documents per project above which the whole project is synchronized")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "Shut down after this long without requests")
	cmd.Flags().Bool("verify", false, "Recompute the checksum of every built snapshot")
	cmd.Flags().String("metrics-addr", "", "Expose Prometheus metrics on this address")
	cmd.Flags().Bool("trace", false, "Export spans as JSON to stderr")
	return cmd
}
