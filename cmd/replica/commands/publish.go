package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/replica/internal/app"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Publish a workspace to its worker and keep it in sync",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			once, _ := cmd.Flags().GetBool("once")
			return c.app.Publish(cmd.Context(), rootArg(args), app.PublishOptions{Once: once})
		},
	}
	cmd.Flags().Bool("once", false, "Publish the current state and exit instead of watching")
	return cmd
}

func (c *CLI) newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [dir]",
		Short: "Show the worker's view of the workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cone, _ := cmd.Flags().GetStringSlice("cone")
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.Describe(cmd.Context(), rootArg(args), app.DescribeOptions{Cone: cone, JSON: asJSON})
		},
	}
	cmd.Flags().StringSlice("cone", nil, "Narrow the snapshot to these projects")
	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	return cmd
}
