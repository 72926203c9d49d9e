package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [dir]",
		Short: "Show worker status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.Status(cmd.Context(), rootArg(args), asJSON)
		},
	}
	cmd.Flags().Bool("json", false, "Print the status as JSON")
	return cmd
}

func (c *CLI) newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop [dir]",
		Short: "Stop the worker",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Stop(cmd.Context(), rootArg(args))
		},
	}
}
