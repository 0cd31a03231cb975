package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/quicktask-analytics/internal/output"
	"github.com/adanyl0v/quicktask-analytics/internal/services"
)

var statsCmd = &cobra.Command{
	Use:   "stats <userId>",
	Short: "Show completion, priority and status statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	return runWithService(cmd, args[0], func(ctx context.Context, svc services.AnalyticsService) error {
		stats, err := svc.GetUserStats(ctx, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.WriteJSON(cmd.OutOrStdout(), stats)
		}
		return output.WriteUserStats(cmd.OutOrStdout(), stats)
	})
}
