package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/quicktask-analytics/internal/analytics"
	"github.com/adanyl0v/quicktask-analytics/internal/output"
	"github.com/adanyl0v/quicktask-analytics/internal/services"
)

var trendsCmd = &cobra.Command{
	Use:   "trends <userId>",
	Short: "Show task creation and completion trends",
	Long: `Group the tasks of a user by day or by ISO week.

A completed task is dated by its last update, every other task by its
creation date. The created column counts tasks created in the same bucket.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)

	trendsCmd.Flags().StringP("group-by", "g", "day", "bucket size: day or week")
}

func runTrends(cmd *cobra.Command, args []string) error {
	groupByFlag, _ := cmd.Flags().GetString("group-by")
	groupBy, err := analytics.ParseGroupBy(groupByFlag)
	if err != nil {
		return fmt.Errorf("%w: %w", services.ErrInvalidArgument, err)
	}

	return runWithService(cmd, args[0], func(ctx context.Context, svc services.AnalyticsService) error {
		result, err := svc.GetProductivityAnalysis(ctx, args[0], string(groupBy))
		if err != nil {
			return err
		}

		if jsonOutput {
			return output.WriteJSON(cmd.OutOrStdout(), result)
		}
		return output.WriteProductivityAnalysis(cmd.OutOrStdout(), result)
	})
}
