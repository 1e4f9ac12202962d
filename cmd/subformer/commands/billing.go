package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Usage and billing",
}

var billingUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show current billing period usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		usage, err := client.Billing.Usage(context.Background())
		if err != nil {
			return fmt.Errorf("get usage failed: %w", err)
		}

		return outputResult(usage, getOutputFile(), isJSONOutput())
	},
}

var billingHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show daily usage for the past 30 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		history, err := client.Billing.UsageHistory(context.Background())
		if err != nil {
			return fmt.Errorf("get usage history failed: %w", err)
		}

		return outputResult(history, getOutputFile(), isJSONOutput())
	},
}

func init() {
	billingCmd.AddCommand(billingUsageCmd)
	billingCmd.AddCommand(billingHistoryCmd)
}
