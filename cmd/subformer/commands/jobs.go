package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/subformer/subformer-go/pkg/cli"
	"github.com/subformer/subformer-go/pkg/subformer"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Job management",
	Long: `Job management.

Query, wait for and delete dubbing, cloning and synthesis jobs.`,
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <job_id>",
	Short: "Get a job by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		job, err := client.Jobs.Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get job failed: %w", err)
		}

		return outputResult(job, getOutputFile(), isJSONOutput())
	},
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	Long: `List jobs for the authenticated user.

Examples:
  subformer -c myctx jobs list
  subformer -c myctx jobs list --type video-dubbing --limit 50
  subformer -c myctx jobs list --json | jq '.total'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		offset, _ := cmd.Flags().GetInt("offset")
		limit, _ := cmd.Flags().GetInt("limit")
		jobType, _ := cmd.Flags().GetString("type")

		client := createClient(ctx)
		defer client.Close()

		page, err := client.Jobs.List(context.Background(), &subformer.ListJobsOptions{
			Offset: offset,
			Limit:  limit,
			Type:   subformer.JobType(jobType),
		})
		if err != nil {
			return fmt.Errorf("list jobs failed: %w", err)
		}

		return outputResult(page, getOutputFile(), isJSONOutput())
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <job_id> [job_id...]",
	Short: "Delete jobs by ID",
	Long:  `Delete one or more jobs by ID (at most 50 per call).`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		ok, err := client.Jobs.Delete(context.Background(), args)
		if err != nil {
			return fmt.Errorf("delete jobs failed: %w", err)
		}
		if !ok {
			return fmt.Errorf("server did not confirm deletion")
		}

		printSuccess("Deleted %d job(s)", len(args))
		return nil
	},
}

var jobsWaitCmd = &cobra.Command{
	Use:   "wait <job_id>",
	Short: "Wait for a job to complete",
	Long: `Poll a job until it reaches a terminal state.

Examples:
  subformer -c myctx jobs wait job_123
  subformer -c myctx jobs wait job_123 --interval 5s --timeout 10m`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		interval, _ := cmd.Flags().GetDuration("interval")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		printVerbose("Polling job %s every %s", args[0], interval)

		client := createClient(ctx)
		defer client.Close()

		job, err := client.Jobs.WaitWithOptions(context.Background(), args[0], subformer.WaitOptions{
			PollInterval: interval,
			Timeout:      timeout,
		})
		if err != nil {
			return fmt.Errorf("wait failed: %w", err)
		}

		if job.ProcessedOn != nil && job.FinishedOn != nil {
			elapsed := job.FinishedOn.Time().Sub(job.ProcessedOn.Time())
			printVerbose("Processing took %s", cli.FormatDuration(float64(elapsed.Milliseconds())))
		}

		return outputResult(job, getOutputFile(), isJSONOutput())
	},
}

func init() {
	jobsListCmd.Flags().Int("offset", 0, "Number of items to skip")
	jobsListCmd.Flags().Int("limit", 12, "Maximum number of items to return")
	jobsListCmd.Flags().String("type", "", "Filter by job type")

	jobsWaitCmd.Flags().Duration("interval", 2*time.Second, "Poll interval")
	jobsWaitCmd.Flags().Duration("timeout", 0, "Maximum time to wait (0 for no timeout)")

	jobsCmd.AddCommand(jobsGetCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsDeleteCmd)
	jobsCmd.AddCommand(jobsWaitCmd)
}
