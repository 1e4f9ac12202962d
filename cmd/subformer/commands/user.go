package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User profile and rate limits",
}

var userMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		user, err := client.Users.Me(context.Background())
		if err != nil {
			return fmt.Errorf("get profile failed: %w", err)
		}

		return outputResult(user, getOutputFile(), isJSONOutput())
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the authenticated user's profile",
	Long: `Update the authenticated user's name and email.

Examples:
  subformer -c myctx user update --name "Jane Doe" --email jane@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		if name == "" || email == "" {
			return fmt.Errorf("--name and --email are required")
		}

		client := createClient(ctx)
		defer client.Close()

		user, err := client.Users.UpdateMe(context.Background(), name, email)
		if err != nil {
			return fmt.Errorf("update profile failed: %w", err)
		}

		printSuccess("Profile updated")
		return outputResult(user, getOutputFile(), isJSONOutput())
	},
}

var userRateLimitCmd = &cobra.Command{
	Use:   "rate-limit",
	Short: "Show the dubbing rate limit status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		rl, err := client.Users.RateLimit(context.Background())
		if err != nil {
			return fmt.Errorf("get rate limit failed: %w", err)
		}

		return outputResult(rl, getOutputFile(), isJSONOutput())
	},
}

func init() {
	userUpdateCmd.Flags().String("name", "", "New name")
	userUpdateCmd.Flags().String("email", "", "New email")

	userCmd.AddCommand(userMeCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userRateLimitCmd)
}
