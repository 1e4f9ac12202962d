package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subformer/subformer-go/pkg/subformer"
)

var dubCmd = &cobra.Command{
	Use:   "dub",
	Short: "Video dubbing",
	Long: `Video dubbing.

Submit videos from YouTube, TikTok, Instagram, Facebook, X or a direct URL
to be dubbed into another language.`,
}

var dubCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dubbing job",
	Long: `Create a video dubbing job.

Examples:
  subformer -c myctx dub create --source youtube --url https://youtube.com/watch?v=ID --language es-ES
  subformer -c myctx dub create --source url --url https://example.com/video.mp4 --language ja-JP --wait`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		source, _ := cmd.Flags().GetString("source")
		videoURL, _ := cmd.Flags().GetString("url")
		language, _ := cmd.Flags().GetString("language")
		noWatermark, _ := cmd.Flags().GetBool("no-watermark")
		wait, _ := cmd.Flags().GetBool("wait")

		if language == "" {
			language = ctx.DefaultLanguage
		}
		if source == "" || videoURL == "" || language == "" {
			return fmt.Errorf("--source, --url and --language are required")
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Dubbing %s video to %s", source, language)

		client := createClient(ctx)
		defer client.Close()

		job, err := client.Dubbing.Dub(context.Background(), &subformer.DubRequest{
			Source:           subformer.DubSource(source),
			URL:              videoURL,
			Language:         subformer.Language(language),
			DisableWatermark: noWatermark,
		})
		if err != nil {
			return fmt.Errorf("dub failed: %w", err)
		}

		if wait {
			printInfo("Job %s submitted, waiting for completion...", job.ID)
			job, err = client.Jobs.Wait(context.Background(), job.ID)
			if err != nil {
				return fmt.Errorf("wait failed: %w", err)
			}
		}

		return outputResult(job, getOutputFile(), isJSONOutput())
	},
}

var dubLanguagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported dubbing languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		langs, err := client.Dubbing.Languages(context.Background())
		if err != nil {
			return fmt.Errorf("list languages failed: %w", err)
		}

		return outputResult(langs, getOutputFile(), isJSONOutput())
	},
}

func init() {
	dubCreateCmd.Flags().String("source", "", "Source platform: youtube, tiktok, instagram, facebook, x, url")
	dubCreateCmd.Flags().String("url", "", "URL of the video to dub")
	dubCreateCmd.Flags().String("language", "", "Target language code (e.g. es-ES)")
	dubCreateCmd.Flags().Bool("no-watermark", false, "Disable watermark (requires paid plan)")
	dubCreateCmd.Flags().Bool("wait", false, "Wait for the job to complete")

	dubCmd.AddCommand(dubCreateCmd)
	dubCmd.AddCommand(dubLanguagesCmd)
}
