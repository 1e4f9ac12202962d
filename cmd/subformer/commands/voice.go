package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subformer/subformer-go/pkg/subformer"
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Voice cloning, synthesis and voice library",
	Long: `Voice cloning, synthesis and voice library.

Clone voices, synthesize speech and manage the saved voice library.`,
}

var voiceCloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone a voice",
	Long: `Create a voice cloning job that re-voices source audio.

The target voice is either a library preset or an uploaded reference sample.

Examples:
  subformer -c myctx voice clone --source-audio https://cdn.example.com/in.mp3 --preset-voice voice_123
  subformer -c myctx voice clone --source-audio https://cdn.example.com/in.mp3 --target-audio https://cdn.example.com/ref.mp3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		sourceAudio, _ := cmd.Flags().GetString("source-audio")
		presetVoice, _ := cmd.Flags().GetString("preset-voice")
		targetAudio, _ := cmd.Flags().GetString("target-audio")

		if sourceAudio == "" {
			return fmt.Errorf("--source-audio is required")
		}
		target, err := targetVoiceFromFlags(presetVoice, targetAudio)
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		job, err := client.Voices.Clone(context.Background(), sourceAudio, target)
		if err != nil {
			return fmt.Errorf("voice clone failed: %w", err)
		}

		return outputResult(job, getOutputFile(), isJSONOutput())
	},
}

var voiceSynthesizeCmd = &cobra.Command{
	Use:   "synthesize <text>",
	Short: "Synthesize speech from text",
	Long: `Create a voice synthesis (text-to-speech) job.

Examples:
  subformer -c myctx voice synthesize "Hello, world!" --preset-voice voice_123
  subformer -c myctx voice synthesize "Hola" --target-audio https://cdn.example.com/ref.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		presetVoice, _ := cmd.Flags().GetString("preset-voice")
		targetAudio, _ := cmd.Flags().GetString("target-audio")

		target, err := targetVoiceFromFlags(presetVoice, targetAudio)
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		job, err := client.Voices.Synthesize(context.Background(), args[0], target)
		if err != nil {
			return fmt.Errorf("voice synthesis failed: %w", err)
		}

		return outputResult(job, getOutputFile(), isJSONOutput())
	},
}

var voiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved voices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		voices, err := client.Voices.List(context.Background())
		if err != nil {
			return fmt.Errorf("list voices failed: %w", err)
		}

		return outputResult(voices, getOutputFile(), isJSONOutput())
	},
}

var voiceGetCmd = &cobra.Command{
	Use:   "get <voice_id>",
	Short: "Get a voice by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		voice, err := client.Voices.Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get voice failed: %w", err)
		}

		return outputResult(voice, getOutputFile(), isJSONOutput())
	},
}

var voiceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a voice library entry",
	Long: `Create a new voice in the voice library.

Example request file (voice.yaml):
  name: My Narrator
  audioUrl: https://cdn.example.com/sample.mp3
  gender: female
  duration: 12500

Examples:
  subformer -c myctx voice create -f voice.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireInputFile(); err != nil {
			return err
		}

		ctx, err := getContext()
		if err != nil {
			return err
		}

		var req subformer.CreateVoiceRequest
		if err := loadRequest(getInputFile(), &req); err != nil {
			return err
		}

		printVerbose("Creating voice: %s", req.Name)

		client := createClient(ctx)
		defer client.Close()

		voice, err := client.Voices.Create(context.Background(), &req)
		if err != nil {
			return fmt.Errorf("create voice failed: %w", err)
		}

		printSuccess("Voice created: %s", voice.ID)
		return outputResult(voice, getOutputFile(), isJSONOutput())
	},
}

var voiceUpdateCmd = &cobra.Command{
	Use:   "update <voice_id>",
	Short: "Update a voice library entry",
	Long: `Update a voice in the voice library. Only the provided flags are sent.

Examples:
  subformer -c myctx voice update voice_123 --name "New Name"
  subformer -c myctx voice update voice_123 --gender male`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		var req subformer.UpdateVoiceRequest
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			req.Name = &name
		}
		if cmd.Flags().Changed("gender") {
			g, _ := cmd.Flags().GetString("gender")
			gender := subformer.Gender(g)
			req.Gender = &gender
		}
		if req.Name == nil && req.Gender == nil {
			return fmt.Errorf("nothing to update, use --name or --gender")
		}

		client := createClient(ctx)
		defer client.Close()

		voice, err := client.Voices.Update(context.Background(), args[0], &req)
		if err != nil {
			return fmt.Errorf("update voice failed: %w", err)
		}

		return outputResult(voice, getOutputFile(), isJSONOutput())
	},
}

var voiceDeleteCmd = &cobra.Command{
	Use:   "delete <voice_id>",
	Short: "Delete a voice from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client := createClient(ctx)
		defer client.Close()

		ok, err := client.Voices.Delete(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("delete voice failed: %w", err)
		}
		if !ok {
			return fmt.Errorf("server did not confirm deletion")
		}

		printSuccess("Voice deleted: %s", args[0])
		return nil
	},
}

var voiceUploadURLCmd = &cobra.Command{
	Use:   "upload-url <file_name>",
	Short: "Generate a presigned upload URL",
	Long: `Generate a presigned URL for uploading voice audio.

Examples:
  subformer -c myctx voice upload-url sample.mp3 --content-type audio/mp3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		contentType, _ := cmd.Flags().GetString("content-type")
		if contentType == "" {
			return fmt.Errorf("--content-type is required")
		}

		client := createClient(ctx)
		defer client.Close()

		u, err := client.Voices.UploadURL(context.Background(), args[0], contentType)
		if err != nil {
			return fmt.Errorf("generate upload url failed: %w", err)
		}

		return outputResult(u, getOutputFile(), isJSONOutput())
	},
}

func init() {
	voiceCloneCmd.Flags().String("source-audio", "", "URL of the source audio to transform")
	voiceCloneCmd.Flags().String("preset-voice", "", "Preset voice ID from the voice library")
	voiceCloneCmd.Flags().String("target-audio", "", "URL of an uploaded reference sample")

	voiceSynthesizeCmd.Flags().String("preset-voice", "", "Preset voice ID from the voice library")
	voiceSynthesizeCmd.Flags().String("target-audio", "", "URL of an uploaded reference sample")

	voiceUpdateCmd.Flags().String("name", "", "New voice name")
	voiceUpdateCmd.Flags().String("gender", "", "New voice gender: male, female")

	voiceUploadURLCmd.Flags().String("content-type", "", "MIME type of the file (e.g. audio/mp3)")

	voiceCmd.AddCommand(voiceCloneCmd)
	voiceCmd.AddCommand(voiceSynthesizeCmd)
	voiceCmd.AddCommand(voiceListCmd)
	voiceCmd.AddCommand(voiceGetCmd)
	voiceCmd.AddCommand(voiceCreateCmd)
	voiceCmd.AddCommand(voiceUpdateCmd)
	voiceCmd.AddCommand(voiceDeleteCmd)
	voiceCmd.AddCommand(voiceUploadURLCmd)
}
