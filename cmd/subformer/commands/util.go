package commands

import (
	"fmt"
	"time"

	"github.com/subformer/subformer-go/pkg/cli"
	"github.com/subformer/subformer-go/pkg/subformer"
)

// loadRequest loads a request from a YAML or JSON file
func loadRequest(path string, v any) error {
	return cli.LoadRequest(path, v)
}

// printSuccess prints a success message
func printSuccess(format string, args ...any) {
	cli.PrintSuccess(format, args...)
}

// printInfo prints an info message
func printInfo(format string, args ...any) {
	cli.PrintInfo(format, args...)
}

// requireInputFile checks if input file is provided
func requireInputFile() error {
	if getInputFile() == "" {
		return fmt.Errorf("input file is required, use -f flag")
	}
	return nil
}

// createClient creates a Subformer API client from context configuration.
// The caller is responsible for calling Close on the returned client.
func createClient(ctx *cli.Context) *subformer.Client {
	var opts []subformer.Option

	if ctx.BaseURL != "" {
		opts = append(opts, subformer.WithBaseURL(ctx.BaseURL))
	}
	if ctx.Timeout > 0 {
		opts = append(opts, subformer.WithTimeout(time.Duration(ctx.Timeout)*time.Second))
	}

	return subformer.NewClient(ctx.APIKey, opts...)
}

// targetVoiceFromFlags builds a TargetVoice from the mutually exclusive
// --preset-voice and --target-audio flags.
func targetVoiceFromFlags(presetVoiceID, targetAudioURL string) (subformer.TargetVoice, error) {
	switch {
	case presetVoiceID != "" && targetAudioURL != "":
		return nil, fmt.Errorf("--preset-voice and --target-audio are mutually exclusive")
	case presetVoiceID != "":
		return subformer.PresetVoice{PresetVoiceID: presetVoiceID}, nil
	case targetAudioURL != "":
		return subformer.UploadedVoice{TargetAudioURL: targetAudioURL}, nil
	default:
		return nil, fmt.Errorf("one of --preset-voice or --target-audio is required")
	}
}
