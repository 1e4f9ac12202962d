// Package subformer provides a Go client for the Subformer video dubbing
// and voice cloning API.
//
// # Basic Usage
//
//	client := subformer.NewClient("sk_subformer_...")
//	defer client.Close()
//
//	// Create a dubbing job
//	job, err := client.Dubbing.Dub(ctx, &subformer.DubRequest{
//	    Source:   subformer.DubSourceYouTube,
//	    URL:      "https://youtube.com/watch?v=VIDEO_ID",
//	    Language: subformer.LanguageSpanish,
//	})
//
//	// Wait for completion
//	job, err = client.Jobs.Wait(ctx, job.ID)
//	fmt.Println(job.Output)
//
// # Voice Cloning and Synthesis
//
// Clone and Synthesize take a TargetVoice, which is either a library
// preset or an uploaded reference sample:
//
//	job, err := client.Voices.Clone(ctx, "https://cdn.example.com/in.mp3",
//	    subformer.PresetVoice{PresetVoiceID: "voice_123"})
//
//	job, err := client.Voices.Synthesize(ctx, "Hello, world!",
//	    subformer.UploadedVoice{TargetAudioURL: "https://cdn.example.com/ref.mp3"})
//
// # Concurrency
//
// Every method blocks until the exchange finishes and takes a
// context.Context for cancellation. The client spawns no goroutines of its
// own; to track several jobs at once, run Wait calls in separate
// goroutines sharing one Client.
//
// # Error Handling
//
// API failures are classified by HTTP status into AuthenticationError
// (401), NotFoundError (404), RateLimitError (429), ValidationError (400)
// and the base *Error for everything else:
//
//	job, err := client.Jobs.Get(ctx, id)
//	if err != nil {
//	    var nf *subformer.NotFoundError
//	    if errors.As(err, &nf) {
//	        // job was deleted
//	    }
//	    return err
//	}
//
// A Wait deadline surfaces as an error wrapping ErrWaitTimeout, never as an
// API error.
//
// # Configuration
//
//	client := subformer.NewClient("sk_subformer_...",
//	    subformer.WithBaseURL("https://api.subformer.com/v1"),
//	    subformer.WithTimeout(60*time.Second),
//	)
package subformer
