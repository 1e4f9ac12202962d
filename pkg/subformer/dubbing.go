package subformer

import "context"

// DubbingService provides video dubbing operations.
type DubbingService struct {
	client *Client
}

// newDubbingService creates a new dubbing service.
func newDubbingService(client *Client) *DubbingService {
	return &DubbingService{client: client}
}

// DubRequest describes a video dubbing job submission.
type DubRequest struct {
	// Source is the platform the video comes from.
	Source DubSource `json:"type"`

	// URL is the URL of the video to dub.
	URL string `json:"url"`

	// Language is the target language for the dub.
	Language Language `json:"toLanguage"`

	// DisableWatermark removes the watermark from the output. Requires a
	// paid plan.
	DisableWatermark bool `json:"disableWatermark"`
}

// jobEnvelope is the response wrapper used by job-creating endpoints.
type jobEnvelope struct {
	Job Job `json:"job"`
}

// Dub creates a video dubbing job.
//
// Example:
//
//	job, err := client.Dubbing.Dub(ctx, &subformer.DubRequest{
//	    Source:   subformer.DubSourceYouTube,
//	    URL:      "https://youtube.com/watch?v=dQw4w9WgXcQ",
//	    Language: subformer.LanguageSpanish,
//	})
func (s *DubbingService) Dub(ctx context.Context, req *DubRequest) (*Job, error) {
	var resp jobEnvelope
	if err := s.client.http.request(ctx, "POST", "/dub", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Job, nil
}

// Languages returns the list of language codes supported for dubbing,
// e.g. ["en-US", "es-ES", ...].
func (s *DubbingService) Languages(ctx context.Context) ([]string, error) {
	var langs []string
	if err := s.client.http.request(ctx, "GET", "/metadata/dub/languages", nil, nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}
