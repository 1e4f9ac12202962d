package subformer

import (
	"context"
	"net/url"
)

// VoicesService provides voice cloning, synthesis and voice library
// operations.
type VoicesService struct {
	client *Client
}

// newVoicesService creates a new voices service.
func newVoicesService(client *Client) *VoicesService {
	return &VoicesService{client: client}
}

// Clone creates a voice cloning job that re-voices the source audio with
// the target voice.
func (s *VoicesService) Clone(ctx context.Context, sourceAudioURL string, target TargetVoice) (*Job, error) {
	body := struct {
		SourceAudioURL string      `json:"sourceAudioUrl"`
		TargetVoice    TargetVoice `json:"targetVoice"`
	}{
		SourceAudioURL: sourceAudioURL,
		TargetVoice:    target,
	}

	var resp jobEnvelope
	if err := s.client.http.request(ctx, "POST", "/voice/clone", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Job, nil
}

// Synthesize creates a voice synthesis (text-to-speech) job speaking the
// text with the target voice.
func (s *VoicesService) Synthesize(ctx context.Context, text string, target TargetVoice) (*Job, error) {
	body := struct {
		Text        string      `json:"text"`
		TargetVoice TargetVoice `json:"targetVoice"`
	}{
		Text:        text,
		TargetVoice: target,
	}

	var resp jobEnvelope
	if err := s.client.http.request(ctx, "POST", "/voice/synthesize", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Job, nil
}

// List returns all voices in the user's voice library.
func (s *VoicesService) List(ctx context.Context) ([]Voice, error) {
	var voices []Voice
	if err := s.client.http.request(ctx, "GET", "/voices", nil, nil, &voices); err != nil {
		return nil, err
	}
	return voices, nil
}

// Get fetches a voice by ID.
func (s *VoicesService) Get(ctx context.Context, voiceID string) (*Voice, error) {
	var voice Voice
	if err := s.client.http.request(ctx, "GET", "/voices/"+url.PathEscape(voiceID), nil, nil, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// CreateVoiceRequest describes a new voice library entry.
type CreateVoiceRequest struct {
	// Name is the display name of the voice.
	Name string `json:"name"`

	// AudioURL is the URL of the voice audio sample.
	AudioURL string `json:"audioUrl"`

	// Gender is the voice gender.
	Gender Gender `json:"gender"`

	// Duration is the length of the audio sample in milliseconds.
	Duration float64 `json:"duration"`
}

// Create adds a new voice to the voice library.
func (s *VoicesService) Create(ctx context.Context, req *CreateVoiceRequest) (*Voice, error) {
	var voice Voice
	if err := s.client.http.request(ctx, "POST", "/voices", nil, req, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// UpdateVoiceRequest describes a partial voice update. Only non-nil fields
// are sent.
type UpdateVoiceRequest struct {
	Name   *string `json:"name,omitempty"`
	Gender *Gender `json:"gender,omitempty"`
}

// Update modifies a voice in the voice library.
func (s *VoicesService) Update(ctx context.Context, voiceID string, req *UpdateVoiceRequest) (*Voice, error) {
	body := struct {
		VoiceID string  `json:"voiceId"`
		Name    *string `json:"name,omitempty"`
		Gender  *Gender `json:"gender,omitempty"`
	}{
		VoiceID: voiceID,
	}
	if req != nil {
		body.Name = req.Name
		body.Gender = req.Gender
	}

	var voice Voice
	if err := s.client.http.request(ctx, "PUT", "/voices/"+url.PathEscape(voiceID), nil, body, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// Delete removes a voice from the voice library.
func (s *VoicesService) Delete(ctx context.Context, voiceID string) (bool, error) {
	body := struct {
		VoiceID string `json:"voiceId"`
	}{
		VoiceID: voiceID,
	}

	var resp successEnvelope
	if err := s.client.http.request(ctx, "DELETE", "/voices/"+url.PathEscape(voiceID), nil, body, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// UploadURL generates a presigned URL for uploading a voice audio file.
// The URL is short-lived; expiry is enforced by the server.
func (s *VoicesService) UploadURL(ctx context.Context, fileName, contentType string) (*UploadURL, error) {
	body := struct {
		FileName    string `json:"fileName"`
		ContentType string `json:"contentType"`
	}{
		FileName:    fileName,
		ContentType: contentType,
	}

	var u UploadURL
	if err := s.client.http.request(ctx, "POST", "/voices/upload-url", nil, body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
