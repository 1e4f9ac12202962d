package subformer_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/subformer/subformer-go/pkg/subformer"
)

func TestJob_Predicates(t *testing.T) {
	tests := []struct {
		state      subformer.JobState
		complete   bool
		successful bool
	}{
		{subformer.JobStateQueued, false, false},
		{subformer.JobStateActive, false, false},
		{subformer.JobStateCompleted, true, true},
		{subformer.JobStateFailed, true, false},
		{subformer.JobStateCancelled, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			job := &subformer.Job{State: tt.state}
			if got := job.IsComplete(); got != tt.complete {
				t.Errorf("IsComplete() = %v, want %v", got, tt.complete)
			}
			if got := job.IsSuccessful(); got != tt.successful {
				t.Errorf("IsSuccessful() = %v, want %v", got, tt.successful)
			}
		})
	}
}

func TestJob_Unmarshal(t *testing.T) {
	payload := `{
		"id": "job_abc",
		"type": "video-dubbing",
		"userId": "user_1",
		"state": "active",
		"metadata": {"title": "My Video", "thumbnailUrl": "https://cdn/t.jpg", "originalLanguage": "en-US"},
		"createdAt": "2025-06-01T12:00:00Z",
		"progress": {"progress": 42.5, "message": "transcribing", "step": "asr"},
		"processedOn": 1748779200000,
		"creditUsed": 3.5
	}`

	var job subformer.Job
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if job.ID != "job_abc" {
		t.Errorf("ID = %q", job.ID)
	}
	if job.Type != subformer.JobTypeVideoDubbing {
		t.Errorf("Type = %q", job.Type)
	}
	if job.State != subformer.JobStateActive {
		t.Errorf("State = %q", job.State)
	}
	if job.Metadata == nil || job.Metadata.Title != "My Video" {
		t.Errorf("Metadata = %+v", job.Metadata)
	}
	if job.Progress == nil || job.Progress.Progress != 42.5 {
		t.Errorf("Progress = %+v", job.Progress)
	}
	if job.ProcessedOn == nil || job.ProcessedOn.Time().UnixMilli() != 1748779200000 {
		t.Errorf("ProcessedOn = %v", job.ProcessedOn)
	}
	if job.CreditUsed == nil || *job.CreditUsed != 3.5 {
		t.Errorf("CreditUsed = %v", job.CreditUsed)
	}
	if job.FinishedOn != nil {
		t.Errorf("FinishedOn = %v, want nil", job.FinishedOn)
	}
}

func TestJob_UnmarshalRejectsUnknownState(t *testing.T) {
	payload := `{"id":"j","type":"video-dubbing","userId":"u","state":"paused","createdAt":"2025-06-01T12:00:00Z"}`

	var job subformer.Job
	err := json.Unmarshal([]byte(payload), &job)
	if err == nil {
		t.Fatal("expected error for unknown state")
	}
	if !strings.Contains(err.Error(), "paused") {
		t.Errorf("error %q does not name the bad value", err)
	}
}

func TestJob_UnmarshalRejectsUnknownType(t *testing.T) {
	payload := `{"id":"j","type":"hologram","userId":"u","state":"queued","createdAt":"2025-06-01T12:00:00Z"}`

	var job subformer.Job
	if err := json.Unmarshal([]byte(payload), &job); err == nil {
		t.Fatal("expected error for unknown job type")
	}
}

func TestVoice_UnmarshalRejectsUnknownGender(t *testing.T) {
	payload := `{"id":"v","name":"n","audioUrl":"u","gender":"robot","duration":1000,"createdAt":"2025-06-01T12:00:00Z"}`

	var voice subformer.Voice
	if err := json.Unmarshal([]byte(payload), &voice); err == nil {
		t.Fatal("expected error for unknown gender")
	}
}

func TestTargetVoice_Marshal(t *testing.T) {
	tests := []struct {
		name  string
		voice subformer.TargetVoice
		want  string
	}{
		{
			"preset",
			subformer.PresetVoice{PresetVoiceID: "voice_123"},
			`{"mode":"preset","presetVoiceId":"voice_123"}`,
		},
		{
			"upload",
			subformer.UploadedVoice{TargetAudioURL: "https://cdn/ref.mp3"},
			`{"mode":"upload","targetAudioUrl":"https://cdn/ref.mp3"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.voice)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}

			// Exactly one variant key is ever present.
			var m map[string]any
			if err := json.Unmarshal(data, &m); err != nil {
				t.Fatal(err)
			}
			_, hasPreset := m["presetVoiceId"]
			_, hasUpload := m["targetAudioUrl"]
			if hasPreset && hasUpload {
				t.Error("both variant keys present")
			}
		})
	}
}

func TestDailyUsage_ZeroDefaults(t *testing.T) {
	payload := `{"date":"2025-06-01","video-dubbing":3}`

	var du subformer.DailyUsage
	if err := json.Unmarshal([]byte(payload), &du); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if du.VideoDubbing != 3 {
		t.Errorf("VideoDubbing = %d, want 3", du.VideoDubbing)
	}
	if du.VoiceCloning != 0 || du.VoiceSynthesis != 0 || du.DubStudioRender != 0 {
		t.Errorf("absent buckets not zero: %+v", du)
	}
}

func TestDailyUsage_RoundTrip(t *testing.T) {
	du := subformer.DailyUsage{
		Date:            "2025-06-01",
		VideoDubbing:    1,
		VoiceCloning:    2,
		VoiceSynthesis:  3,
		DubStudioRender: 4,
	}

	data, err := json.Marshal(du)
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for key, want := range map[string]float64{
		"video-dubbing":           1,
		"voice-cloning":           2,
		"voice-synthesis":         3,
		"dub-studio-render-video": 4,
	} {
		if m[key] != want {
			t.Errorf("%s = %v, want %v", key, m[key], want)
		}
	}
}

func TestEnums_RoundTripWireStrings(t *testing.T) {
	for _, state := range []subformer.JobState{
		subformer.JobStateQueued, subformer.JobStateActive, subformer.JobStateCompleted,
		subformer.JobStateFailed, subformer.JobStateCancelled,
	} {
		data, err := json.Marshal(state)
		if err != nil {
			t.Fatal(err)
		}
		var back subformer.JobState
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("round-trip %q: %v", state, err)
		}
		if back != state {
			t.Errorf("round-trip %q = %q", state, back)
		}
	}

	for _, jt := range []subformer.JobType{
		subformer.JobTypeVideoDubbing, subformer.JobTypeVoiceCloning,
		subformer.JobTypeVoiceSynthesis, subformer.JobTypeDubStudioRender,
	} {
		data, err := json.Marshal(jt)
		if err != nil {
			t.Fatal(err)
		}
		var back subformer.JobType
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("round-trip %q: %v", jt, err)
		}
		if back != jt {
			t.Errorf("round-trip %q = %q", jt, back)
		}
	}
}

func TestUser_OptionalFields(t *testing.T) {
	payload := `{"id":"user_1","email":"a@b.c","emailVerified":true}`

	var user subformer.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if user.Name != "" || user.Image != "" || user.PreferredTargetLanguage != "" {
		t.Errorf("optional fields not empty: %+v", user)
	}
	if !user.EmailVerified {
		t.Error("EmailVerified = false, want true")
	}
}
