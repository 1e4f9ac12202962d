package subformer_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/subformer/subformer-go/pkg/subformer"
)

func TestDubbing_Dub(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"job":{"id":"job_dub","type":"video-dubbing","userId":"user_1","state":"queued","createdAt":"2025-06-01T12:00:00Z"}}`))
	})

	job, err := client.Dubbing.Dub(context.Background(), &subformer.DubRequest{
		Source:   subformer.DubSourceYouTube,
		URL:      "https://youtube.com/watch?v=dQw4w9WgXcQ",
		Language: "es-ES",
	})
	if err != nil {
		t.Fatalf("Dub: %v", err)
	}

	if gotMethod != "POST" || gotPath != "/dub" {
		t.Errorf("request = %s %s, want POST /dub", gotMethod, gotPath)
	}

	want := `{"type":"youtube","url":"https://youtube.com/watch?v=dQw4w9WgXcQ","toLanguage":"es-ES","disableWatermark":false}`
	if gotBody != want {
		t.Errorf("body = %s, want %s", gotBody, want)
	}

	// The job is parsed out of the {job: ...} envelope.
	if job.ID != "job_dub" {
		t.Errorf("job.ID = %q, want job_dub", job.ID)
	}
	if job.State != subformer.JobStateQueued {
		t.Errorf("job.State = %q, want queued", job.State)
	}
}

func TestDubbing_DubRawSourceString(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"job":{"id":"j","type":"video-dubbing","userId":"u","state":"queued","createdAt":"2025-06-01T12:00:00Z"}}`))
	})

	// Raw wire strings pass through untouched.
	_, err := client.Dubbing.Dub(context.Background(), &subformer.DubRequest{
		Source:   subformer.DubSource("tiktok"),
		URL:      "https://tiktok.com/v/1",
		Language: subformer.Language("ja-JP"),
	})
	if err != nil {
		t.Fatalf("Dub: %v", err)
	}

	if !strings.Contains(gotBody, `"type":"tiktok"`) || !strings.Contains(gotBody, `"toLanguage":"ja-JP"`) {
		t.Errorf("body = %s", gotBody)
	}
}

func TestDubbing_Languages(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`["en-US","es-ES","ja-JP"]`))
	})

	langs, err := client.Dubbing.Languages(context.Background())
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}

	if gotPath != "/metadata/dub/languages" {
		t.Errorf("path = %q", gotPath)
	}
	if len(langs) != 3 || langs[1] != "es-ES" {
		t.Errorf("languages = %v", langs)
	}
}
