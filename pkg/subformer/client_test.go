package subformer_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/subformer/subformer-go/pkg/subformer"
)

// newTestClient creates a client pointed at a fake server.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*subformer.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := subformer.NewClient("sk_test", subformer.WithBaseURL(srv.URL))
	t.Cleanup(client.Close)

	return client, srv
}

func TestClient_Headers(t *testing.T) {
	var gotKey, gotContentType string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"remaining":5,"limit":10,"reset":1700000000,"bucket":"dub"}`))
	})

	if _, err := client.Users.RateLimit(context.Background()); err != nil {
		t.Fatalf("RateLimit: %v", err)
	}

	if gotKey != "sk_test" {
		t.Errorf("x-api-key = %q, want sk_test", gotKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{401, func(err error) bool {
			var e *subformer.AuthenticationError
			return errors.As(err, &e)
		}, "authentication"},
		{404, func(err error) bool {
			var e *subformer.NotFoundError
			return errors.As(err, &e)
		}, "not found"},
		{429, func(err error) bool {
			var e *subformer.RateLimitError
			return errors.As(err, &e)
		}, "rate limit"},
		{400, func(err error) bool {
			var e *subformer.ValidationError
			return errors.As(err, &e)
		}, "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"nope"}`))
			})

			_, err := client.Jobs.Get(context.Background(), "job_1")
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("status %d produced wrong error kind: %v", tt.status, err)
			}
		})
	}
}

func TestClient_GenericErrorCarriesStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream died","code":"UPSTREAM"}`))
	})

	_, err := client.Jobs.Get(context.Background(), "job_1")
	e, ok := subformer.AsError(err)
	if !ok {
		t.Fatalf("AsError failed: %v", err)
	}
	if e.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want 502", e.StatusCode)
	}
	if e.Code != "UPSTREAM" {
		t.Errorf("Code = %q, want UPSTREAM", e.Code)
	}
}

func TestClient_MalformedErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("gateway exploded"))
	})

	_, err := client.Jobs.Get(context.Background(), "job_1")
	e, ok := subformer.AsError(err)
	if !ok {
		t.Fatalf("AsError failed: %v", err)
	}
	if e.Message != "gateway exploded" {
		t.Errorf("Message = %q, want raw body text", e.Message)
	}
	if e.Code != "" {
		t.Errorf("Code = %q, want empty", e.Code)
	}
}

func TestClient_NoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// A 204 must not be parsed as JSON.
	langs, err := client.Dubbing.Languages(context.Background())
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if langs != nil {
		t.Errorf("languages = %v, want nil", langs)
	}
}

func TestClient_CloseIdempotent(t *testing.T) {
	client := subformer.NewClient("sk_test")
	client.Close()
	client.Close() // must not panic
}
