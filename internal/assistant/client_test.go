package assistant

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gatherhub/server/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReplySuccess(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  See you at Launch!  "}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", discardLogger())
	reply := c.Reply(context.Background(), "what's on?", []models.Event{
		{Name: "Launch", Date: "2099-01-01", Venue: "Hall A"},
	})
	if reply != "See you at Launch!" {
		t.Errorf("reply = %q, want trimmed content", reply)
	}

	if captured.Model != defaultModel {
		t.Errorf("model = %q, want %q", captured.Model, defaultModel)
	}
	if captured.MaxTokens != maxTokens {
		t.Errorf("max_tokens = %d, want %d", captured.MaxTokens, maxTokens)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(captured.Messages))
	}
	if !strings.Contains(captured.Messages[1].Content, "Launch on 2099-01-01 at Hall A") {
		t.Errorf("prompt missing event context: %q", captured.Messages[1].Content)
	}
}

func TestReplyFallsBack(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-ok status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":`))
		}},
		{"empty choices", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}},
		{"blank content", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := New(srv.URL, "test-key", discardLogger())
			if reply := c.Reply(context.Background(), "hi", nil); reply != FallbackReply {
				t.Errorf("reply = %q, want fallback", reply)
			}
		})
	}
}

func TestReplyWithoutAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request made despite missing api key")
	}))
	defer srv.Close()

	c := New(srv.URL, "", discardLogger())
	if reply := c.Reply(context.Background(), "hi", nil); reply != FallbackReply {
		t.Errorf("reply = %q, want fallback", reply)
	}
}

func TestReplyUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "test-key", discardLogger())
	if reply := c.Reply(context.Background(), "hi", nil); reply != FallbackReply {
		t.Errorf("reply = %q, want fallback", reply)
	}
}
