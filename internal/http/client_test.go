package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Get(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	client := NewClient("", 0)
	body, err := client.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if string(body) != "<html>ok</html>" {
		t.Errorf("body = %q, want %q", body, "<html>ok</html>")
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
	if got := client.BytesReceived(); got != int64(len(body)) {
		t.Errorf("BytesReceived() = %d, want %d", got, len(body))
	}
}

func TestClient_BytesReceivedAccumulates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	client := NewClient("", time.Second)
	for i := 0; i < 3; i++ {
		if _, err := client.Get(context.Background(), srv.URL); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
	}

	if got := client.BytesReceived(); got != 15 {
		t.Errorf("BytesReceived() = %d, want 15", got)
	}
}

func TestClient_GetNonOK(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"no content", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			if _, err := NewClient("", 0).Get(context.Background(), srv.URL); err == nil {
				t.Errorf("expected error for status %d", tt.status)
			}
		})
	}
}

func TestClient_GetCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewClient("", 0).Get(ctx, srv.URL); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestClient_CustomUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	if _, err := NewClient("custom-agent", 0).Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotUA != "custom-agent" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "custom-agent")
	}
}
