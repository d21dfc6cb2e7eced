package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dtnitsch/mcc-mnc-table/models"
)

func TestGetBytes_Success(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	f := NewFetcher(Options{Timeout: 5 * time.Second, UserAgent: "mccmnc-test"})
	body, err := f.GetBytes(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetBytes() error = %v", err)
	}
	if string(body) != "<html><body>ok</body></html>" {
		t.Errorf("GetBytes() body = %q", body)
	}
	if gotUA != "mccmnc-test" {
		t.Errorf("User-Agent = %q, want mccmnc-test", gotUA)
	}
}

func TestGetBytes_NonSuccessStatus(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := NewFetcher(Options{})
	_, err := f.GetBytes(context.Background(), server.URL)

	var netErr *models.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("GetBytes() error = %v, want *models.NetworkError", err)
	}
	if netErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want %d", netErr.StatusCode, http.StatusServiceUnavailable)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Errorf("server hit %d times, want exactly 1", n)
	}
}

func TestGetBytes_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	f := NewFetcher(Options{Timeout: time.Second})
	_, err := f.GetBytes(context.Background(), url)

	var netErr *models.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("GetBytes() error = %v, want *models.NetworkError", err)
	}
	if netErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 for transport failure", netErr.StatusCode)
	}
	if netErr.Unwrap() == nil {
		t.Error("NetworkError should wrap the transport error")
	}
}

func TestGetBytes_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(Options{})
	if _, err := f.GetBytes(ctx, server.URL); err == nil {
		t.Fatal("GetBytes() expected error for cancelled context")
	}
}
