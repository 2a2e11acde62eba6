package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

type capturedPayload struct {
	APIKey     string         `json:"api_key"`
	Event      string         `json:"event"`
	DistinctID string         `json:"distinct_id"`
	Timestamp  string         `json:"timestamp"`
	Properties map[string]any `json:"properties"`
}

func newTestBackend(t *testing.T) (*httptest.Server, *[]capturedPayload) {
	t.Helper()
	var received []capturedPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload capturedPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		received = append(received, payload)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, &received
}

func TestCaptureForwardsEventWithTimestamp(t *testing.T) {
	server, received := newTestBackend(t)
	client := New(Config{Endpoint: server.URL, APIKey: "phc_test"}, nil, nil)

	client.Capture(context.Background(), EventPackageSelected, interfaces.Properties{"package": "launchpad"})

	if len(*received) != 1 {
		t.Fatalf("expected 1 payload, got %d", len(*received))
	}
	got := (*received)[0]
	if got.Event != EventPackageSelected || got.APIKey != "phc_test" {
		t.Fatalf("unexpected payload: %#v", got)
	}
	if got.Timestamp == "" {
		t.Fatalf("expected client timestamp attached")
	}
	if !strings.HasPrefix(got.DistinctID, "visitor_") {
		t.Fatalf("expected anonymous visitor id, got %q", got.DistinctID)
	}
	if got.Properties["package"] != "launchpad" {
		t.Fatalf("unexpected properties: %#v", got.Properties)
	}
}

func TestCaptureNeverFailsWhenBackendIsDown(t *testing.T) {
	client := New(Config{Endpoint: "http://127.0.0.1:1"}, nil, nil)
	// Must not panic or surface the transport failure.
	client.Capture(context.Background(), EventSectionViewed, nil)
}

func TestCaptureDropsWithoutEndpoint(t *testing.T) {
	client := New(Config{}, nil, nil)
	client.Capture(context.Background(), EventSectionViewed, nil)
}

func TestIdentifyPromotesDistinctID(t *testing.T) {
	server, received := newTestBackend(t)
	client := New(Config{Endpoint: server.URL}, nil, nil)

	anon := client.DistinctID()
	if client.Identified() {
		t.Fatalf("client should start anonymous")
	}

	client.Identify(context.Background(), "jordan@example.com", interfaces.Properties{"name": "Jordan"})

	if client.DistinctID() != "jordan@example.com" {
		t.Fatalf("expected promoted id, got %q", client.DistinctID())
	}
	if !client.Identified() {
		t.Fatalf("expected identified state")
	}

	if len(*received) != 1 {
		t.Fatalf("expected identify payload, got %d", len(*received))
	}
	got := (*received)[0]
	if got.Event != "$identify" || got.DistinctID != "jordan@example.com" {
		t.Fatalf("unexpected identify payload: %#v", got)
	}
	if got.Properties["$anon_distinct_id"] != anon {
		t.Fatalf("expected anon id %q carried, got %#v", anon, got.Properties)
	}

	// Subsequent events attribute to the promoted id.
	client.Capture(context.Background(), EventContactFormSubmitted, nil)
	if (*received)[1].DistinctID != "jordan@example.com" {
		t.Fatalf("expected events attributed to promoted id")
	}
}

func TestResetReturnsToAnonymous(t *testing.T) {
	store := NewVisitorStore(filepath.Join(t.TempDir(), "visitor"))
	client := New(Config{}, store, nil)

	client.Identify(context.Background(), "jordan@example.com", nil)
	before := client.DistinctID()

	if err := client.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	after := client.DistinctID()
	if after == before || !strings.HasPrefix(after, "visitor_") {
		t.Fatalf("expected fresh anonymous id, got %q", after)
	}
	if client.Identified() {
		t.Fatalf("reset should clear identification")
	}
}

func TestVisitorStorePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "visitor")
	store := NewVisitorStore(path)

	first, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.HasPrefix(first, "visitor_") {
		t.Fatalf("unexpected id %q", first)
	}

	second, err := NewVisitorStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second != first {
		t.Fatalf("expected persisted id %q, got %q", first, second)
	}

	reset, err := store.Reset()
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if reset == first {
		t.Fatalf("reset should generate a new id")
	}
}
