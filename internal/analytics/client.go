package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

const defaultTimeout = 5 * time.Second

// Config carries the analytics collaborator settings.
type Config struct {
	// Endpoint is the ingestion base URL (typically the reverse-proxied
	// /ingest prefix). Empty disables forwarding; events are dropped after
	// a debug log entry.
	Endpoint string
	// APIKey is the project write key attached to every payload.
	APIKey string
	// Timeout bounds each forwarding call (defaults to 5s).
	Timeout time.Duration
}

// Client relays events to the external analytics service. It is explicitly
// constructed and carries the visitor identity, replacing the ambient SDK
// singleton of the original site. All forwarding is best effort: transport
// failures log a warning and the event is dropped.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	store    *VisitorStore
	logger   interfaces.Logger

	mu         sync.Mutex
	distinctID string
	identified bool
}

var _ interfaces.Tracker = (*Client)(nil)

// New constructs a Client seeded with the stored (or freshly generated)
// anonymous visitor id.
func New(cfg Config, store *VisitorStore, provider interfaces.LoggerProvider) *Client {
	logger := logging.AnalyticsLogger(provider)
	if store == nil {
		store = NewVisitorStore("")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	id, err := store.Load()
	if err != nil {
		logger.Warn("analytics.visitor_load_failed", "error", err)
	}

	return &Client{
		endpoint:   strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
		apiKey:     cfg.APIKey,
		http:       &http.Client{Timeout: timeout},
		store:      store,
		logger:     logger,
		distinctID: id,
	}
}

// Capture forwards a named event with a client timestamp attached. It never
// returns an error: an unreachable collaborator logs a warning and no-ops.
func (c *Client) Capture(ctx context.Context, event string, props interfaces.Properties) {
	if event == "" {
		return
	}

	payload := map[string]any{
		"api_key":     c.apiKey,
		"event":       event,
		"distinct_id": c.DistinctID(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"properties":  clone(props),
	}
	c.post(ctx, "/capture", payload, "event", event)
}

// Identify promotes the anonymous visitor to a known user. The promotion is
// one way; only Reset reverts it. Like Capture, failures never propagate.
func (c *Client) Identify(ctx context.Context, distinctID string, props interfaces.Properties) {
	distinctID = strings.TrimSpace(distinctID)
	if distinctID == "" {
		return
	}

	c.mu.Lock()
	anonID := c.distinctID
	c.distinctID = distinctID
	c.identified = true
	c.mu.Unlock()

	payload := map[string]any{
		"api_key":     c.apiKey,
		"event":       "$identify",
		"distinct_id": distinctID,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"properties": map[string]any{
			"$anon_distinct_id": anonID,
			"$set":              map[string]any(clone(props)),
		},
	}
	c.post(ctx, "/capture", payload, "distinct_id", distinctID)
}

// DistinctID returns the identifier events are attributed to.
func (c *Client) DistinctID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distinctID
}

// Identified reports whether the visitor has been promoted to a known user.
func (c *Client) Identified() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identified
}

// Reset discards the current identity and seeds a fresh anonymous visitor id.
func (c *Client) Reset() error {
	id, err := c.store.Reset()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.distinctID = id
	c.identified = false
	c.mu.Unlock()
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload map[string]any, logKey, logValue string) {
	if c.endpoint == "" {
		c.logger.Debug("analytics.drop_no_endpoint", logKey, logValue)
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.logger.Warn("analytics.encode_failed", logKey, logValue, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		c.logger.Warn("analytics.request_failed", logKey, logValue, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("analytics.forward_failed", logKey, logValue, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		c.logger.Warn("analytics.forward_rejected", logKey, logValue, "status", resp.StatusCode)
	}
}

func clone(props interfaces.Properties) interfaces.Properties {
	out := make(interfaces.Properties, len(props)+1)
	for k, v := range props {
		out[k] = v
	}
	return out
}
