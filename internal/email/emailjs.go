package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

const (
	defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
	defaultTimeout  = 15 * time.Second
)

// ErrNotConfigured is returned when a send is attempted without the service
// credentials in place.
var ErrNotConfigured = errors.New("email: client not configured")

// Config carries the transactional email service credentials.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	// Endpoint overrides the hosted send URL, mainly for tests.
	Endpoint string
	// Timeout bounds each send call (defaults to 15s).
	Timeout time.Duration
}

// Valid reports whether the credentials required for sending are present.
func (c Config) Valid() bool {
	return strings.TrimSpace(c.ServiceID) != "" &&
		strings.TrimSpace(c.TemplateID) != "" &&
		strings.TrimSpace(c.PublicKey) != ""
}

// Client delivers messages through the hosted transactional email API. The
// service renders a stored template; the client only supplies the template
// variables.
type Client struct {
	cfg      Config
	endpoint string
	http     *http.Client
	logger   interfaces.Logger
}

var _ interfaces.Mailer = (*Client)(nil)

// NewClient constructs a mail client from credentials.
func NewClient(cfg Config, provider interfaces.LoggerProvider) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:      cfg,
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logging.MailLogger(provider),
	}
}

type sendPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts one message to the hosted API. The template parameters are the
// message variables plus the sender and body fields, so stored templates can
// reference either.
func (c *Client) Send(ctx context.Context, msg interfaces.MailMessage) error {
	if !c.cfg.Valid() {
		return ErrNotConfigured
	}

	params := make(map[string]string, len(msg.Variables)+4)
	for k, v := range msg.Variables {
		params[k] = v
	}
	setIfAbsent(params, "from_name", msg.FromName)
	setIfAbsent(params, "from_email", msg.FromEmail)
	setIfAbsent(params, "to_email", msg.ToEmail)
	setIfAbsent(params, "subject", msg.Subject)
	setIfAbsent(params, "message", msg.Body)

	payload, err := json.Marshal(sendPayload{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("email: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("email: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("email: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.Warn("email.send_rejected", "status", resp.StatusCode)
		return fmt.Errorf("email: send status %d: %s", resp.StatusCode, drainError(resp.Body))
	}

	c.logger.Debug("email.sent", "to", msg.ToEmail, "subject", msg.Subject)
	return nil
}

func setIfAbsent(params map[string]string, key, value string) {
	if value == "" {
		return
	}
	if _, ok := params[key]; !ok {
		params[key] = value
	}
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
