package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrContentDirRequired = errors.New("portfolio config: content directory is required")
var ErrEmailConfigIncomplete = errors.New("portfolio config: email requires service id, template id, and public key")
var ErrEmailRecipientRequired = errors.New("portfolio config: email recipient address is required")
var ErrAnalyticsEndpointRequired = errors.New("portfolio config: analytics endpoint is required when analytics is enabled")
var ErrServerAddrRequired = errors.New("portfolio config: server listen address is required")
var ErrLoggingLevelInvalid = errors.New("portfolio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("portfolio config: logging format is invalid")

// Config aggregates the module's runtime settings. Fields use simple types so
// host applications can populate them from flags, files, or the environment.
type Config struct {
	Content   ContentConfig
	Email     EmailConfig
	Analytics AnalyticsConfig
	Resume    ResumeConfig
	Server    ServerConfig
	Logging   LoggingConfig
}

// ContentConfig captures filesystem behaviour for blog post loading.
type ContentConfig struct {
	Dir       string
	Patterns  []string
	Recursive bool
}

// EmailConfig carries the transactional email service credentials and the
// inbox that receives submissions.
type EmailConfig struct {
	Enabled    bool
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToEmail    string
	Endpoint   string
}

// AnalyticsConfig captures event forwarding and ingestion proxy behaviour.
type AnalyticsConfig struct {
	Enabled          bool
	Endpoint         string
	APIKey           string
	VisitorStatePath string
	IngestHost       string
	AssetsHost       string
}

// ResumeConfig locates the terminal resume script.
type ResumeConfig struct {
	ScriptPath string
}

// ServerConfig captures HTTP server behaviour.
type ServerConfig struct {
	Addr            string
	BasePath        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LoggingConfig captures structured logging options.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a local deployment.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content/blog",
			Patterns:  []string{"*.md", "*.mdx"},
			Recursive: false,
		},
		Analytics: AnalyticsConfig{
			IngestHost: "us.i.posthog.com",
			AssetsHost: "us-assets.i.posthog.com",
		},
		Resume: ResumeConfig{
			ScriptPath: "static/launch.sh",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			BasePath:        "/api",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Email.Enabled {
		if strings.TrimSpace(cfg.Email.ServiceID) == "" ||
			strings.TrimSpace(cfg.Email.TemplateID) == "" ||
			strings.TrimSpace(cfg.Email.PublicKey) == "" {
			return ErrEmailConfigIncomplete
		}
		if strings.TrimSpace(cfg.Email.ToEmail) == "" {
			return ErrEmailRecipientRequired
		}
	}
	if cfg.Analytics.Enabled && strings.TrimSpace(cfg.Analytics.Endpoint) == "" {
		return ErrAnalyticsEndpointRequired
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrServerAddrRequired
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
