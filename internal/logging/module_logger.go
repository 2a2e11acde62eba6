package logging

import (
	"context"

	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

const (
	rootModule      = "portfolio"
	blogModule      = "portfolio.blog"
	formsModule     = "portfolio.forms"
	analyticsModule = "portfolio.analytics"
	mailModule      = "portfolio.mail"
	httpModule      = "portfolio.http"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{"module": module})
}

// BlogLogger scopes a logger to the blog content module.
func BlogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, blogModule)
}

// FormsLogger scopes a logger to the form submission module.
func FormsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, formsModule)
}

// AnalyticsLogger scopes a logger to the analytics relay module.
func AnalyticsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, analyticsModule)
}

// MailLogger scopes a logger to the outbound email module.
func MailLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, mailModule)
}

// HTTPLogger scopes a logger to the HTTP surface.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// NoOp returns a logger that discards every entry. It keeps call sites free
// of nil checks when no provider is configured.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
