package formscmd

import (
	"context"

	command "github.com/goliatone/go-command"
	"github.com/jlang-dev/go-portfolio/internal/commands"
	"github.com/jlang-dev/go-portfolio/internal/forms"
	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

const (
	contactOperation = "forms.submit_contact"
	orderOperation   = "forms.submit_service_order"
)

var (
	_ command.Commander[SubmitContactCommand]      = (*SubmitContactHandler)(nil)
	_ command.Commander[SubmitServiceOrderCommand] = (*SubmitServiceOrderHandler)(nil)
)

// SubmitContactHandler routes contact submissions through the shared command
// handler foundation.
type SubmitContactHandler struct {
	inner *commands.Handler[SubmitContactCommand]
}

// NewSubmitContactHandler creates a handler bound to the supplied form service.
func NewSubmitContactHandler(service *forms.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SubmitContactCommand]) *SubmitContactHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SubmitContactCommand) error {
		return service.SubmitContact(ctx, msg.ContactRequest)
	}

	handlerOpts := []commands.HandlerOption[SubmitContactCommand]{
		commands.WithLogger[SubmitContactCommand](baseLogger),
		commands.WithOperation[SubmitContactCommand](contactOperation),
		commands.WithMessageFields(func(msg SubmitContactCommand) map[string]any {
			return map[string]any{
				"from": msg.Email,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SubmitContactHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SubmitContactCommand].
func (h *SubmitContactHandler) Execute(ctx context.Context, msg SubmitContactCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SubmitServiceOrderHandler routes package orders through the shared command
// handler foundation.
type SubmitServiceOrderHandler struct {
	inner *commands.Handler[SubmitServiceOrderCommand]
}

// NewSubmitServiceOrderHandler creates a handler bound to the supplied form service.
func NewSubmitServiceOrderHandler(service *forms.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SubmitServiceOrderCommand]) *SubmitServiceOrderHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SubmitServiceOrderCommand) error {
		return service.SubmitServiceOrder(ctx, msg.ServiceOrderRequest)
	}

	handlerOpts := []commands.HandlerOption[SubmitServiceOrderCommand]{
		commands.WithLogger[SubmitServiceOrderCommand](baseLogger),
		commands.WithOperation[SubmitServiceOrderCommand](orderOperation),
		commands.WithMessageFields(func(msg SubmitServiceOrderCommand) map[string]any {
			fields := map[string]any{
				"business": msg.BusinessName,
				"from":     msg.Email,
			}
			if msg.PackageKey != "" {
				fields["package"] = msg.PackageKey
			}
			if len(msg.SelectedAddOns) > 0 {
				fields["addons"] = len(msg.SelectedAddOns)
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SubmitServiceOrderHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SubmitServiceOrderCommand].
func (h *SubmitServiceOrderHandler) Execute(ctx context.Context, msg SubmitServiceOrderCommand) error {
	return h.inner.Execute(ctx, msg)
}
