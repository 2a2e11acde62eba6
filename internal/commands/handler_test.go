package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct{}

func (testMessage) Type() string { return "portfolio.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "portfolio.test.invalid" }

func (invalidMessage) Validate() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected wrapped execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerErrorTextCodes(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		stage wrapStage
		code  string
	}{
		{"validate", errors.New("invalid"), stageValidate, "PORTFOLIO_COMMAND_INVALID"},
		{"canceled", context.Canceled, stageContext, "PORTFOLIO_COMMAND_CANCELED"},
		{"deadline", context.DeadlineExceeded, stageContext, "PORTFOLIO_COMMAND_TIMEOUT"},
		{"context", errors.New("torn down"), stageContext, "PORTFOLIO_COMMAND_CONTEXT"},
		{"execute", errors.New("boom"), stageExecute, "PORTFOLIO_COMMAND_FAILED"},
	}

	for _, tc := range cases {
		wrapped := wrapHandlerError(tc.err, tc.stage)
		var ge *goerrors.Error
		if !errors.As(wrapped, &ge) {
			t.Fatalf("%s: expected wrapped error, got %v", tc.name, wrapped)
		}
		if ge.TextCode != tc.code {
			t.Fatalf("%s: text code = %q, want %q", tc.name, ge.TextCode, tc.code)
		}
	}

	if wrapHandlerError(nil, stageExecute) != nil {
		t.Fatal("nil error must stay nil")
	}
	already := wrapHandlerError(errors.New("raw"), stageExecute)
	if rewrapped := wrapHandlerError(already, stageValidate); rewrapped != already {
		t.Fatal("wrapped errors must pass through unchanged")
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
}
