package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// wrapStage labels the phase of handler execution an error escaped from.
// Each stage maps to a stable text code so callers can branch on the failure
// point without string-matching messages.
type wrapStage int

const (
	stageValidate wrapStage = iota
	stageContext
	stageExecute
)

func wrapHandlerError(err error, stage wrapStage) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}

	category := goerrors.CategoryCommand
	code := "PORTFOLIO_COMMAND_FAILED"
	message := "command execution failed"

	switch stage {
	case stageValidate:
		category = goerrors.CategoryValidation
		code = "PORTFOLIO_COMMAND_INVALID"
		message = "command validation failed"
	case stageContext:
		switch {
		case errors.Is(err, context.Canceled):
			code = "PORTFOLIO_COMMAND_CANCELED"
			message = "command canceled before completion"
		case errors.Is(err, context.DeadlineExceeded):
			code = "PORTFOLIO_COMMAND_TIMEOUT"
			message = "command deadline exceeded"
		default:
			code = "PORTFOLIO_COMMAND_CONTEXT"
			message = "command context failed"
		}
	}

	return goerrors.Wrap(err, category, message).WithTextCode(code)
}
