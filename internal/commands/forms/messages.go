package formscmd

import (
	"github.com/jlang-dev/go-portfolio/internal/forms"
)

const (
	submitContactMessageType      = "portfolio.forms.submit_contact"
	submitServiceOrderMessageType = "portfolio.forms.submit_service_order"
)

// SubmitContactCommand delivers a general inquiry through the form service.
type SubmitContactCommand struct {
	forms.ContactRequest
}

// Type implements command.Message.
func (SubmitContactCommand) Type() string { return submitContactMessageType }

// Validate ensures the contact fields satisfy the form contract before
// handlers execute.
func (cmd SubmitContactCommand) Validate() error {
	return cmd.ContactRequest.Validate()
}

// SubmitServiceOrderCommand delivers a package order through the form service.
type SubmitServiceOrderCommand struct {
	forms.ServiceOrderRequest
}

// Type implements command.Message.
func (SubmitServiceOrderCommand) Type() string { return submitServiceOrderMessageType }

// Validate ensures the order fields satisfy the form contract before
// handlers execute.
func (cmd SubmitServiceOrderCommand) Validate() error {
	return cmd.ServiceOrderRequest.Validate()
}
