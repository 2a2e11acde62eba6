package interfaces

import "context"

// MailMessage is the payload handed to a transactional email provider. The
// template variables map onto the provider-side template; Body carries the
// single pre-composed human-readable message required by every template.
type MailMessage struct {
	FromName  string
	FromEmail string
	ToEmail   string
	Subject   string
	Body      string
	// Variables holds additional named template parameters beyond the
	// standard fields above.
	Variables map[string]string
}

// Mailer sends a single transactional email. Implementations wrap external
// services; an error means the message was not accepted and the caller may
// surface a retryable failure to the user.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
