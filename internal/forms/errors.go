package forms

import "errors"

// ErrSubmissionInFlight is returned when a submit is attempted while another
// submission on the same service is still running.
var ErrSubmissionInFlight = errors.New("forms: submission already in flight")
