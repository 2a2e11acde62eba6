package forms

// Form identifies one of the site's submission forms. Each form runs its own
// lifecycle, so a contact inquiry in flight never gates an order.
type Form string

const (
	FormContact Form = "contact"
	FormOrder   Form = "order"
)

// Status tracks a form through its submission lifecycle. Transitions are
// explicit so a submission in flight cannot be restarted and outcome states
// only follow an active submission.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// CanTransition reports whether moving from the current status to next is a
// legal lifecycle step.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusIdle:
		return next == StatusSubmitting
	case StatusSubmitting:
		return next == StatusSuccess || next == StatusError
	case StatusSuccess, StatusError:
		return next == StatusIdle || next == StatusSubmitting
	default:
		return false
	}
}

// Terminal reports whether the status represents a finished submission.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}
