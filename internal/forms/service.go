package forms

import (
	"context"
	"sync"
	"time"

	"github.com/jlang-dev/go-portfolio/internal/analytics"
	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

// Config captures the form service collaborators and destination address.
type Config struct {
	// ToEmail is the inbox that receives every submission.
	ToEmail string
}

// Service owns form submission: validation, mail composition, delivery, and
// the analytics trail. Each form runs its own idle -> submitting ->
// success/error lifecycle; a submission already in flight refuses re-entry
// on that form only.
type Service struct {
	cfg     Config
	mailer  interfaces.Mailer
	tracker interfaces.Tracker
	logger  interfaces.Logger

	mu       sync.Mutex
	statuses map[Form]Status
}

// NewService wires a form service. The tracker may be nil; delivery then
// proceeds without the analytics trail.
func NewService(cfg Config, mailer interfaces.Mailer, tracker interfaces.Tracker, provider interfaces.LoggerProvider) *Service {
	return &Service{
		cfg:     cfg,
		mailer:  mailer,
		tracker: tracker,
		logger:  logging.FormsLogger(provider),
		statuses: map[Form]Status{
			FormContact: StatusIdle,
			FormOrder:   StatusIdle,
		},
	}
}

// Status returns the submission lifecycle state of one form.
func (s *Service) Status(form Form) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status, ok := s.statuses[form]; ok {
		return status
	}
	return StatusIdle
}

// SubmitContact validates and delivers a general inquiry. Validation failures
// are returned without touching the mailer.
func (s *Service) SubmitContact(ctx context.Context, req ContactRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !s.begin(FormContact) {
		return ErrSubmissionInFlight
	}

	err := s.mailer.Send(ctx, ComposeContact(req, s.cfg.ToEmail))
	if err != nil {
		s.finish(FormContact, StatusError)
		s.logger.Error("forms.contact_delivery_failed", "error", err)
		s.capture(ctx, analytics.EventContactFormSubmitted, interfaces.Properties{
			"success":       false,
			"error_message": err.Error(),
		})
		return err
	}

	s.finish(FormContact, StatusSuccess)
	s.logger.Info("forms.contact_delivered", "from", req.Email)
	s.capture(ctx, analytics.EventContactFormSubmitted, interfaces.Properties{"success": true})
	s.identify(ctx, req.Email, interfaces.Properties{"name": req.Name})
	return nil
}

// SubmitServiceOrder validates and delivers a package order. On success the
// sender is promoted to a known analytics identity.
func (s *Service) SubmitServiceOrder(ctx context.Context, req ServiceOrderRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !s.begin(FormOrder) {
		return ErrSubmissionInFlight
	}

	err := s.mailer.Send(ctx, ComposeServiceOrder(req, s.cfg.ToEmail))
	if err != nil {
		s.finish(FormOrder, StatusError)
		s.logger.Error("forms.order_delivery_failed", "business", req.BusinessName, "error", err)
		s.capture(ctx, analytics.EventServiceOrderSubmitted, interfaces.Properties{
			"success":       false,
			"package":       req.PackageKey,
			"error_message": err.Error(),
		})
		return err
	}

	s.finish(FormOrder, StatusSuccess)
	s.logger.Info("forms.order_delivered", "business", req.BusinessName, "package", req.PackageKey)
	s.capture(ctx, analytics.EventServiceOrderSubmitted, interfaces.Properties{
		"success": true,
		"package": req.PackageKey,
		"addons":  len(req.SelectedAddOns),
	})
	s.identify(ctx, req.Email, interfaces.Properties{
		"name":               req.ContactName,
		"business":           req.BusinessName,
		"phone":              req.Phone,
		"package":            req.PackageKey,
		"budget":             req.Budget,
		"timeline":           req.Timeline,
		"first_contact_date": time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

func (s *Service) begin(form Form) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.statuses[form].CanTransition(StatusSubmitting) {
		return false
	}
	s.statuses[form] = StatusSubmitting
	return true
}

func (s *Service) finish(form Form, next Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.statuses[form].CanTransition(next) {
		s.statuses[form] = next
	}
}

func (s *Service) capture(ctx context.Context, event string, props interfaces.Properties) {
	if s.tracker != nil {
		s.tracker.Capture(ctx, event, props)
	}
}

func (s *Service) identify(ctx context.Context, email string, props interfaces.Properties) {
	if s.tracker != nil {
		props["visitor_id"] = s.tracker.DistinctID()
		s.tracker.Identify(ctx, email, props)
	}
}
