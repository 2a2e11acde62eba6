package forms

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ContactRequest is a general inquiry from the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate enforces the minimal contact form contract.
func (r ContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.By(requireText("portfolio.forms.contact.name_required", "name is required"))),
		validation.Field(&r.Email, validation.Required, validation.By(requireEmail("portfolio.forms.contact.email_invalid"))),
		validation.Field(&r.Message, validation.Required, validation.By(requireText("portfolio.forms.contact.message_required", "message is required"))),
	)
}

// ServiceOrderRequest is a package order from the services page.
type ServiceOrderRequest struct {
	BusinessName       string   `json:"businessName"`
	ContactName        string   `json:"contactName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone,omitempty"`
	ProjectDescription string   `json:"projectDescription"`
	Budget             string   `json:"budget,omitempty"`
	Timeline           string   `json:"timeline,omitempty"`
	PackageKey         string   `json:"package,omitempty"`
	SelectedAddOns     []string `json:"addOns,omitempty"`
}

// Validate enforces the required order fields; phone, budget, timeline and
// package remain optional.
func (r ServiceOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BusinessName, validation.Required, validation.By(requireText("portfolio.forms.order.business_name_required", "business name is required"))),
		validation.Field(&r.ContactName, validation.Required, validation.By(requireText("portfolio.forms.order.contact_name_required", "contact name is required"))),
		validation.Field(&r.Email, validation.Required, validation.By(requireEmail("portfolio.forms.order.email_invalid"))),
		validation.Field(&r.ProjectDescription, validation.Required, validation.By(requireText("portfolio.forms.order.project_description_required", "project description is required"))),
	)
}

func requireText(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

func requireEmail(code string) validation.RuleFunc {
	return func(value any) error {
		email := strings.TrimSpace(value.(string))
		if email == "" || !strings.Contains(email, "@") {
			return validation.NewError(code, "a valid email address is required")
		}
		return nil
	}
}
