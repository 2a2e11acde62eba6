package forms

import (
	"fmt"
	"strings"

	"github.com/jlang-dev/go-portfolio/internal/pricing"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

const notSpecified = "Not specified"

// ComposeContact builds the outgoing mail for a general inquiry.
func ComposeContact(req ContactRequest, toEmail string) interfaces.MailMessage {
	return interfaces.MailMessage{
		FromName:  strings.TrimSpace(req.Name),
		FromEmail: strings.TrimSpace(req.Email),
		ToEmail:   toEmail,
		Subject:   "New contact form message",
		Body:      strings.TrimSpace(req.Message),
	}
}

// ComposeServiceOrder builds the outgoing mail for a package order. Every
// template variable is always present; optional fields fall back to a fixed
// placeholder so the stored template renders without holes.
func ComposeServiceOrder(req ServiceOrderRequest, toEmail string) interfaces.MailMessage {
	packageLabel := notSpecified
	if pkg, ok := pricing.PackageByKey(strings.TrimSpace(req.PackageKey)); ok {
		packageLabel = fmt.Sprintf("%s (%s)", pkg.Name, pkg.DisplayPrice)
	}

	addOns := notSpecified
	if len(req.SelectedAddOns) > 0 {
		addOns = strings.Join(req.SelectedAddOns, ", ")
	}

	body := orderBody(req, packageLabel, addOns)

	return interfaces.MailMessage{
		FromName:  strings.TrimSpace(req.ContactName),
		FromEmail: strings.TrimSpace(req.Email),
		ToEmail:   toEmail,
		Subject:   fmt.Sprintf("New service order from %s", strings.TrimSpace(req.BusinessName)),
		Body:      body,
		Variables: map[string]string{
			"business_name":       strings.TrimSpace(req.BusinessName),
			"phone":               orDefault(req.Phone),
			"selected_package":    packageLabel,
			"selected_addons":     addOns,
			"project_description": strings.TrimSpace(req.ProjectDescription),
			"budget":              orDefault(req.Budget),
			"timeline":            orDefault(req.Timeline),
		},
	}
}

func orderBody(req ServiceOrderRequest, packageLabel, addOns string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New service order\n\n")
	fmt.Fprintf(&b, "Business: %s\n", strings.TrimSpace(req.BusinessName))
	fmt.Fprintf(&b, "Contact: %s <%s>\n", strings.TrimSpace(req.ContactName), strings.TrimSpace(req.Email))
	fmt.Fprintf(&b, "Phone: %s\n", orDefault(req.Phone))
	fmt.Fprintf(&b, "Package: %s\n", packageLabel)
	fmt.Fprintf(&b, "Add-ons: %s\n", addOns)
	fmt.Fprintf(&b, "Budget: %s\n", orDefault(req.Budget))
	fmt.Fprintf(&b, "Timeline: %s\n\n", orDefault(req.Timeline))
	fmt.Fprintf(&b, "Project description:\n%s\n", strings.TrimSpace(req.ProjectDescription))
	return b.String()
}

func orDefault(val string) string {
	if strings.TrimSpace(val) == "" {
		return notSpecified
	}
	return strings.TrimSpace(val)
}
