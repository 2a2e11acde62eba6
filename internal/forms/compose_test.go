package forms

import (
	"strings"
	"testing"
)

func TestComposeServiceOrderDefaultsOptionalFields(t *testing.T) {
	msg := ComposeServiceOrder(ServiceOrderRequest{
		BusinessName:       "Acme Bakery",
		ContactName:        "Jordan Smith",
		Email:              "jordan@example.com",
		ProjectDescription: "Storefront site",
	}, "hello@example.com")

	for _, key := range []string{"phone", "budget", "timeline", "selected_package", "selected_addons"} {
		if msg.Variables[key] != "Not specified" {
			t.Errorf("expected %q defaulted, got %q", key, msg.Variables[key])
		}
	}
	if !strings.Contains(msg.Body, "Phone: Not specified") {
		t.Fatalf("body should carry the placeholder: %q", msg.Body)
	}
}

func TestComposeServiceOrderResolvesPackageLabel(t *testing.T) {
	msg := ComposeServiceOrder(ServiceOrderRequest{
		BusinessName:       "Acme Bakery",
		ContactName:        "Jordan Smith",
		Email:              "jordan@example.com",
		ProjectDescription: "Storefront site",
		PackageKey:         "launchpad",
		SelectedAddOns:     []string{"logo-design", "copywriting"},
		Phone:              "555-0100",
	}, "hello@example.com")

	if !strings.Contains(msg.Variables["selected_package"], "Launchpad") {
		t.Fatalf("expected resolved package name, got %q", msg.Variables["selected_package"])
	}
	if msg.Variables["selected_addons"] != "logo-design, copywriting" {
		t.Fatalf("unexpected add-on list %q", msg.Variables["selected_addons"])
	}
	if msg.Variables["phone"] != "555-0100" {
		t.Fatalf("provided phone should pass through, got %q", msg.Variables["phone"])
	}
	if msg.Subject != "New service order from Acme Bakery" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
}

func TestValidateRequests(t *testing.T) {
	valid := ContactRequest{Name: "Jordan", Email: "jordan@example.com", Message: "Hi"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid contact rejected: %v", err)
	}

	invalid := []ContactRequest{
		{Email: "jordan@example.com", Message: "Hi"},
		{Name: "Jordan", Email: "no-at-sign", Message: "Hi"},
		{Name: "Jordan", Email: "jordan@example.com"},
		{Name: "   ", Email: "jordan@example.com", Message: "Hi"},
	}
	for i, req := range invalid {
		if err := req.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %#v", i, req)
		}
	}

	order := validOrder()
	if err := order.Validate(); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}
	order.ProjectDescription = ""
	if err := order.Validate(); err == nil {
		t.Fatalf("expected missing description rejected")
	}
}
