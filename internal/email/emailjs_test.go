package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

func validConfig(endpoint string) Config {
	return Config{
		ServiceID:  "service_abc",
		TemplateID: "template_xyz",
		PublicKey:  "pk_123",
		Endpoint:   endpoint,
	}
}

func TestSendPostsTemplateParams(t *testing.T) {
	var received sendPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(validConfig(server.URL), nil)
	err := client.Send(context.Background(), interfaces.MailMessage{
		FromName:  "Jordan",
		FromEmail: "jordan@example.com",
		Subject:   "New inquiry",
		Body:      "Hello there",
		Variables: map[string]string{"business_name": "Acme Bakery"},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if received.ServiceID != "service_abc" || received.TemplateID != "template_xyz" || received.UserID != "pk_123" {
		t.Fatalf("unexpected credentials: %#v", received)
	}
	params := received.TemplateParams
	if params["from_name"] != "Jordan" || params["from_email"] != "jordan@example.com" {
		t.Fatalf("sender fields missing: %#v", params)
	}
	if params["message"] != "Hello there" || params["business_name"] != "Acme Bakery" {
		t.Fatalf("template variables missing: %#v", params)
	}
}

func TestSendVariablesWinOverMessageFields(t *testing.T) {
	var received sendPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
	}))
	defer server.Close()

	client := NewClient(validConfig(server.URL), nil)
	err := client.Send(context.Background(), interfaces.MailMessage{
		Body:      "raw body",
		Variables: map[string]string{"message": "composed body"},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if received.TemplateParams["message"] != "composed body" {
		t.Fatalf("explicit variable should win, got %q", received.TemplateParams["message"])
	}
}

func TestSendSurfacesRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad template", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(validConfig(server.URL), nil)
	err := client.Send(context.Background(), interfaces.MailMessage{Body: "x"})
	if err == nil {
		t.Fatalf("expected error on 422 response")
	}
}

func TestSendRequiresCredentials(t *testing.T) {
	client := NewClient(Config{}, nil)
	err := client.Send(context.Background(), interfaces.MailMessage{Body: "x"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
