package portfolio_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	portfolio "github.com/jlang-dev/go-portfolio"
)

const integrationPost = `---
title: "Integration Notes"
date: "2024-05-20"
excerpt: "Wiring everything together"
tags:
  - notes
---
## Setup

Body text.
`

func newTestModule(t *testing.T) *portfolio.Module {
	t.Helper()

	contentDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(contentDir, "integration-notes.md"), []byte(integrationPost), 0o644); err != nil {
		t.Fatalf("write post: %v", err)
	}

	scriptPath := filepath.Join(t.TempDir(), "launch.sh")
	if err := os.WriteFile(scriptPath, []byte("#!/bin/sh\necho resume\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	cfg := portfolio.DefaultConfig()
	cfg.Content.Dir = contentDir
	cfg.Resume.ScriptPath = scriptPath

	module, err := portfolio.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module
}

func serveModule(t *testing.T, module *portfolio.Module, target string) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	if err := module.Register(mux); err != nil {
		t.Fatalf("register routes: %v", err)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestModule_RegistersFullSurface(t *testing.T) {
	t.Parallel()

	module := newTestModule(t)

	rec := serveModule(t, module, "/api/blog")
	if rec.Code != http.StatusOK {
		t.Fatalf("list posts: status = %d", rec.Code)
	}
	var posts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode posts: %v", err)
	}
	if len(posts) != 1 || posts[0]["slug"] != "integration-notes" {
		t.Fatalf("unexpected posts: %v", posts)
	}

	rec = serveModule(t, module, "/api/blog/integration-notes")
	if rec.Code != http.StatusOK {
		t.Fatalf("post detail: status = %d", rec.Code)
	}
	var detail map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail["title"] != "Integration Notes" {
		t.Fatalf("detail title = %v", detail["title"])
	}

	rec = serveModule(t, module, "/api/pricing")
	if rec.Code != http.StatusOK {
		t.Fatalf("pricing: status = %d", rec.Code)
	}

	rec = serveModule(t, module, "/resume")
	if rec.Code != http.StatusOK {
		t.Fatalf("resume: status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Fatalf("resume content type = %q", got)
	}
}

func TestModule_AccessorsAndSelection(t *testing.T) {
	t.Parallel()

	module := newTestModule(t)

	if module.Blog() == nil || module.Markdown() == nil || module.Forms() == nil {
		t.Fatal("expected core services to be configured")
	}
	if module.Analytics() != nil {
		t.Fatal("analytics should be nil when disabled")
	}
	if len(module.Pricing()) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(module.Pricing()))
	}

	sel := module.NewSelection()
	if total, ok := sel.Quote(); !ok || total != 499 {
		t.Fatalf("default quote = %d, %v", total, ok)
	}
}

func TestModule_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := portfolio.DefaultConfig()
	cfg.Content.Dir = ""
	if _, err := portfolio.New(cfg); err == nil {
		t.Fatal("expected error for missing content dir")
	}
}
