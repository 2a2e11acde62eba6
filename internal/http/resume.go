package http

import (
	"net/http"
	"os"
	"strings"

	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

const resumeNotFoundBody = "Resume script not found"

// ResumeHandler serves the terminal resume script as plain text, so
// `curl`-ing the resume path pipes straight into a shell.
type ResumeHandler struct {
	scriptPath string
	logger     interfaces.Logger
}

// NewResumeHandler creates a handler serving the script at scriptPath.
func NewResumeHandler(scriptPath string, provider interfaces.LoggerProvider) *ResumeHandler {
	return &ResumeHandler{
		scriptPath: strings.TrimSpace(scriptPath),
		logger:     logging.HTTPLogger(provider),
	}
}

// Register attaches the resume routes to the provided mux.
func (h *ResumeHandler) Register(mux *http.ServeMux) {
	if mux == nil || h == nil {
		return
	}
	mux.HandleFunc("GET /resume", h.serveScript)
	mux.HandleFunc("GET /resume/launch.sh", h.serveScript)
}

func (h *ResumeHandler) serveScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if h.scriptPath == "" {
		http.Error(w, resumeNotFoundBody, http.StatusNotFound)
		return
	}
	script, err := os.ReadFile(h.scriptPath)
	if err != nil {
		h.logger.Warn("http.resume_script_missing", "path", h.scriptPath, "error", err)
		http.Error(w, resumeNotFoundBody, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(script)
}
