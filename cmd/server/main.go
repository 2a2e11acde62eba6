package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	portfolio "github.com/jlang-dev/go-portfolio"
)

func main() {
	cfg := portfolio.DefaultConfig()

	flag.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "HTTP listen address")
	flag.StringVar(&cfg.Content.Dir, "content", cfg.Content.Dir, "blog content directory")
	flag.StringVar(&cfg.Resume.ScriptPath, "resume", cfg.Resume.ScriptPath, "resume script path")
	flag.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level")
	flag.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format (json, console, pretty)")
	flag.Parse()

	cfg.Email.ServiceID = os.Getenv("EMAILJS_SERVICE_ID")
	cfg.Email.TemplateID = os.Getenv("EMAILJS_TEMPLATE_ID")
	cfg.Email.PublicKey = os.Getenv("EMAILJS_PUBLIC_KEY")
	cfg.Email.ToEmail = os.Getenv("CONTACT_EMAIL")
	cfg.Email.Enabled = cfg.Email.ServiceID != ""

	if key := os.Getenv("POSTHOG_API_KEY"); key != "" {
		cfg.Analytics.Enabled = true
		cfg.Analytics.APIKey = key
		cfg.Analytics.Endpoint = "https://" + cfg.Analytics.IngestHost
		cfg.Analytics.VisitorStatePath = os.Getenv("VISITOR_STATE_PATH")
	}

	module, err := portfolio.New(cfg)
	if err != nil {
		log.Fatalf("initialize module: %v", err)
	}

	mux := http.NewServeMux()
	if err := module.Register(mux); err != nil {
		log.Fatalf("register routes: %v", err)
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
