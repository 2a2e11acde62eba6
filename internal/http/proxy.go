package http

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

const (
	defaultIngestHost = "us.i.posthog.com"
	defaultAssetsHost = "us-assets.i.posthog.com"
	ingestPrefix      = "/ingest"
)

// IngestProxy forwards first-party analytics traffic to the external
// ingestion service so ad blockers keyed on third-party hosts never see it.
// Static SDK assets route to the assets host; everything else to the event
// ingestion host.
type IngestProxy struct {
	ingestHost string
	assetsHost string
	proxy      *httputil.ReverseProxy
	logger     interfaces.Logger
}

// ProxyOption mutates the IngestProxy configuration.
type ProxyOption func(*IngestProxy)

// WithIngestHost overrides the event ingestion upstream.
func WithIngestHost(host string) ProxyOption {
	return func(p *IngestProxy) {
		if trimmed := strings.TrimSpace(host); trimmed != "" {
			p.ingestHost = trimmed
		}
	}
}

// WithAssetsHost overrides the static asset upstream.
func WithAssetsHost(host string) ProxyOption {
	return func(p *IngestProxy) {
		if trimmed := strings.TrimSpace(host); trimmed != "" {
			p.assetsHost = trimmed
		}
	}
}

// WithProxyLogger injects the proxy error logger.
func WithProxyLogger(logger interfaces.Logger) ProxyOption {
	return func(p *IngestProxy) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewIngestProxy constructs the analytics ingestion proxy.
func NewIngestProxy(opts ...ProxyOption) *IngestProxy {
	p := &IngestProxy{
		ingestHost: defaultIngestHost,
		assetsHost: defaultAssetsHost,
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	p.proxy = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			target := p.targetFor(r.In.URL.Path)
			r.SetURL(target)
			r.Out.URL.Path = rewritePath(r.In.URL.Path)
			r.Out.Host = target.Host
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			p.logger.Warn("http.ingest_proxy_failed", "path", r.URL.Path, "error", err)
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	return p
}

// Register attaches the proxy routes to the provided mux.
func (p *IngestProxy) Register(mux *http.ServeMux) {
	if mux == nil || p == nil {
		return
	}
	mux.Handle(ingestPrefix+"/", p.proxy)
}

func (p *IngestProxy) targetFor(path string) *url.URL {
	host := p.ingestHost
	if strings.HasPrefix(path, ingestPrefix+"/static/") {
		host = p.assetsHost
	}
	return &url.URL{Scheme: "https", Host: host}
}

func rewritePath(path string) string {
	rewritten := strings.TrimPrefix(path, ingestPrefix)
	if rewritten == "" {
		rewritten = "/"
	}
	return rewritten
}
