package portfolio

import (
	nethttp "net/http"

	"github.com/jlang-dev/go-portfolio/internal/analytics"
	"github.com/jlang-dev/go-portfolio/internal/blog"
	formscmd "github.com/jlang-dev/go-portfolio/internal/commands/forms"
	"github.com/jlang-dev/go-portfolio/internal/email"
	"github.com/jlang-dev/go-portfolio/internal/forms"
	"github.com/jlang-dev/go-portfolio/internal/http"
	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/internal/logging/gologger"
	"github.com/jlang-dev/go-portfolio/internal/markdown"
	"github.com/jlang-dev/go-portfolio/internal/pricing"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

// BlogService exports the blog content service for consumers of the package.
type BlogService = blog.Service

// Post exports the blog post DTO.
type Post = blog.Post

// Renderer exports the markdown renderer.
type Renderer = markdown.Renderer

// Block exports a rendered content block.
type Block = markdown.Block

// Heading exports a table-of-contents entry.
type Heading = markdown.Heading

// FormService exports the form submission service.
type FormService = forms.Service

// ContactRequest exports the contact form payload.
type ContactRequest = forms.ContactRequest

// ServiceOrderRequest exports the service order payload.
type ServiceOrderRequest = forms.ServiceOrderRequest

// Package exports a pricing tier definition.
type Package = pricing.Package

// AddOn exports a pricing add-on definition.
type AddOn = pricing.AddOn

// Selection exports the pricing selection state.
type Selection = pricing.Selection

// Tracker exports the analytics tracker contract.
type Tracker = interfaces.Tracker

// Mailer exports the transactional email contract.
type Mailer = interfaces.Mailer

// Module is the top level runtime façade: it owns the configured services and
// registers the HTTP surface.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider

	blog      *blog.Service
	renderer  *markdown.Renderer
	mailer    *email.Client
	analytics *analytics.Client
	forms     *forms.Service

	contactHandler *formscmd.SubmitContactHandler
	orderHandler   *formscmd.SubmitServiceOrderHandler
}

// New constructs the module from configuration. The configuration is
// validated first; collaborators whose config is absent degrade to inert
// implementations rather than failing construction.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
	if err != nil {
		return nil, err
	}

	m := &Module{
		cfg:      cfg,
		provider: provider,
		renderer: markdown.NewRenderer(),
	}

	m.blog = blog.NewService(blog.Config{
		ContentDir: cfg.Content.Dir,
		Patterns:   cfg.Content.Patterns,
		Recursive:  cfg.Content.Recursive,
	}, provider)

	var tracker interfaces.Tracker
	if cfg.Analytics.Enabled {
		store := analytics.NewVisitorStore(cfg.Analytics.VisitorStatePath)
		m.analytics = analytics.New(analytics.Config{
			Endpoint: cfg.Analytics.Endpoint,
			APIKey:   cfg.Analytics.APIKey,
		}, store, provider)
		tracker = m.analytics
	}

	m.mailer = email.NewClient(email.Config{
		ServiceID:  cfg.Email.ServiceID,
		TemplateID: cfg.Email.TemplateID,
		PublicKey:  cfg.Email.PublicKey,
		Endpoint:   cfg.Email.Endpoint,
	}, provider)

	m.forms = forms.NewService(forms.Config{ToEmail: cfg.Email.ToEmail}, m.mailer, tracker, provider)

	formsLogger := logging.FormsLogger(provider)
	m.contactHandler = formscmd.NewSubmitContactHandler(m.forms, formsLogger)
	m.orderHandler = formscmd.NewSubmitServiceOrderHandler(m.forms, formsLogger)

	return m, nil
}

// Blog returns the configured blog content service.
func (m *Module) Blog() *BlogService {
	return m.blog
}

// Markdown returns the configured markdown renderer.
func (m *Module) Markdown() *Renderer {
	return m.renderer
}

// Forms returns the configured form submission service.
func (m *Module) Forms() *FormService {
	return m.forms
}

// Analytics returns the configured event tracker, or nil when analytics is
// disabled.
func (m *Module) Analytics() Tracker {
	if m == nil || m.analytics == nil {
		return nil
	}
	return m.analytics
}

// Mailer returns the configured transactional email client.
func (m *Module) Mailer() Mailer {
	return m.mailer
}

// NewSelection returns a pricing selection wired to the module's tracker.
func (m *Module) NewSelection() *Selection {
	return pricing.NewSelection(m.Analytics())
}

// Pricing returns the package catalog in display order.
func (m *Module) Pricing() []Package {
	return pricing.Catalog()
}

// AddOns returns the add-on catalog.
func (m *Module) AddOns() []AddOn {
	return pricing.AddOnCatalog()
}

// Register attaches every HTTP surface of the module to the provided mux:
// the JSON API, the resume script, and the analytics ingestion proxy.
func (m *Module) Register(mux *nethttp.ServeMux) error {
	api := http.NewPublicAPI(
		http.WithBasePath(m.cfg.Server.BasePath),
		http.WithBlogService(m.blog),
		http.WithRenderer(m.renderer),
		http.WithContactHandler(m.contactHandler),
		http.WithOrderHandler(m.orderHandler),
		http.WithLogger(logging.HTTPLogger(m.provider)),
	)
	if err := api.Register(mux); err != nil {
		return err
	}

	http.NewResumeHandler(m.cfg.Resume.ScriptPath, m.provider).Register(mux)

	if m.cfg.Analytics.Enabled {
		proxy := http.NewIngestProxy(
			http.WithIngestHost(m.cfg.Analytics.IngestHost),
			http.WithAssetsHost(m.cfg.Analytics.AssetsHost),
			http.WithProxyLogger(logging.HTTPLogger(m.provider)),
		)
		proxy.Register(mux)
	}

	return nil
}
