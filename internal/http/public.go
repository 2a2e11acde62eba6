package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jlang-dev/go-portfolio/internal/blog"
	formscmd "github.com/jlang-dev/go-portfolio/internal/commands/forms"
	"github.com/jlang-dev/go-portfolio/internal/forms"
	"github.com/jlang-dev/go-portfolio/internal/logging"
	"github.com/jlang-dev/go-portfolio/internal/markdown"
	"github.com/jlang-dev/go-portfolio/internal/pricing"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

// PublicAPI serves the site's JSON endpoints: blog content, pricing, and form
// submission.
type PublicAPI struct {
	basePath string
	blog     *blog.Service
	renderer *markdown.Renderer
	contact  *formscmd.SubmitContactHandler
	orders   *formscmd.SubmitServiceOrderHandler
	logger   interfaces.Logger
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// NewPublicAPI constructs a PublicAPI instance.
func NewPublicAPI(opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		basePath: "/api",
		renderer: markdown.NewRenderer(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) PublicOption {
	return func(api *PublicAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithBlogService wires the blog content service.
func WithBlogService(service *blog.Service) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.blog = service
		}
	}
}

// WithRenderer overrides the markdown renderer used for post bodies.
func WithRenderer(renderer *markdown.Renderer) PublicOption {
	return func(api *PublicAPI) {
		if api != nil && renderer != nil {
			api.renderer = renderer
		}
	}
}

// WithContactHandler wires the contact submission command handler.
func WithContactHandler(handler *formscmd.SubmitContactHandler) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.contact = handler
		}
	}
}

// WithOrderHandler wires the service order command handler.
func WithOrderHandler(handler *formscmd.SubmitServiceOrderHandler) PublicOption {
	return func(api *PublicAPI) {
		if api != nil {
			api.orders = handler
		}
	}
}

// WithLogger injects the request logger.
func WithLogger(logger interfaces.Logger) PublicOption {
	return func(api *PublicAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the public endpoints to the provided mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: public api is nil")
	}

	base := joinPath(api.basePath, "")

	blogRoot := joinPath(base, "blog")
	mux.HandleFunc("GET "+blogRoot, api.handlePostList)
	mux.HandleFunc("GET "+blogRoot+"/tags", api.handleTagList)
	mux.HandleFunc("GET "+blogRoot+"/{slug}", api.handlePostGet)

	pricingRoot := joinPath(base, "pricing")
	mux.HandleFunc("GET "+pricingRoot, api.handlePricing)
	mux.HandleFunc("GET "+pricingRoot+"/quote", api.handleQuote)

	mux.HandleFunc("POST "+joinPath(base, "contact"), api.handleContact)
	mux.HandleFunc("POST "+joinPath(base, "orders"), api.handleOrder)

	return nil
}

type postSummary struct {
	blog.Post
	FormattedDate string `json:"formattedDate"`
}

type postDetail struct {
	postSummary
	Blocks   []markdown.Block   `json:"blocks"`
	Headings []markdown.Heading `json:"headings"`
	Related  []postSummary      `json:"related"`
}

func summarize(posts []blog.Post) []postSummary {
	out := make([]postSummary, len(posts))
	for i, post := range posts {
		out[i] = postSummary{Post: post, FormattedDate: blog.FormatDate(post)}
	}
	return out
}

func (api *PublicAPI) handlePostList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.blog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	query := r.URL.Query()
	posts, err := api.blog.Search(r.Context(), query.Get("q"), query.Get("tag"))
	if err != nil {
		writeError(w, err)
		return
	}
	if limit := parseLimitQuery(query.Get("limit"), 0); limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	writeJSON(w, http.StatusOK, summarize(posts))
}

func (api *PublicAPI) handleTagList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.blog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	tags, err := api.blog.Tags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (api *PublicAPI) handlePostGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.blog == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	post, err := api.blog.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}

	blocks, err := api.renderer.Parse([]byte(post.Body))
	if err != nil {
		api.logger.Error("http.post_render_failed", "slug", post.Slug, "error", err)
		writeError(w, err)
		return
	}

	related, err := api.blog.Related(r.Context(), post.Slug)
	if err != nil {
		writeError(w, err)
		return
	}

	detail := postDetail{
		postSummary: postSummary{Post: *post, FormattedDate: blog.FormatDate(*post)},
		Blocks:      blocks,
		Headings:    markdown.ExtractHeadings(post.Body),
		Related:     summarize(related),
	}
	writeJSON(w, http.StatusOK, detail)
}

type pricingResponse struct {
	Packages []pricing.Package `json:"packages"`
	AddOns   []pricing.AddOn   `json:"addOns"`
}

func (api *PublicAPI) handlePricing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pricingResponse{
		Packages: pricing.Catalog(),
		AddOns:   pricing.AddOnCatalog(),
	})
}

type quoteResponse struct {
	Package string   `json:"package"`
	AddOns  []string `json:"addOns,omitempty"`
	Total   int      `json:"total"`
}

func (api *PublicAPI) handleQuote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	key := strings.TrimSpace(query.Get("package"))
	if key == "" {
		key = pricing.PackageLaunchpad
	}

	var addOns []string
	if raw := strings.TrimSpace(query.Get("addons")); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				addOns = append(addOns, name)
			}
		}
	}

	total, ok := pricing.Quote(key, addOns)
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "quote_unavailable",
			Message: fmt.Sprintf("package %q has no computable total", key),
		})
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{Package: key, AddOns: addOns, Total: total})
}

func (api *PublicAPI) handleContact(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.contact == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	var req forms.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	if err := api.contact.Execute(r.Context(), formscmd.SubmitContactCommand{ContactRequest: req}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": string(forms.StatusSuccess)})
}

func (api *PublicAPI) handleOrder(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.orders == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	var req forms.ServiceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	if err := api.orders.Execute(r.Context(), formscmd.SubmitServiceOrderCommand{ServiceOrderRequest: req}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": string(forms.StatusSuccess)})
}
