package pricing

// Package keys. Launchpad is the only tier with a computable total; the
// others quote on contact.
const (
	PackageLaunchpad    = "launchpad"
	PackageProfessional = "professional"
	PackageEnterprise   = "enterprise"
)

// LineKind tags a feature line so the UI never has to sniff strings to tell
// section headers apart from items.
type LineKind string

const (
	LineHeader    LineKind = "header"
	LineItem      LineKind = "item"
	LineSeparator LineKind = "separator"
)

// FeatureLine is one row of a package's feature listing.
type FeatureLine struct {
	Kind LineKind `json:"kind"`
	Text string   `json:"text,omitempty"`
}

// Package describes one service tier. BasePrice is in whole USD and zero when
// the tier has no fixed numeric price.
type Package struct {
	Key          string        `json:"key"`
	Name         string        `json:"name"`
	DisplayPrice string        `json:"displayPrice"`
	BasePrice    int           `json:"basePrice,omitempty"`
	AddOnsAllow  bool          `json:"addOnsAllowed"`
	Gradient     string        `json:"gradient"`
	Description  string        `json:"description"`
	Popular      bool          `json:"popular,omitempty"`
	Features     []FeatureLine `json:"features"`
}

// AddOn is one optional feature purchasable on top of the launchpad tier.
type AddOn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

func header(text string) FeatureLine { return FeatureLine{Kind: LineHeader, Text: text} }
func item(text string) FeatureLine   { return FeatureLine{Kind: LineItem, Text: text} }
func separator() FeatureLine         { return FeatureLine{Kind: LineSeparator} }

var packages = []Package{
	{
		Key:          PackageLaunchpad,
		Name:         "Launchpad",
		DisplayPrice: "$499",
		BasePrice:    499,
		AddOnsAllow:  true,
		Gradient:     "from-blue-600 to-cyan-600",
		Description:  "Perfect for launching a basic online presence",
		Features: []FeatureLine{
			header("Design & Development"),
			item("Single-page responsive website with high-impact design"),
			item("Mobile-first design optimized for smartphones & tablets"),
			item("Next-day turnaround: fully published within 24 hours"),
			separator(),
			header("Integrations & Performance"),
			item("Secure contact form integration"),
			item("Full social media integration"),
			item("Basic SEO: essential on-page optimization"),
			item("Basic analytics platform setup"),
			separator(),
			header("Hosting & Support"),
			item("Simple 1-year domain registration included"),
			item("Free lifetime web hosting on optimized servers"),
			item("1 month of post-launch support & bug fixes"),
		},
	},
	{
		Key:          PackageProfessional,
		Name:         "Professional",
		DisplayPrice: "Starting at $1,499+",
		Gradient:     "from-purple-600 to-pink-600",
		Description:  "Ideal for growing businesses with advanced features",
		Popular:      true,
		Features: []FeatureLine{
			header("Development & Design"),
			item("Custom-built website: 5-25 pages, responsive design"),
			item("Custom design & branding aligned with your identity"),
			item("Blog/CMS integration"),
			item("Comprehensive performance optimization"),
			separator(),
			header("Marketing & SEO"),
			item("Advanced SEO optimization for organic traffic"),
			item("Business listing & social page setup"),
			item("Advanced analytics & tracking for deep insights"),
			item("Email marketing platform integration"),
			separator(),
			header("Integrations & Functionality"),
			item("Optional basic e-commerce & payment integration"),
			item("Chatbot widget for support"),
			item("Custom business forms & PDFs tailored to your needs"),
			separator(),
			header("Support & Flexibility"),
			item("6 months of post-launch support & maintenance"),
			item("Extra features available upon request"),
		},
	},
	{
		Key:          PackageEnterprise,
		Name:         "Enterprise",
		DisplayPrice: "Custom Pricing (Contact Sales)",
		Gradient:     "from-indigo-600 to-violet-600",
		Description:  "Ultimate solution for high-growth businesses",
		Features: []FeatureLine{
			header("Platform & Development"),
			item("Full custom solution: unlimited pages, bespoke development"),
			item("Maximum scalability: cloud hosting on dedicated servers"),
			item("Custom features & APIs: bespoke functionality and endpoints"),
			item("Automated backups, DNS management, domain guarantee"),
			separator(),
			header("E-Commerce & Functionality"),
			item("Advanced e-commerce: unlimited products, automated ordering"),
			item("Secure payment processing via leading payment APIs"),
			item("Enhanced security: SSO/OAuth support, SSL, encryption"),
			separator(),
			header("Security & Performance"),
			item("Priority hosting: 24/7 uptime monitoring & management"),
			item("Security assurance: regular audits and threat protection"),
			separator(),
			header("Support & Training"),
			item("Dedicated account manager"),
			item("1-year priority support included"),
			item("Comprehensive training & documentation"),
			item("Enterprise email accounts unique to your domain"),
		},
	},
}

var addOns = []AddOn{
	{Name: "additional-page", Description: "One more fully designed page or long-form section", Price: 99},
	{Name: "logo-design", Description: "Custom logo with source files and usage guide", Price: 149},
	{Name: "copywriting", Description: "Professionally written copy for every section", Price: 129},
	{Name: "booking-integration", Description: "Appointment scheduling embedded on your site", Price: 89},
	{Name: "extended-support", Description: "Support & bug fixes extended to three months", Price: 119},
}

// Catalog returns every package in display order.
func Catalog() []Package {
	return append([]Package(nil), packages...)
}

// PackageByKey looks up a package definition.
func PackageByKey(key string) (Package, bool) {
	for _, p := range packages {
		if p.Key == key {
			return p, true
		}
	}
	return Package{}, false
}

// AddOnCatalog returns the static add-on feature list.
func AddOnCatalog() []AddOn {
	return append([]AddOn(nil), addOns...)
}

// AddOnByName looks up one add-on feature.
func AddOnByName(name string) (AddOn, bool) {
	for _, a := range addOns {
		if a.Name == name {
			return a, true
		}
	}
	return AddOn{}, false
}
