package pricing

import (
	"context"
	"net/url"
	"sort"
	"sync"

	"github.com/jlang-dev/go-portfolio/internal/analytics"
	"github.com/jlang-dev/go-portfolio/pkg/interfaces"
)

// Selection tracks the visitor's current package and add-on choices. The
// default tier is launchpad; switching to a tier without configurable add-ons
// clears any accumulated selection. Changes are reported to the tracker so
// the funnel stays observable without the caller wiring events by hand.
type Selection struct {
	mu       sync.Mutex
	packages map[string]Package
	selected string
	addOns   map[string]bool
	tracker  interfaces.Tracker
}

// NewSelection returns a selection seeded with the launchpad tier.
func NewSelection(tracker interfaces.Tracker) *Selection {
	index := make(map[string]Package)
	for _, pkg := range Catalog() {
		index[pkg.Key] = pkg
	}
	return &Selection{
		packages: index,
		selected: PackageLaunchpad,
		addOns:   make(map[string]bool),
		tracker:  tracker,
	}
}

// NewSelectionFromQuery applies a "package" query parameter override, the way
// pricing links deep-link into a specific tier. Unknown keys fall back to the
// default.
func NewSelectionFromQuery(tracker interfaces.Tracker, query url.Values) *Selection {
	sel := NewSelection(tracker)
	if key := query.Get("package"); key != "" {
		if _, ok := sel.packages[key]; ok {
			sel.selected = key
		}
	}
	return sel
}

// SelectPackage switches the active tier. Leaving a tier that supports
// add-ons discards the add-on selection so a later quote never mixes tiers.
func (s *Selection) SelectPackage(ctx context.Context, key string) bool {
	s.mu.Lock()
	pkg, ok := s.packages[key]
	if !ok {
		s.mu.Unlock()
		return false
	}
	changed := s.selected != key
	s.selected = key
	if !pkg.AddOnsAllow {
		s.addOns = make(map[string]bool)
	}
	s.mu.Unlock()

	if changed && s.tracker != nil {
		s.tracker.Capture(ctx, analytics.EventPackageSelected, interfaces.Properties{
			"package": pkg.Name,
			"price":   pkg.DisplayPrice,
		})
	}
	return true
}

// ToggleAddOn flips an add-on in or out of the selection and reports the
// change. It returns the new state, or false when the add-on is unknown or
// the active tier does not support add-ons.
func (s *Selection) ToggleAddOn(ctx context.Context, name string) (selected bool, ok bool) {
	addOn, ok := AddOnByName(name)
	if !ok {
		return false, false
	}

	s.mu.Lock()
	pkg := s.packages[s.selected]
	if !pkg.AddOnsAllow {
		s.mu.Unlock()
		return false, false
	}
	selected = !s.addOns[addOn.Name]
	if selected {
		s.addOns[addOn.Name] = true
	} else {
		delete(s.addOns, addOn.Name)
	}
	s.mu.Unlock()

	if s.tracker != nil {
		if selected {
			s.tracker.Capture(ctx, analytics.EventAddOnSelected, interfaces.Properties{
				"addon": addOn.Name,
				"price": addOn.Price,
			})
		} else {
			s.tracker.Capture(ctx, analytics.EventAddOnRemoved, interfaces.Properties{
				"addon": addOn.Name,
			})
		}
	}
	return selected, true
}

// Package returns the active tier.
func (s *Selection) Package() Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.packages[s.selected]
}

// AddOns returns the selected add-on names in stable order.
func (s *Selection) AddOns() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.addOns))
	for name := range s.addOns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Quote computes the running total for the current selection. The second
// return is false for tiers without a fixed price.
func (s *Selection) Quote() (int, bool) {
	s.mu.Lock()
	key := s.selected
	names := make([]string, 0, len(s.addOns))
	for name := range s.addOns {
		names = append(names, name)
	}
	s.mu.Unlock()
	return Quote(key, names)
}
