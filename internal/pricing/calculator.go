package pricing

// Quote computes the numeric total for a package plus selected add-ons. The
// second return is false when the package has no computable total (custom or
// starting-at tiers), which callers render as "contact for a quote". Add-on
// names missing from the catalog are ignored; duplicates count once.
func Quote(packageKey string, selectedAddOns []string) (int, bool) {
	pkg, ok := PackageByKey(packageKey)
	if !ok || !pkg.AddOnsAllow || pkg.BasePrice == 0 {
		return 0, false
	}

	total := pkg.BasePrice
	counted := map[string]struct{}{}
	for _, name := range selectedAddOns {
		if _, dup := counted[name]; dup {
			continue
		}
		addOn, known := AddOnByName(name)
		if !known {
			continue
		}
		counted[name] = struct{}{}
		total += addOn.Price
	}
	return total, true
}
