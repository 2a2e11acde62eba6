package pricing

import "testing"

func TestQuoteLaunchpadBasePrice(t *testing.T) {
	total, ok := Quote(PackageLaunchpad, nil)
	if !ok {
		t.Fatalf("expected launchpad to be computable")
	}
	if total != 499 {
		t.Fatalf("expected base total 499, got %d", total)
	}
}

func TestQuoteAddsSelectedAddOnPrices(t *testing.T) {
	logo, ok := AddOnByName("logo-design")
	if !ok {
		t.Fatalf("expected logo-design in add-on catalog")
	}

	total, ok := Quote(PackageLaunchpad, []string{logo.Name})
	if !ok {
		t.Fatalf("expected computable quote")
	}
	if want := 499 + logo.Price; total != want {
		t.Fatalf("expected %d, got %d", want, total)
	}
}

func TestQuoteIgnoresUnknownAddOns(t *testing.T) {
	total, ok := Quote(PackageLaunchpad, []string{"Skywriting"})
	if !ok || total != 499 {
		t.Fatalf("unknown add-on should not change the total, got %d (ok=%v)", total, ok)
	}
}

func TestQuoteCountsDuplicatesOnce(t *testing.T) {
	logo, _ := AddOnByName("logo-design")
	total, _ := Quote(PackageLaunchpad, []string{logo.Name, logo.Name})
	if want := 499 + logo.Price; total != want {
		t.Fatalf("duplicate selection should count once, got %d want %d", total, want)
	}
}

func TestQuoteRefusesNonConfigurableTiers(t *testing.T) {
	for _, key := range []string{PackageProfessional, PackageEnterprise, "unknown"} {
		if _, ok := Quote(key, nil); ok {
			t.Fatalf("expected %q to have no computable total", key)
		}
	}
}

func TestCatalogShape(t *testing.T) {
	packages := Catalog()
	if len(packages) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(packages))
	}

	launchpad, ok := PackageByKey(PackageLaunchpad)
	if !ok || !launchpad.AddOnsAllow || launchpad.BasePrice != 499 {
		t.Fatalf("unexpected launchpad tier: %#v", launchpad)
	}

	professional, ok := PackageByKey(PackageProfessional)
	if !ok || !professional.Popular {
		t.Fatalf("expected professional tier marked popular")
	}

	for _, pkg := range packages {
		for _, line := range pkg.Features {
			switch line.Kind {
			case LineHeader, LineItem:
				if line.Text == "" {
					t.Fatalf("%s: %s line without text", pkg.Key, line.Kind)
				}
			case LineSeparator:
				if line.Text != "" {
					t.Fatalf("%s: separator carries text %q", pkg.Key, line.Text)
				}
			default:
				t.Fatalf("%s: unknown line kind %q", pkg.Key, line.Kind)
			}
		}
	}
}
