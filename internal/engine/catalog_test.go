package engine

import "testing"

func TestCatalogContract(t *testing.T) {
	if err := ValidateCatalog(); err != nil {
		t.Fatalf("ValidateCatalog: %v", err)
	}
	for _, r := range AllRarities() {
		if got := TemplatesFor(r); len(got) == 0 {
			t.Fatalf("rarity %q has no templates", r)
		}
		sr, err := StatRangeFor(r)
		if err != nil {
			t.Fatalf("StatRangeFor(%q): %v", r, err)
		}
		if sr.Min < 1 || sr.Max < sr.Min {
			t.Fatalf("rarity %q range [%d,%d] invalid", r, sr.Min, sr.Max)
		}
	}
}

func TestTemplatesForTagsMatch(t *testing.T) {
	for _, r := range AllRarities() {
		for _, tmpl := range TemplatesFor(r) {
			if tmpl.Rarity != r {
				t.Fatalf("template %q tagged %q returned for %q", tmpl.Name, tmpl.Rarity, r)
			}
		}
	}
}

func TestStatRangeForUnknownRarity(t *testing.T) {
	if _, err := StatRangeFor(Rarity("mythic")); err == nil {
		t.Fatalf("expected error for unknown rarity")
	}
}
