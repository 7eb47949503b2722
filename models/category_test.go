package models

import "testing"

func TestAllCategoriesCovered(t *testing.T) {
	all := AllCategories()
	if len(all) != 20 {
		t.Fatalf("expected 20 categories, got %d", len(all))
	}
	seen := make(map[Category]bool, len(all))
	for _, c := range all {
		if !c.Valid() {
			t.Fatalf("category %s is not valid", c)
		}
		if c.Label() == "" {
			t.Fatalf("category %s has no label", c)
		}
		if seen[c] {
			t.Fatalf("category %s listed twice", c)
		}
		seen[c] = true
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"plumber", CategoryPlumber},
		{"Encanador", CategoryPlumber},
		{"  encanador  ", CategoryPlumber},
		{"ELECTRICIAN", CategoryElectrician},
		{"Faz-tudo", CategoryGeneral},
		{"pool_cleaner", CategoryPoolCleaner},
	}
	for _, tc := range cases {
		got, err := ParseCategory(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %s, got %s", tc.in, tc.want, got)
		}
	}

	if _, err := ParseCategory("astronaut"); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Fatal("expected error for empty category")
	}
}

func TestDistanceKM(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2.5 km", 2.5},
		{"1,5 km", 1.5},
		{"10 km", 10},
	}
	for _, tc := range cases {
		p := Professional{Distance: tc.in}
		if got := p.DistanceKM(); got != tc.want {
			t.Fatalf("distance %q: expected %v, got %v", tc.in, tc.want, got)
		}
	}

	// Unparseable distances sort last, they must not sort as zero.
	p := Professional{Distance: "perto"}
	if p.DistanceKM() <= 1000 {
		t.Fatalf("unparseable distance must be treated as very far, got %v", p.DistanceKM())
	}
}
