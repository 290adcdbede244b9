// internal/options/chain_test.go
//
// Cascade behaviour: parent selection re-scopes children, and stale
// child selections are cleared before any new options become visible.

package options

import (
	"context"
	"testing"
)

// fakeAtlas is an in-memory Searcher with two countries worth of data.
type fakeAtlas struct{}

func (fakeAtlas) Countries(_ context.Context, q string) ([]Option, error) {
	return []Option{{ID: 101, Name: "India"}, {ID: 231, Name: "United States"}}, nil
}

func (fakeAtlas) States(_ context.Context, countryID int64, q string) ([]Option, error) {
	switch countryID {
	case 101:
		return []Option{{ID: 11, Name: "Goa"}, {ID: 12, Name: "Kerala"}}, nil
	case 231:
		return []Option{{ID: 21, Name: "Ohio"}, {ID: 22, Name: "Texas"}}, nil
	}
	return []Option{}, nil
}

func (fakeAtlas) Cities(_ context.Context, stateID int64, q string) ([]Option, error) {
	if stateID == 11 {
		return []Option{{ID: 1101, Name: "Panaji"}}, nil
	}
	return []Option{}, nil
}

func TestChain_ChildrenEmptyWithoutParent(t *testing.T) {
	c := NewChain(fakeAtlas{})

	c.State().SetQuery("")
	c.City().SetQuery("")
	c.Quiesce()

	if n := len(c.State().Options()); n != 0 {
		t.Fatalf("state options without a country = %d, want 0", n)
	}
	if n := len(c.City().Options()); n != 0 {
		t.Fatalf("city options without a state = %d, want 0", n)
	}
}

func TestChain_CountryChangeClearsStateAndCity(t *testing.T) {
	c := NewChain(fakeAtlas{})

	c.SelectCountry(Option{ID: 101, Name: "India"})
	c.Quiesce()
	c.SelectState(Option{ID: 11, Name: "Goa"})
	c.Quiesce()
	c.SelectCity(Option{ID: 1101, Name: "Panaji"})

	// Switch countries.  Both descendant selections must be gone
	// immediately, before any re-fetch lands.
	c.SelectCountry(Option{ID: 231, Name: "United States"})

	if _, ok := c.SelectedState(); ok {
		t.Fatal("state selection survived a country change")
	}
	if _, ok := c.SelectedCity(); ok {
		t.Fatal("city selection survived a country change")
	}

	c.Quiesce()
	sts := c.State().Options()
	if len(sts) != 2 || sts[0].Name != "Ohio" {
		t.Fatalf("state options after country change = %v, want the US set", sts)
	}
}

func TestChain_StateChangeClearsCity(t *testing.T) {
	c := NewChain(fakeAtlas{})

	c.SelectCountry(Option{ID: 101, Name: "India"})
	c.SelectState(Option{ID: 11, Name: "Goa"})
	c.SelectCity(Option{ID: 1101, Name: "Panaji"})

	c.SelectState(Option{ID: 12, Name: "Kerala"})

	if _, ok := c.SelectedCity(); ok {
		t.Fatal("city selection survived a state change")
	}
	if got, ok := c.SelectedState(); !ok || got.Name != "Kerala" {
		t.Fatalf("state selection = %v, %v", got, ok)
	}
}

func TestChain_SelectionRequiresParent(t *testing.T) {
	c := NewChain(fakeAtlas{})

	c.SelectState(Option{ID: 11, Name: "Goa"}) // no country yet
	if _, ok := c.SelectedState(); ok {
		t.Fatal("state selection accepted without a country")
	}
	c.SelectCity(Option{ID: 1101, Name: "Panaji"}) // no state yet
	if _, ok := c.SelectedCity(); ok {
		t.Fatal("city selection accepted without a state")
	}
}
