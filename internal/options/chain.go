// internal/options/chain.go
//
// Country → state → city cascade.
//
// Context
//   The organization form scopes states by the chosen country and
//   cities by the chosen state.  The cascade rule is absolute: picking
//   a new country clears the state and city selections, picking a new
//   state clears the city, and a child fetcher returns an empty set
//   (without error) while its parent is unselected.  Clearing happens
//   under one lock, before the child re-fetches launch, so no caller
//   ever observes a state that references a stale parent.

package options

import "context"

// Searcher is the location lookup boundary.  Both the sqlx repository
// and the resty client in internal/location satisfy it.
type Searcher interface {
	Countries(ctx context.Context, query string) ([]Option, error)
	States(ctx context.Context, countryID int64, query string) ([]Option, error)
	Cities(ctx context.Context, stateID int64, query string) ([]Option, error)
}

// Chain holds the three dependent resolvers plus the current selection.
type Chain struct {
	country *Resolver
	state   *Resolver
	city    *Resolver

	// Selection state shares the resolver mutex discipline: all three
	// pointers are guarded by the country resolver's lock via the
	// select* methods below.
	selCountry *Option
	selState   *Option
	selCity    *Option
}

// NewChain builds the cascade over src.  The child fetchers close over
// the chain so a parent change is visible to the very next fetch.
func NewChain(src Searcher) *Chain {
	c := &Chain{}

	c.country = NewResolver(func(ctx context.Context, q string) ([]Option, error) {
		return src.Countries(ctx, q)
	})
	c.state = NewResolver(func(ctx context.Context, q string) ([]Option, error) {
		parent, ok := c.SelectedCountry()
		if !ok {
			return []Option{}, nil // no country yet: empty, not an error
		}
		return src.States(ctx, parent.ID, q)
	})
	c.city = NewResolver(func(ctx context.Context, q string) ([]Option, error) {
		parent, ok := c.SelectedState()
		if !ok {
			return []Option{}, nil
		}
		return src.Cities(ctx, parent.ID, q)
	})
	return c
}

// Country returns the country field's resolver.
func (c *Chain) Country() *Resolver { return c.country }

// State returns the state field's resolver.
func (c *Chain) State() *Resolver { return c.state }

// City returns the city field's resolver.
func (c *Chain) City() *Resolver { return c.city }

// SelectCountry records o, drops the state and city selections, and
// re-scopes both child fields.
func (c *Chain) SelectCountry(o Option) {
	c.country.mu.Lock()
	c.selCountry = &o
	c.selState = nil
	c.selCity = nil
	c.country.mu.Unlock()

	c.state.Invalidate()
	c.city.Invalidate()
}

// SelectState records o and drops the city selection.  Ignored while no
// country is selected.
func (c *Chain) SelectState(o Option) {
	c.country.mu.Lock()
	if c.selCountry == nil {
		c.country.mu.Unlock()
		return
	}
	c.selState = &o
	c.selCity = nil
	c.country.mu.Unlock()

	c.city.Invalidate()
}

// SelectCity records o.  Ignored while no state is selected.
func (c *Chain) SelectCity(o Option) {
	c.country.mu.Lock()
	if c.selState == nil {
		c.country.mu.Unlock()
		return
	}
	c.selCity = &o
	c.country.mu.Unlock()
}

// SelectedCountry returns the current country selection, if any.
func (c *Chain) SelectedCountry() (Option, bool) { return c.selected(&c.selCountry) }

// SelectedState returns the current state selection, if any.
func (c *Chain) SelectedState() (Option, bool) { return c.selected(&c.selState) }

// SelectedCity returns the current city selection, if any.
func (c *Chain) SelectedCity() (Option, bool) { return c.selected(&c.selCity) }

func (c *Chain) selected(p **Option) (Option, bool) {
	c.country.mu.Lock()
	defer c.country.mu.Unlock()
	if *p == nil {
		return Option{}, false
	}
	return **p, true
}

// Quiesce waits for all three fields' in-flight fetches.
func (c *Chain) Quiesce() {
	c.country.Quiesce()
	c.state.Quiesce()
	c.city.Quiesce()
}
