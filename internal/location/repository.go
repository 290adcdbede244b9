// internal/location/repository.go
//
// SQL-backed location hierarchy lookup.
//
// Three independent search scopes — countries, states by country, and
// cities by state — each filtered by a free-text fragment and sorted by
// name.  The repository satisfies options.Searcher, so the cascading
// resolver chain can sit directly on top of it.

package location

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MS250871/my-saas-demo/internal/options"
)

// resultCap bounds every search so a blank query on the city table
// cannot drag tens of thousands of rows to the client.
const resultCap = 50

// Repository runs lookups against the shared location tables.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps db.
func NewRepository(db *sqlx.DB) *Repository { return &Repository{db: db} }

// Countries searches all countries by name fragment.
func (r *Repository) Countries(ctx context.Context, query string) ([]options.Option, error) {
	return r.search(ctx,
		`SELECT id, name FROM countries WHERE name LIKE ? ORDER BY name LIMIT ?`,
		like(query), resultCap)
}

// States searches states belonging to countryID.
func (r *Repository) States(ctx context.Context, countryID int64, query string) ([]options.Option, error) {
	return r.search(ctx,
		`SELECT id, name FROM states WHERE country_id = ? AND name LIKE ? ORDER BY name LIMIT ?`,
		countryID, like(query), resultCap)
}

// Cities searches cities belonging to stateID.
func (r *Repository) Cities(ctx context.Context, stateID int64, query string) ([]options.Option, error) {
	return r.search(ctx,
		`SELECT id, name FROM cities WHERE state_id = ? AND name LIKE ? ORDER BY name LIMIT ?`,
		stateID, like(query), resultCap)
}

func (r *Repository) search(ctx context.Context, q string, args ...any) ([]options.Option, error) {
	var out []options.Option
	if err := r.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("location search: %w", err)
	}
	if out == nil {
		out = []options.Option{}
	}
	return out, nil
}

func like(query string) string { return "%" + query + "%" }
