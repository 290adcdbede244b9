// internal/tenant/repository.go
//
// sqlx persistence for the tenants table.

package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when no tenant matches the lookup key.
var ErrNotFound = errors.New("tenant not found")

// Repository runs tenant queries against the shared database.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps db.
func NewRepository(db *sqlx.DB) *Repository { return &Repository{db: db} }

const insertSQL = `
INSERT INTO tenants (
	id, owner_id, company_name, slug, company_email, company_mobile,
	company_website, company_address_1, company_address_2,
	country_id, state_id, city_id, postal_code,
	company_type, no_of_employees, created_at
) VALUES (
	:id, :owner_id, :company_name, :slug, :company_email, :company_mobile,
	:company_website, :company_address_1, :company_address_2,
	:country_id, :state_id, :city_id, :postal_code,
	:company_type, :no_of_employees, :created_at
)`

// Insert stores a new tenant row.
func (r *Repository) Insert(ctx context.Context, t *Tenant) error {
	if _, err := r.db.NamedExecContext(ctx, insertSQL, t); err != nil {
		return fmt.Errorf("insert tenant %s: %w", t.Slug, err)
	}
	return nil
}

// BySlug fetches one tenant by slug.
func (r *Repository) BySlug(ctx context.Context, slug string) (*Tenant, error) {
	var t Tenant
	err := r.db.GetContext(ctx, &t,
		`SELECT * FROM tenants WHERE slug = ? LIMIT 1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("tenant by slug %s: %w", slug, err)
	}
	return &t, nil
}

// ByID fetches one tenant by id.
func (r *Repository) ByID(ctx context.Context, id string) (*Tenant, error) {
	var t Tenant
	err := r.db.GetContext(ctx, &t,
		`SELECT * FROM tenants WHERE id = ? LIMIT 1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("tenant by id %s: %w", id, err)
	}
	return &t, nil
}
