// internal/sortable/repository.go
//
// sqlx persistence for submitted section snapshots.  Position is the
// row's index in the snapshot; the whole order is replaced in one
// transaction, never merged row by row.

package sortable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a tenant has no saved sections.
var ErrNotFound = errors.New("sections not found")

// Repository runs section queries against the shared database.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps db.
func NewRepository(db *sqlx.DB) *Repository { return &Repository{db: db} }

type sectionRow struct {
	TenantID    string `db:"tenant_id"`
	Position    int    `db:"position"`
	ItemID      string `db:"item_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

// Save replaces the tenant's section order with the given snapshot.
func (r *Repository) Save(ctx context.Context, tenantID string, items []Item) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save sections for %s: %w", tenantID, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM template_sections WHERE tenant_id = ?`, tenantID); err != nil {
		return fmt.Errorf("save sections for %s: %w", tenantID, err)
	}
	for pos, it := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO template_sections
				(tenant_id, position, item_id, name, description)
			 VALUES (?, ?, ?, ?, ?)`,
			tenantID, pos, it.ID, it.Name, it.Description); err != nil {
			return fmt.Errorf("save sections for %s: %w", tenantID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save sections for %s: %w", tenantID, err)
	}
	return nil
}

// ByTenant fetches the tenant's saved sections in position order.
func (r *Repository) ByTenant(ctx context.Context, tenantID string) ([]Item, error) {
	var rows []sectionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT tenant_id, position, item_id, name, description
		 FROM template_sections WHERE tenant_id = ?
		 ORDER BY position`, tenantID)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && len(rows) == 0) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sections for %s: %w", tenantID, err)
	}

	items := make([]Item, len(rows))
	for i, rec := range rows {
		items[i] = Item{ID: rec.ItemID, Name: rec.Name, Description: rec.Description}
	}
	return items, nil
}
