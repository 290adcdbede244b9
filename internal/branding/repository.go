// internal/branding/repository.go
//
// sqlx persistence for branding drafts.  The ramps and logo list are
// stored as JSON columns; everything else is flat.

package branding

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a tenant has no saved branding.
var ErrNotFound = errors.New("branding not found")

// Repository runs branding queries against the shared database.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps db.
func NewRepository(db *sqlx.DB) *Repository { return &Repository{db: db} }

type row struct {
	TenantID      string `db:"tenant_id"`
	IsRectangular bool   `db:"is_rectangular"`
	LogoURLs      []byte `db:"logo_urls"`
	Primary       []byte `db:"primary_ramp"`
	Secondary     []byte `db:"secondary_ramp"`
	TitleFont     string `db:"title_font"`
	ParagraphFont string `db:"paragraph_font"`
}

const upsertSQL = `
INSERT INTO branding (
	tenant_id, is_rectangular, logo_urls, primary_ramp, secondary_ramp,
	title_font, paragraph_font
) VALUES (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
	is_rectangular = VALUES(is_rectangular),
	logo_urls      = VALUES(logo_urls),
	primary_ramp   = VALUES(primary_ramp),
	secondary_ramp = VALUES(secondary_ramp),
	title_font     = VALUES(title_font),
	paragraph_font = VALUES(paragraph_font)`

// Save upserts the tenant's branding draft.
func (r *Repository) Save(ctx context.Context, d Draft) error {
	logos, err := json.Marshal(d.LogoURLs)
	if err != nil {
		return fmt.Errorf("save branding: %w", err)
	}
	primary, err := json.Marshal(d.Primary)
	if err != nil {
		return fmt.Errorf("save branding: %w", err)
	}
	secondary, err := json.Marshal(d.Secondary)
	if err != nil {
		return fmt.Errorf("save branding: %w", err)
	}
	_, err = r.db.ExecContext(ctx, upsertSQL,
		d.TenantID, d.IsRectangular, logos, primary, secondary,
		d.TitleFont, d.ParagraphFont)
	if err != nil {
		return fmt.Errorf("save branding for %s: %w", d.TenantID, err)
	}
	return nil
}

// ByTenant fetches the tenant's saved branding.
func (r *Repository) ByTenant(ctx context.Context, tenantID string) (*Draft, error) {
	var rec row
	err := r.db.GetContext(ctx, &rec,
		`SELECT tenant_id, is_rectangular, logo_urls, primary_ramp,
		        secondary_ramp, title_font, paragraph_font
		 FROM branding WHERE tenant_id = ? LIMIT 1`, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("branding for %s: %w", tenantID, err)
	}

	d := Draft{
		TenantID:      rec.TenantID,
		IsRectangular: rec.IsRectangular,
		TitleFont:     rec.TitleFont,
		ParagraphFont: rec.ParagraphFont,
	}
	if err := json.Unmarshal(rec.LogoURLs, &d.LogoURLs); err != nil {
		return nil, fmt.Errorf("branding for %s: logo urls: %w", tenantID, err)
	}
	if err := json.Unmarshal(rec.Primary, &d.Primary); err != nil {
		return nil, fmt.Errorf("branding for %s: primary ramp: %w", tenantID, err)
	}
	if err := json.Unmarshal(rec.Secondary, &d.Secondary); err != nil {
		return nil, fmt.Errorf("branding for %s: secondary ramp: %w", tenantID, err)
	}
	return &d, nil
}
