// internal/tenant/cache_test.go

package tenant

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func tenantRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "company_name", "slug", "company_email",
		"company_mobile", "company_website", "company_address_1",
		"company_address_2", "country_id", "state_id", "city_id",
		"postal_code", "company_type", "no_of_employees", "created_at",
	}).AddRow(
		"t-1", "user-1", "Acme Corp", "acme-corp", "hello@acme.test",
		"9876543210", "www.acme.test", "1 Main Street",
		"", 101, 7, 42, "411001", TypePrivateLtd, "11 to 50", time.Now(),
	)
}

func TestCacheGet_LoadsOnceThenHits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	// A single query expectation: the second Get must hit the cache.
	mock.ExpectQuery(`SELECT \* FROM tenants WHERE slug = \?`).
		WithArgs("acme-corp").
		WillReturnRows(tenantRow())

	c := NewCache(NewRepository(sqlx.NewDb(db, "sqlmock")), IdleTTL, MaxEntries, zap.NewNop().Sugar())
	t.Cleanup(c.Close)

	ctx := context.Background()
	first, err := c.Get(ctx, "acme-corp")
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Get(ctx, "acme-corp")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("second Get did not return the cached pointer")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCacheGet_UnknownSlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	mock.ExpectQuery(`SELECT \* FROM tenants WHERE slug = \?`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	c := NewCache(NewRepository(sqlx.NewDb(db, "sqlmock")), IdleTTL, MaxEntries, zap.NewNop().Sugar())
	t.Cleanup(c.Close)

	if _, err := c.Get(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCacheInvalidate_ForcesReload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	mock.ExpectQuery(`SELECT \* FROM tenants`).WillReturnRows(tenantRow())
	mock.ExpectQuery(`SELECT \* FROM tenants`).WillReturnRows(tenantRow())

	c := NewCache(NewRepository(sqlx.NewDb(db, "sqlmock")), IdleTTL, MaxEntries, zap.NewNop().Sugar())
	t.Cleanup(c.Close)

	ctx := context.Background()
	if _, err := c.Get(ctx, "acme-corp"); err != nil {
		t.Fatal(err)
	}
	c.Invalidate("acme-corp")
	if _, err := c.Get(ctx, "acme-corp"); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
