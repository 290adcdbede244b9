// internal/tenant/service_test.go

package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/MS250871/my-saas-demo/internal/options"
)

func validDraft() Draft {
	return Draft{
		OwnerID:         "user-1",
		CompanyName:     "Acme Corp",
		CompanyEmail:    "hello@acme.test",
		CompanyMobile:   "9876543210",
		CompanyWebsite:  "www.acme.test",
		CompanyAddress1: "1 Main Street",
		Country:         options.Option{ID: 101, Name: "India"},
		State:           options.Option{ID: 7, Name: "Maharashtra"},
		City:            options.Option{ID: 42, Name: "Pune"},
		PostalCode:      "411001",
		CompanyType:     TypePrivateLtd,
		NoOfEmployees:   "11 to 50",
	}
}

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := NewRepository(sqlx.NewDb(db, "sqlmock"))
	return NewService(repo, zap.NewNop().Sugar()), mock
}

func TestCheck_CleanDraft(t *testing.T) {
	svc, _ := newMockService(t)
	if errs := svc.Check(validDraft()); len(errs) != 0 {
		t.Fatalf("clean draft produced errors: %v", errs)
	}
}

func TestCheck_FieldKeyedMessages(t *testing.T) {
	svc, _ := newMockService(t)

	d := validDraft()
	d.CompanyName = "A"
	d.CompanyEmail = "not-an-email"
	d.CompanyWebsite = "acme.test"
	d.CompanyType = "llc"
	d.NoOfEmployees = "lots"

	errs := svc.Check(d)
	want := map[string]string{
		"company_name":    "Company name required",
		"company_email":   "Invalid email",
		"company_website": "Website should start with www",
		"company_type":    "Select a company type",
		"no_of_employees": "Select a number of employees",
	}
	for key, msg := range want {
		if errs[key] != msg {
			t.Fatalf("errs[%q] = %q, want %q (all: %v)", key, errs[key], msg, errs)
		}
	}
	if _, ok := errs["company_mobile"]; ok {
		t.Fatal("unrelated field flagged")
	}
}

func TestCheck_CascadeParentage(t *testing.T) {
	svc, _ := newMockService(t)

	d := validDraft()
	d.Country = options.Option{}

	errs := svc.Check(d)
	if errs["country"] == "" {
		t.Fatalf("missing country not flagged: %v", errs)
	}
	if errs["state"] != "Select a country first" {
		t.Fatalf("stale state selection not flagged: %v", errs)
	}
}

func TestCreate_InsertsWithSlugAndUUID(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectExec(`INSERT INTO tenants`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ten, err := svc.Create(context.Background(), validDraft())
	if err != nil {
		t.Fatal(err)
	}
	if ten.Slug != "acme-corp" {
		t.Fatalf("slug = %q, want acme-corp", ten.Slug)
	}
	if len(ten.ID) != 36 {
		t.Fatalf("id %q is not a uuid", ten.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_ValidationStopsBeforeInsert(t *testing.T) {
	svc, mock := newMockService(t)

	d := validDraft()
	d.CompanyEmail = "broken"

	_, err := svc.Create(context.Background(), d)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want *ValidationError, got %v", err)
	}
	if verr.Fields["company_email"] != "Invalid email" {
		t.Fatalf("fields = %v", verr.Fields)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("insert attempted on invalid draft: %v", err)
	}
}
