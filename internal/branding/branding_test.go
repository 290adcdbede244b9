// internal/branding/branding_test.go

package branding

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/MS250871/my-saas-demo/internal/shade"
)

func TestFontPairs_CatalogSeedsDefaults(t *testing.T) {
	if len(FontPairs) != 10 {
		t.Fatalf("catalog size = %d, want 10", len(FontPairs))
	}
	for i, p := range FontPairs {
		if p.Label == "" || p.HeadingFont == "" || p.ParagraphFont == "" {
			t.Fatalf("pair %d is incomplete: %+v", i, p)
		}
	}

	d := NewDraft("t-1")
	if d.TitleFont != FontPairs[0].HeadingFont || d.ParagraphFont != FontPairs[0].ParagraphFont {
		t.Fatalf("default fonts = %s/%s, want first catalog pair", d.TitleFont, d.ParagraphFont)
	}
	if !fontKnown(d.TitleFont) || !fontKnown(d.ParagraphFont) {
		t.Fatal("default fonts must be in the catalog")
	}
}

func TestSetPrimaryAnchor_RewritesWholeRampAtOnce(t *testing.T) {
	d := NewDraft("t-1")
	before := make(Ramp, len(d.Secondary))
	for k, v := range d.Secondary {
		before[k] = v
	}

	d.SetPrimaryAnchor("#ff0000")

	want := shade.Generate("#ff0000")
	for i, label := range shade.Labels {
		if d.Primary[label] != want[i] {
			t.Fatalf("primary_%s = %s, want %s", label, d.Primary[label], want[i])
		}
	}
	// The secondary ramp is untouched.
	for k, v := range before {
		if d.Secondary[k] != v {
			t.Fatalf("secondary_%s changed to %s", k, d.Secondary[k])
		}
	}
	if err := d.Primary.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestRamp_ReanchoringOwnOutputIsStable(t *testing.T) {
	r := NewRamp("#0A83f5")
	snapshot := make(Ramp, len(r))
	for k, v := range r {
		snapshot[k] = v
	}

	r.SetAnchor(r.Anchor())

	for k, v := range snapshot {
		if r[k] != v {
			t.Fatalf("shade %s drifted from %s to %s", k, v, r[k])
		}
	}
}

func TestRampValidate(t *testing.T) {
	r := NewRamp("#0A83f5")
	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}

	r["300"] = "#12"
	if err := r.Validate(); err == nil {
		t.Fatal("truncated hex accepted")
	}

	delete(r, "300")
	if err := r.Validate(); err == nil {
		t.Fatal("missing label accepted")
	}
}

func TestDraftCheck(t *testing.T) {
	d := NewDraft("t-1")
	d.LogoURLs = []string{"/uploads/logo.png"}
	if errs := d.Check(); len(errs) != 0 {
		t.Fatalf("clean draft produced errors: %v", errs)
	}

	d.LogoURLs = nil
	d.TitleFont = "Comic Sans"
	errs := d.Check()
	if errs["logo_urls"] == "" {
		t.Fatal("empty logo list not flagged")
	}
	if errs["title_font"] != "Unknown heading font" {
		t.Fatalf("errs = %v", errs)
	}
}

func TestRepository_SaveAndLoadRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	repo := NewRepository(sqlx.NewDb(db, "sqlmock"))

	d := NewDraft("t-1")
	d.LogoURLs = []string{"/uploads/logo.png"}

	mock.ExpectExec(`INSERT INTO branding`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	if err := repo.Save(context.Background(), d); err != nil {
		t.Fatal(err)
	}

	mock.ExpectQuery(`SELECT tenant_id, is_rectangular, logo_urls`).
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"tenant_id", "is_rectangular", "logo_urls", "primary_ramp",
			"secondary_ramp", "title_font", "paragraph_font",
		}).AddRow(
			"t-1", true, `["/uploads/logo.png"]`,
			`{"50":"#ffffff","100":"#eeeeee","200":"#dddddd","300":"#cccccc","400":"#bbbbbb","500":"#aaaaaa","600":"#999999","700":"#888888","800":"#777777","900":"#666666","950":"#555555"}`,
			`{"50":"#ffffff","100":"#eeeeee","200":"#dddddd","300":"#cccccc","400":"#bbbbbb","500":"#aaaaaa","600":"#999999","700":"#888888","800":"#777777","900":"#666666","950":"#555555"}`,
			"Playfair Display", "Source Sans 3",
		))

	got, err := repo.ByTenant(context.Background(), "t-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Primary["500"] != "#aaaaaa" || len(got.LogoURLs) != 1 {
		t.Fatalf("loaded draft = %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
