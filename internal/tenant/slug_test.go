// internal/tenant/slug_test.go

package tenant

import (
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Acme", "acme"},
		{"Acme Corp", "acme-corp"},
		{"  Acme   Corp  ", "acme-corp"},
		{"Acme & Sons, Ltd.", "acme-sons-ltd"},
		{"ACME-2000", "acme-2000"},
		{"Café Müller", "caf-m-ller"},
		{"!!!", "tenant"},
		{"", "tenant"},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Fatalf("Slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlug_CapsLengthWithoutTrailingDash(t *testing.T) {
	long := strings.Repeat("a-", 60) // cut at 100 lands on a dash
	got := Slug(long)
	if len(got) > 100 {
		t.Fatalf("len = %d, want <= 100", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Fatalf("trailing dash survived the cut: %q", got)
	}
}
