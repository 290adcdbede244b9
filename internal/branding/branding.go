// internal/branding/branding.go
//
// Branding draft for the third onboarding step.
//
// Context
//   A Draft carries the logo layout flag, the staged logo URLs, two
//   11-shade color ramps, and a font pair.  Only the 500 shade of each
//   ramp is user input; the other ten entries are derived from it in
//   one synchronous rewrite at the input boundary, so the committed
//   draft can never hold a half-updated ramp.

package branding

import (
	"fmt"
	"regexp"

	"github.com/MS250871/my-saas-demo/internal/shade"
)

// Default ramp anchors shown before the user picks anything.
const (
	DefaultPrimaryAnchor   = "#0A83f5"
	DefaultSecondaryAnchor = "#f57c08"
)

var hexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Ramp maps shade labels ("50".."950") to 6-digit hex values.
type Ramp map[string]string

// NewRamp derives a full ramp from anchor.
func NewRamp(anchor string) Ramp {
	r := make(Ramp, len(shade.Labels))
	r.SetAnchor(anchor)
	return r
}

// SetAnchor rewrites every entry from the anchor in one call.  The
// derivation is deterministic, so re-anchoring on the ramp's own 500
// value reproduces the same ramp.
func (r Ramp) SetAnchor(anchor string) {
	ramp := shade.Generate(anchor)
	for i, label := range shade.Labels {
		r[label] = ramp[i]
	}
}

// Anchor returns the 500 shade.
func (r Ramp) Anchor() string { return r["500"] }

// Validate checks that every shade label holds a 6-digit hex value.
func (r Ramp) Validate() error {
	for _, label := range shade.Labels {
		v, ok := r[label]
		if !ok {
			return fmt.Errorf("shade %s missing", label)
		}
		if !hexRe.MatchString(v) {
			return fmt.Errorf("shade %s: %q is not a 6-digit hex color", label, v)
		}
	}
	return nil
}

// FontPair is one heading/paragraph combination from the catalog.
type FontPair struct {
	Label         string `json:"label"`
	HeadingFont   string `json:"heading_font"`
	ParagraphFont string `json:"paragraph_font"`
}

// FontPairs is the selectable catalog, in display order.
var FontPairs = []FontPair{
	{"Playfair Display + Source Sans 3", "Playfair Display", "Source Sans 3"},
	{"Merriweather + Merriweather Sans", "Merriweather", "Merriweather Sans"},
	{"Lora + Roboto", "Lora", "Roboto"},
	{"Libre Baskerville + Nunito", "Libre Baskerville", "Nunito"},
	{"Roboto Slab + Roboto", "Roboto Slab", "Roboto"},
	{"Abril Fatface + Poppins", "Abril Fatface", "Poppins"},
	{"Montserrat + Montserrat", "Montserrat", "Montserrat"},
	{"Poppins + Lato", "Poppins", "Lato"},
	{"Inter + Inter", "Inter", "Inter"},
	{"Source Sans 3 + Source Serif 4", "Source Sans 3", "Source Serif 4"},
}

// Draft is the branding form payload.
type Draft struct {
	TenantID      string   `json:"tenant_id"`
	IsRectangular bool     `json:"is_rectangular"`
	LogoURLs      []string `json:"logo_urls"`
	Primary       Ramp     `json:"primary"`
	Secondary     Ramp     `json:"secondary"`
	TitleFont     string   `json:"title_font"`
	ParagraphFont string   `json:"paragraph_font"`
}

// NewDraft returns a Draft seeded with the default ramps and fonts.
func NewDraft(tenantID string) Draft {
	return Draft{
		TenantID:      tenantID,
		IsRectangular: true,
		Primary:       NewRamp(DefaultPrimaryAnchor),
		Secondary:     NewRamp(DefaultSecondaryAnchor),
		TitleFont:     FontPairs[0].HeadingFont,
		ParagraphFont: FontPairs[0].ParagraphFont,
	}
}

// SetPrimaryAnchor re-derives the primary ramp only.
func (d *Draft) SetPrimaryAnchor(anchor string) { d.Primary.SetAnchor(anchor) }

// SetSecondaryAnchor re-derives the secondary ramp only.
func (d *Draft) SetSecondaryAnchor(anchor string) { d.Secondary.SetAnchor(anchor) }

// Check validates the draft and returns field-keyed messages.
func (d Draft) Check() map[string]string {
	errs := make(map[string]string)
	if d.TenantID == "" {
		errs["tenant_id"] = "Tenant is required"
	}
	if len(d.LogoURLs) == 0 {
		errs["logo_urls"] = "Please provide at least one logo URL."
	}
	for i, u := range d.LogoURLs {
		if u == "" {
			errs["logo_urls"] = fmt.Sprintf("Logo URL %d is empty", i+1)
			break
		}
	}
	if err := d.Primary.Validate(); err != nil {
		errs["primary"] = err.Error()
	}
	if err := d.Secondary.Validate(); err != nil {
		errs["secondary"] = err.Error()
	}
	if !fontKnown(d.TitleFont) {
		errs["title_font"] = "Unknown heading font"
	}
	if !fontKnown(d.ParagraphFont) {
		errs["paragraph_font"] = "Unknown paragraph font"
	}
	return errs
}

func fontKnown(family string) bool {
	for _, p := range FontPairs {
		if p.HeadingFont == family || p.ParagraphFont == family {
			return true
		}
	}
	return false
}
