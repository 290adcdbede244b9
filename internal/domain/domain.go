// internal/domain/domain.go
//
// Domain-strategy selection for the final onboarding step.
//
// The display value is a pure function of strategy and slug; switching
// strategy recomputes it, nothing is stored independently.

package domain

import "fmt"

// Strategy names how the tenant's site is addressed.
type Strategy string

const (
	StrategyPath      Strategy = "path"
	StrategySubdomain Strategy = "subdomain"
	StrategyCustom    Strategy = "custom"
)

// DefaultBase is the platform's apex domain.
const DefaultBase = "mysaas.com"

// Option describes one strategy choice for the picker.
type Option struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"sub_title"`
	Strategy Strategy `json:"domain_type"`
	Example  string   `json:"look_like"`
}

// Options is the picker catalog, in display order.
var Options = []Option{
	{1, "Path based domain", "Available with free trail", StrategyPath, "www.mysaas.com/tenant/dashboard"},
	{2, "Subdomain", "Available with Pro Plan", StrategySubdomain, "tenant.mysaas.com/dashboard"},
	{3, "Fully whitelabel custom domain", "Available with Business Plan", StrategyCustom, "www.tenantdomain.com/dashboard"},
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyPath, StrategySubdomain, StrategyCustom:
		return true
	}
	return false
}

// Display derives the address shown for slug under strategy s, rooted
// at base (e.g., "mysaas.com").
func Display(s Strategy, slug, base string) string {
	if base == "" {
		base = DefaultBase
	}
	switch s {
	case StrategyPath:
		return fmt.Sprintf("www.%s/%s/", base, slug)
	case StrategySubdomain:
		return fmt.Sprintf("%s.%s/", slug, base)
	case StrategyCustom:
		return fmt.Sprintf("www.%s.com/", slug)
	default:
		return ""
	}
}

// Selection is the domain form payload.
type Selection struct {
	TenantID string   `json:"tenant_id"`
	Strategy Strategy `json:"domain_type"`
	Value    string   `json:"value"`
}

// Check validates the selection and returns field-keyed messages.
// Value is recomputed from the strategy, never trusted from the wire.
func (s *Selection) Check(slug, base string) map[string]string {
	errs := make(map[string]string)
	if s.TenantID == "" {
		errs["tenant_id"] = "Tenant is required"
	}
	if !s.Strategy.Valid() {
		errs["domain_type"] = "Select a domain type"
		return errs
	}
	s.Value = Display(s.Strategy, slug, base)
	return errs
}
