// internal/plan/plan.go
//
// Plan tiers and the plan-step selection.

package plan

// Tier is one subscription plan.
type Tier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly string   `json:"price_monthly"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Featured     bool     `json:"featured"`
}

// Tiers is the catalog, in display order.
var Tiers = []Tier{
	{
		ID:           "tier-free",
		Name:         "Free",
		PriceMonthly: "$0",
		Description:  "The perfect plan if you're just getting started with our product.",
		Features:     []string{"5 products", "Up to 1,000 subscribers", "Advanced analytics"},
	},
	{
		ID:           "tier-pro",
		Name:         "Pro",
		PriceMonthly: "$29",
		Description:  "A plan that scales your rapidly growing business.",
		Features: []string{
			"25 products",
			"Up to 10,000 subscribers",
			"Dedicated Subdomain",
			"Advanced analytics",
			"24-hour support response time",
		},
		Featured: true,
	},
	{
		ID:           "tier-enterprise",
		Name:         "Enterprise",
		PriceMonthly: "$99",
		Description:  "Dedicated support and infrastructure for your company.",
		Features: []string{
			"Unlimited products",
			"Unlimited subscribers",
			"Full whitelabeled",
			"Advanced analytics",
			"Dedicated support representative",
			"Marketing automations",
			"Custom integrations",
		},
	},
}

// ByID returns the tier with the given id.
func ByID(id string) (Tier, bool) {
	for _, t := range Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

// Selection is the plan form payload.
type Selection struct {
	TenantID string `json:"tenant_id"`
	PlanID   string `json:"plan_id"`
}

// Check validates the selection and returns field-keyed messages.
func (s Selection) Check() map[string]string {
	errs := make(map[string]string)
	if s.TenantID == "" {
		errs["tenant_id"] = "Tenant is required"
	}
	if _, ok := ByID(s.PlanID); !ok {
		errs["plan_id"] = "Select a plan"
	}
	return errs
}
