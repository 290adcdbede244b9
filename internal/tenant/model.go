// internal/tenant/model.go
//
// Tenant aggregate and organization draft.
//
// Context
//   A Draft is the organization step's submitted form: company profile
//   fields, a company-type and employee-bucket enum, and a three-level
//   location selection.  A Tenant is the persisted record minted from
//   a valid Draft; its slug is derived from the company name and is
//   the key every later onboarding step carries forward.
//
// Notes
//   - State and city are meaningful only under their selected parent;
//     the options chain enforces that before the Draft is ever built.
//   - JSON names match the wire contract of the onboarding forms.

package tenant

import (
	"time"

	"github.com/MS250871/my-saas-demo/internal/options"
)

// Company-type enum values.
const (
	TypeProprietorship = "proprietorship"
	TypePartnership    = "partnership"
	TypePrivateLtd     = "private_ltd"
	TypePublicLtd      = "public_ltd"
)

// CompanyTypes lists the accepted company_type values in display order.
var CompanyTypes = []string{
	TypeProprietorship,
	TypePartnership,
	TypePrivateLtd,
	TypePublicLtd,
}

// EmployeeBuckets lists the accepted no_of_employees values.
var EmployeeBuckets = []string{
	"1 to 10",
	"11 to 50",
	"51 to 200",
	"201 to 500",
	"500+",
}

// Draft is the organization form payload.
type Draft struct {
	OwnerID         string         `json:"owner_id" validate:"required"`
	CompanyName     string         `json:"company_name" validate:"required,min=2"`
	CompanyEmail    string         `json:"company_email" validate:"required,email"`
	CompanyMobile   string         `json:"company_mobile" validate:"required,min=8"`
	CompanyWebsite  string         `json:"company_website" validate:"required,startswith=www."`
	CompanyAddress1 string         `json:"company_address_1" validate:"required,min=2"`
	CompanyAddress2 string         `json:"company_address_2"`
	Country         options.Option `json:"country" validate:"required"`
	State           options.Option `json:"state" validate:"required"`
	City            options.Option `json:"city" validate:"required"`
	PostalCode      string         `json:"postal_code" validate:"required,min=2"`
	CompanyType     string         `json:"company_type" validate:"required,company_type"`
	NoOfEmployees   string         `json:"no_of_employees" validate:"required,employee_bucket"`
}

// Tenant is the persisted record.
type Tenant struct {
	ID              string    `db:"id" json:"id"`
	OwnerID         string    `db:"owner_id" json:"owner_id"`
	CompanyName     string    `db:"company_name" json:"company_name"`
	Slug            string    `db:"slug" json:"slug"`
	CompanyEmail    string    `db:"company_email" json:"company_email"`
	CompanyMobile   string    `db:"company_mobile" json:"company_mobile"`
	CompanyWebsite  string    `db:"company_website" json:"company_website"`
	CompanyAddress1 string    `db:"company_address_1" json:"company_address_1"`
	CompanyAddress2 string    `db:"company_address_2" json:"company_address_2"`
	CountryID       int64     `db:"country_id" json:"country_id"`
	StateID         int64     `db:"state_id" json:"state_id"`
	CityID          int64     `db:"city_id" json:"city_id"`
	PostalCode      string    `db:"postal_code" json:"postal_code"`
	CompanyType     string    `db:"company_type" json:"company_type"`
	NoOfEmployees   string    `db:"no_of_employees" json:"no_of_employees"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
