// internal/tenant/service.go
//
// Organization-step business logic.
//
// Workflow
//   •  Create validates the Draft with go-playground/validator, keyed
//      by JSON field name so the form can highlight exact issues.
//   •  On success it derives the slug from the company name, mints a
//      UUID, and inserts the Tenant through the repository.
//   •  Validation failures come back as a field → message map and are
//      a user error, not a 500.

package tenant

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MS250871/my-saas-demo/internal/metrics"
	"github.com/MS250871/my-saas-demo/internal/options"
)

// ValidationError carries a field-keyed message map back to the form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "tenant draft validation failed" }

// Service creates tenants from organization drafts.
type Service struct {
	repo     *Repository
	validate *validator.Validate
	log      *zap.SugaredLogger
}

// NewService wires the repository and a validator configured with the
// company-type and employee-bucket enums.
func NewService(repo *Repository, log *zap.SugaredLogger) *Service {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("company_type", func(fl validator.FieldLevel) bool {
		return contains(CompanyTypes, fl.Field().String())
	})
	_ = v.RegisterValidation("employee_bucket", func(fl validator.FieldLevel) bool {
		return contains(EmployeeBuckets, fl.Field().String())
	})
	return &Service{repo: repo, validate: v, log: log}
}

// Create validates d and persists a new Tenant.  It returns
// *ValidationError for user-input failures.
func (s *Service) Create(ctx context.Context, d Draft) (*Tenant, error) {
	if errs := s.Check(d); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	ten := &Tenant{
		ID:              uuid.NewString(),
		OwnerID:         d.OwnerID,
		CompanyName:     d.CompanyName,
		Slug:            Slug(d.CompanyName),
		CompanyEmail:    d.CompanyEmail,
		CompanyMobile:   d.CompanyMobile,
		CompanyWebsite:  d.CompanyWebsite,
		CompanyAddress1: d.CompanyAddress1,
		CompanyAddress2: d.CompanyAddress2,
		CountryID:       d.Country.ID,
		StateID:         d.State.ID,
		CityID:          d.City.ID,
		PostalCode:      d.PostalCode,
		CompanyType:     d.CompanyType,
		NoOfEmployees:   d.NoOfEmployees,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, ten); err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}

	metrics.TenantCreatedTotal.Inc()
	s.log.Infow("tenant created", "id", ten.ID, "slug", ten.Slug)
	return ten, nil
}

// Check validates d and returns field-keyed messages; empty map means
// the draft is clean.
func (s *Service) Check(d Draft) map[string]string {
	errs := make(map[string]string)

	// Location parentage: a child selection without its parent can only
	// come from a bypassed cascade, never from the real form.
	if sel(d.State) && !sel(d.Country) {
		errs["state"] = "Select a country first"
	}
	if sel(d.City) && !sel(d.State) {
		errs["city"] = "Select a state first"
	}
	if !sel(d.Country) {
		errs["country"] = "Country is required"
	}
	if !sel(d.State) {
		errs["state"] = "State is required"
	}
	if !sel(d.City) {
		errs["city"] = "City is required"
	}

	err := s.validate.Struct(d)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid submission"
		return errs
	}
	for _, fe := range verrs {
		key := fe.Field()
		if _, dup := errs[key]; dup {
			continue
		}
		errs[key] = messageFor(fe)
	}
	return errs
}

// messageFor mirrors the onboarding form's inline copy.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "owner_id":
		return "Owner is required"
	case "company_name":
		return "Company name required"
	case "company_email":
		return "Invalid email"
	case "company_mobile":
		return "Mobile required"
	case "company_website":
		return "Website should start with www"
	case "company_address_1":
		return "Address required"
	case "postal_code":
		return "Postal code required"
	case "company_type":
		return "Select a company type"
	case "no_of_employees":
		return "Select a number of employees"
	default:
		if fe.Tag() == "required" {
			return "This field is required"
		}
		return "Invalid input"
	}
}

// sel reports whether a location option has actually been chosen.
func sel(o options.Option) bool { return o.ID > 0 }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
