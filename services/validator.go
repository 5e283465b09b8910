package services

import (
	"fmt"
	"strconv"
	"strings"

	"highrange-backend/models"

	"github.com/go-playground/validator/v10"
)

// Validator applies the canonical schemas to candidate payloads. It is pure:
// no I/O, no mutation of the payload, same input always gives the same result.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a schema validator
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateGeneral checks a general enquiry against the base schema
func (v *Validator) ValidateGeneral(e *models.GeneralEnquiry) *models.FieldErrorSet {
	return v.applySchema(GeneralEnquirySchema(), e.FieldValues())
}

// ValidateSupplier checks a supplier registration against the base schema and
// then the category-specific rules, selected by the category discriminant.
// Each category has its own check function so the rules stay independently
// testable.
func (v *Validator) ValidateSupplier(reg *models.SupplierRegistration) *models.FieldErrorSet {
	errs := v.applySchema(SupplierRegistrationSchema(), reg.FieldValues())

	switch reg.Category {
	case models.CategoryEstateOwner:
		v.checkEstateOwner(reg, errs)
	case models.CategoryIndividualFarmer:
		v.checkIndividualFarmer(reg, errs)
	case models.CategoryBrokersTraders:
		v.checkBrokersTraders(reg, errs)
	}
	// An unrecognized category has already failed the enum rule

	return errs
}

// ValidateTrade checks a trade enquiry against the base schema
func (v *Validator) ValidateTrade(t *models.TradeEnquiry) *models.FieldErrorSet {
	return v.applySchema(TradeEnquirySchema(), t.FieldValues())
}

func (v *Validator) checkEstateOwner(reg *models.SupplierRegistration, errs *models.FieldErrorSet) {
	requireCategoryGroup(SupplierCategoryRequirements()[models.CategoryEstateOwner], reg.FieldValues(), errs)
}

func (v *Validator) checkIndividualFarmer(reg *models.SupplierRegistration, errs *models.FieldErrorSet) {
	requireCategoryGroup(SupplierCategoryRequirements()[models.CategoryIndividualFarmer], reg.FieldValues(), errs)
}

func (v *Validator) checkBrokersTraders(reg *models.SupplierRegistration, errs *models.FieldErrorSet) {
	requireCategoryGroup(SupplierCategoryRequirements()[models.CategoryBrokersTraders], reg.FieldValues(), errs)
}

// requireCategoryGroup enforces a category's additionally-required fields.
// A missing field yields one error keyed to the category's defining field.
func requireCategoryGroup(req CategoryRequirement, values map[string]string, errs *models.FieldErrorSet) {
	for _, field := range req.Fields {
		if strings.TrimSpace(values[field]) == "" {
			errs.Add(req.KeyField, fmt.Sprintf("All %s fields are required", req.Category))
			return
		}
	}
}

// applySchema runs every rule in declaration order, collecting errors
// exhaustively instead of short-circuiting on the first failure.
func (v *Validator) applySchema(schema SubmissionSchema, values map[string]string) *models.FieldErrorSet {
	errs := models.NewFieldErrorSet()

	for _, rule := range schema.Rules {
		value := strings.TrimSpace(values[rule.Name])

		if rule.Type == FieldBoolean {
			// A boolean consent field must be strictly true
			if rule.Required && value != "true" {
				errs.Add(rule.Name, "Consent must be given")
			}
			continue
		}

		if value == "" {
			if rule.Required {
				errs.Add(rule.Name, "This field is required")
			}
			continue
		}

		switch rule.Type {
		case FieldEmail:
			if v.validate.Var(value, "email") != nil {
				errs.Add(rule.Name, "Must be a valid email address")
			}
		case FieldURL:
			if v.validate.Var(value, "url") != nil {
				errs.Add(rule.Name, "Must be a valid URL")
			}
		case FieldNumber:
			if n, err := strconv.Atoi(value); err != nil || n < 0 {
				errs.Add(rule.Name, "Must be a non-negative whole number")
			}
		case FieldEnum:
			if !containsString(rule.Enum, value) {
				errs.Add(rule.Name, fmt.Sprintf("Must be one of: %s", strings.Join(rule.Enum, ", ")))
			}
		}

		if rule.MinLength > 0 && len(value) < rule.MinLength {
			errs.Add(rule.Name, fmt.Sprintf("Must be at least %d characters", rule.MinLength))
		}

		if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
			errs.Add(rule.Name, "Invalid format")
		}
	}

	return errs
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
