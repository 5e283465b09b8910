package services

import (
	"regexp"

	"highrange-backend/models"
)

// FieldType classifies how a field's value is checked
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldEmail   FieldType = "email"
	FieldEnum    FieldType = "enum"
	FieldBoolean FieldType = "boolean"
	FieldNumber  FieldType = "number"
	FieldURL     FieldType = "url"
)

// FieldRule declares how one submitted field is validated
type FieldRule struct {
	Name      string
	Type      FieldType
	Required  bool
	MinLength int
	Pattern   *regexp.Regexp
	Enum      []string
}

// SubmissionSchema is the ordered rule set for one submission type. Rules are
// applied in declaration order and errors are collected exhaustively, so the
// caller sees every failing field in a single pass.
type SubmissionSchema struct {
	Type  models.SubmissionType
	Rules []FieldRule
}

// CategoryRequirement lists the fields that become required when a supplier
// registration carries the given category. A missing field yields one error
// keyed to the category's defining field.
type CategoryRequirement struct {
	Category models.SupplierCategory
	KeyField string
	Fields   []string
}

// FieldRuleSpec is the JSON form of a rule, served to clients so the UI
// pre-check and the server re-check read the same canonical definition.
type FieldRuleSpec struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Required  bool     `json:"required"`
	MinLength int      `json:"minLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Enum      []string `json:"enum,omitempty"`
}

var (
	phonePattern  = regexp.MustCompile(`^\+?[0-9\-\s()]{6,20}$`)
	postalPattern = regexp.MustCompile(`^[A-Za-z0-9 \-]{3,10}$`)
	aadharPattern = regexp.MustCompile(`^[0-9]{12}$`)
	gstPattern    = regexp.MustCompile(`^[0-9A-Z]{15}$`)
)

// Incoterms accepted on trade enquiries
var incoterms = []string{"FOB", "CIF", "CFR", "EXW", "FCA", "DDP"}

func supplierCategoryNames() []string {
	cats := models.SupplierCategories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// GeneralEnquirySchema is the canonical rule set for the general contact form
func GeneralEnquirySchema() SubmissionSchema {
	return SubmissionSchema{
		Type: models.SubmissionGeneral,
		Rules: []FieldRule{
			{Name: "firstName", Type: FieldString, Required: true},
			{Name: "lastName", Type: FieldString, Required: true},
			{Name: "email", Type: FieldEmail, Required: true},
			{Name: "phone", Type: FieldString, Pattern: phonePattern},
			{Name: "country", Type: FieldString, Required: true},
			{Name: "postalCode", Type: FieldString, Required: true, Pattern: postalPattern},
			{Name: "linkedin", Type: FieldURL, Required: true},
			{Name: "subject", Type: FieldString, Required: true},
			{Name: "message", Type: FieldString, Required: true, MinLength: 10},
			{Name: "consent", Type: FieldBoolean, Required: true},
			{Name: "product", Type: FieldString},
			{Name: "grade", Type: FieldString},
			{Name: "quantity", Type: FieldNumber},
		},
	}
}

// SupplierRegistrationSchema is the canonical rule set for supplier
// registrations. Category-group fields are optional here; the category pass
// makes the matching group mandatory.
func SupplierRegistrationSchema() SubmissionSchema {
	return SubmissionSchema{
		Type: models.SubmissionSupplier,
		Rules: []FieldRule{
			{Name: "fullName", Type: FieldString, Required: true},
			{Name: "category", Type: FieldEnum, Required: true, Enum: supplierCategoryNames()},
			{Name: "email", Type: FieldEmail, Required: true},
			{Name: "phone", Type: FieldString, Required: true, Pattern: phonePattern},
			{Name: "country", Type: FieldString, Required: true},
			{Name: "state", Type: FieldString, Required: true},
			{Name: "district", Type: FieldString},
			{Name: "estateName", Type: FieldString},
			{Name: "estateLocation", Type: FieldString},
			{Name: "estateSizeAcres", Type: FieldNumber},
			{Name: "aadharCardNumber", Type: FieldString, Pattern: aadharPattern},
			{Name: "farmLocation", Type: FieldString},
			{Name: "annualProductionKg", Type: FieldNumber},
			{Name: "firmName", Type: FieldString},
			{Name: "gstNumber", Type: FieldString, Pattern: gstPattern},
			{Name: "yearsInTrade", Type: FieldNumber},
			{Name: "varieties", Type: FieldString},
			{Name: "message", Type: FieldString},
			{Name: "consent", Type: FieldBoolean, Required: true},
		},
	}
}

// TradeEnquirySchema is the canonical rule set for bulk trade enquiries
func TradeEnquirySchema() SubmissionSchema {
	return SubmissionSchema{
		Type: models.SubmissionTrade,
		Rules: []FieldRule{
			{Name: "companyName", Type: FieldString, Required: true},
			{Name: "companyEmail", Type: FieldEmail, Required: true},
			{Name: "companyPhone", Type: FieldString, Required: true, Pattern: phonePattern},
			{Name: "companyAddress", Type: FieldString, Required: true},
			{Name: "country", Type: FieldString, Required: true},
			{Name: "website", Type: FieldURL},
			{Name: "fax", Type: FieldString},
			{Name: "contactName", Type: FieldString, Required: true},
			{Name: "designation", Type: FieldString, Required: true},
			{Name: "contactEmail", Type: FieldEmail, Required: true},
			{Name: "contactPhone", Type: FieldString, Required: true, Pattern: phonePattern},
			{Name: "linkedin", Type: FieldURL},
			{Name: "product", Type: FieldString, Required: true},
			{Name: "grade", Type: FieldString, Required: true},
			{Name: "quantityMT", Type: FieldNumber, Required: true},
			{Name: "destinationPort", Type: FieldString, Required: true},
			{Name: "incoterm", Type: FieldEnum, Required: true, Enum: incoterms},
			{Name: "packaging", Type: FieldString},
			{Name: "preShipmentAgency", Type: FieldString},
			{Name: "targetShipmentDate", Type: FieldString},
			{Name: "requirements", Type: FieldString, Required: true, MinLength: 10},
			{Name: "consent", Type: FieldBoolean, Required: true},
		},
	}
}

// SupplierCategoryRequirements maps every recognized category to its
// additionally-required field group. Every category has exactly one entry.
func SupplierCategoryRequirements() map[models.SupplierCategory]CategoryRequirement {
	return map[models.SupplierCategory]CategoryRequirement{
		models.CategoryEstateOwner: {
			Category: models.CategoryEstateOwner,
			KeyField: "estateName",
			Fields:   []string{"estateName", "estateLocation", "estateSizeAcres"},
		},
		models.CategoryIndividualFarmer: {
			Category: models.CategoryIndividualFarmer,
			KeyField: "aadharCardNumber",
			Fields:   []string{"aadharCardNumber", "farmLocation", "annualProductionKg"},
		},
		models.CategoryBrokersTraders: {
			Category: models.CategoryBrokersTraders,
			KeyField: "firmName",
			Fields:   []string{"firmName", "gstNumber", "yearsInTrade"},
		},
	}
}

// SchemaFor returns the canonical schema for a submission type
func SchemaFor(t models.SubmissionType) (SubmissionSchema, bool) {
	switch t {
	case models.SubmissionGeneral:
		return GeneralEnquirySchema(), true
	case models.SubmissionSupplier:
		return SupplierRegistrationSchema(), true
	case models.SubmissionTrade:
		return TradeEnquirySchema(), true
	}
	return SubmissionSchema{}, false
}

// Spec returns the client-facing form of the schema
func (s SubmissionSchema) Spec() []FieldRuleSpec {
	specs := make([]FieldRuleSpec, 0, len(s.Rules))
	for _, r := range s.Rules {
		spec := FieldRuleSpec{
			Name:      r.Name,
			Type:      string(r.Type),
			Required:  r.Required,
			MinLength: r.MinLength,
			Enum:      r.Enum,
		}
		if r.Pattern != nil {
			spec.Pattern = r.Pattern.String()
		}
		specs = append(specs, spec)
	}
	return specs
}
