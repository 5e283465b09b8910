package models

// SupplierCategory is the submitter-category discriminant on supplier
// registrations. Each category carries its own additionally-required fields.
type SupplierCategory string

const (
	CategoryEstateOwner      SupplierCategory = "Coffee Estate Owner"
	CategoryIndividualFarmer SupplierCategory = "Individual Farmer"
	CategoryBrokersTraders   SupplierCategory = "Brokers / Traders"
)

// SupplierCategories lists every recognized category, in display order
func SupplierCategories() []SupplierCategory {
	return []SupplierCategory{
		CategoryEstateOwner,
		CategoryIndividualFarmer,
		CategoryBrokersTraders,
	}
}

// SupplierRegistration is the candidate payload for supplier onboarding.
// Category-specific fields are optional at the schema level; the category
// pass makes the matching group mandatory.
type SupplierRegistration struct {
	FullName string           `json:"fullName"`
	Category SupplierCategory `json:"category"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Country  string           `json:"country"`
	State    string           `json:"state"`
	District string           `json:"district,omitempty"`

	// Coffee Estate Owner
	EstateName      string `json:"estateName,omitempty"`
	EstateLocation  string `json:"estateLocation,omitempty"`
	EstateSizeAcres string `json:"estateSizeAcres,omitempty"`

	// Individual Farmer
	AadharCardNumber   string `json:"aadharCardNumber,omitempty"`
	FarmLocation       string `json:"farmLocation,omitempty"`
	AnnualProductionKg string `json:"annualProductionKg,omitempty"`

	// Brokers / Traders
	FirmName     string `json:"firmName,omitempty"`
	GSTNumber    string `json:"gstNumber,omitempty"`
	YearsInTrade string `json:"yearsInTrade,omitempty"`

	Varieties         string `json:"varieties,omitempty"`
	Message           string `json:"message,omitempty"`
	Consent           bool   `json:"consent"`
	VerificationToken string `json:"verificationToken"`
}

// FieldValues flattens the payload for schema-driven validation
func (s *SupplierRegistration) FieldValues() map[string]string {
	return map[string]string{
		"fullName":           s.FullName,
		"category":           string(s.Category),
		"email":              s.Email,
		"phone":              s.Phone,
		"country":            s.Country,
		"state":              s.State,
		"district":           s.District,
		"estateName":         s.EstateName,
		"estateLocation":     s.EstateLocation,
		"estateSizeAcres":    s.EstateSizeAcres,
		"aadharCardNumber":   s.AadharCardNumber,
		"farmLocation":       s.FarmLocation,
		"annualProductionKg": s.AnnualProductionKg,
		"firmName":           s.FirmName,
		"gstNumber":          s.GSTNumber,
		"yearsInTrade":       s.YearsInTrade,
		"varieties":          s.Varieties,
		"message":            s.Message,
		"consent":            boolValue(s.Consent),
	}
}
