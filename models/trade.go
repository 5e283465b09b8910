package models

// TradeEnquiry is the candidate payload for bulk trade enquiries. The form is
// sectioned: company details, contact person, logistics. The verification
// token is mandatory for this submission type.
type TradeEnquiry struct {
	// Company details
	CompanyName    string `json:"companyName"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyAddress string `json:"companyAddress"`
	Country        string `json:"country"`
	Website        string `json:"website,omitempty"`
	Fax            string `json:"fax,omitempty"`

	// Contact person
	ContactName  string `json:"contactName"`
	Designation  string `json:"designation"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	LinkedIn     string `json:"linkedin,omitempty"`

	// Logistics
	Product            string `json:"product"`
	Grade              string `json:"grade"`
	QuantityMT         string `json:"quantityMT"`
	DestinationPort    string `json:"destinationPort"`
	Incoterm           string `json:"incoterm"`
	Packaging          string `json:"packaging,omitempty"`
	PreShipmentAgency  string `json:"preShipmentAgency,omitempty"`
	TargetShipmentDate string `json:"targetShipmentDate,omitempty"`
	Requirements       string `json:"requirements"`

	Consent           bool   `json:"consent"`
	VerificationToken string `json:"verificationToken"`
}

// FieldValues flattens the payload for schema-driven validation
func (t *TradeEnquiry) FieldValues() map[string]string {
	return map[string]string{
		"companyName":        t.CompanyName,
		"companyEmail":       t.CompanyEmail,
		"companyPhone":       t.CompanyPhone,
		"companyAddress":     t.CompanyAddress,
		"country":            t.Country,
		"website":            t.Website,
		"fax":                t.Fax,
		"contactName":        t.ContactName,
		"designation":        t.Designation,
		"contactEmail":       t.ContactEmail,
		"contactPhone":       t.ContactPhone,
		"linkedin":           t.LinkedIn,
		"product":            t.Product,
		"grade":              t.Grade,
		"quantityMT":         t.QuantityMT,
		"destinationPort":    t.DestinationPort,
		"incoterm":           t.Incoterm,
		"packaging":          t.Packaging,
		"preShipmentAgency":  t.PreShipmentAgency,
		"targetShipmentDate": t.TargetShipmentDate,
		"requirements":       t.Requirements,
		"consent":            boolValue(t.Consent),
	}
}
