package models

// GeneralEnquiry is the candidate payload for the general contact form.
// It is untrusted until the validator has accepted it.
type GeneralEnquiry struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Country           string `json:"country"`
	PostalCode        string `json:"postalCode"`
	LinkedIn          string `json:"linkedin"`
	Subject           string `json:"subject"`
	Message           string `json:"message"`
	Consent           bool   `json:"consent"`
	Product           string `json:"product,omitempty"`
	Grade             string `json:"grade,omitempty"`
	Quantity          string `json:"quantity,omitempty"`
	VerificationToken string `json:"verificationToken"`
}

// FieldValues flattens the payload for schema-driven validation. Booleans are
// rendered as "true"/"false" so the boolean rule can check strict consent.
func (e *GeneralEnquiry) FieldValues() map[string]string {
	return map[string]string{
		"firstName":  e.FirstName,
		"lastName":   e.LastName,
		"email":      e.Email,
		"phone":      e.Phone,
		"country":    e.Country,
		"postalCode": e.PostalCode,
		"linkedin":   e.LinkedIn,
		"subject":    e.Subject,
		"message":    e.Message,
		"consent":    boolValue(e.Consent),
		"product":    e.Product,
		"grade":      e.Grade,
		"quantity":   e.Quantity,
	}
}

func boolValue(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
