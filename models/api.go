package models

// SubmissionResponse is the wire shape for all enquiry endpoints
type SubmissionResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"` // Human-readable message on success
	Error   string         `json:"error,omitempty"`   // Generic error message, never transport detail
	Issues  *FieldErrorSet `json:"issues,omitempty"`  // Full field-error set on validation failure
	DryRun  bool           `json:"dryRun,omitempty"`  // True when messages were logged, not sent
}

// FieldErrorSet collects validation errors keyed by field name. Errors are
// accumulated exhaustively in schema-declaration order; the set is either
// empty or the whole submission is rejected.
type FieldErrorSet struct {
	FieldErrors map[string][]string `json:"fieldErrors"`

	order []string
}

// NewFieldErrorSet returns an empty error set
func NewFieldErrorSet() *FieldErrorSet {
	return &FieldErrorSet{FieldErrors: make(map[string][]string)}
}

// Add appends a message for a field, preserving first-seen field order
func (s *FieldErrorSet) Add(field, message string) {
	if _, ok := s.FieldErrors[field]; !ok {
		s.order = append(s.order, field)
	}
	s.FieldErrors[field] = append(s.FieldErrors[field], message)
}

// Has reports whether the field has at least one error
func (s *FieldErrorSet) Has(field string) bool {
	return len(s.FieldErrors[field]) > 0
}

// Empty reports whether validation succeeded
func (s *FieldErrorSet) Empty() bool {
	return len(s.FieldErrors) == 0
}

// Fields returns the failing field names in the order errors were recorded
func (s *FieldErrorSet) Fields() []string {
	return s.order
}
