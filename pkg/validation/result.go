package validation

// Result is the outcome of evaluating one field's rule list.
type Result struct {
	FieldID string `json:"field" yaml:"field"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	// Rule names the first failing rule; empty when valid.
	Rule string `json:"rule,omitempty" yaml:"rule,omitempty"`
}
