package validation

// Common rule type tags. The vocabulary is open: any string is a valid rule
// type, these cover the usual cases.
const (
	RuleTypeRequired = "required"
	RuleTypeType     = "type"
	RuleTypeFormat   = "format"
	RuleTypeRange    = "range"
	RuleTypeCustom   = "custom"
)

// Rule is the metadata describing a single validation rule. It carries no
// behavior: the check itself lives in whatever validator declares the rule.
type Rule struct {
	// ID is the stable identifier of the rule.
	ID string `json:"id" yaml:"id"`
	// Name is the human-readable rule name.
	Name string `json:"name" yaml:"name"`
	// Type tags the rule category ("required", "format", "range", ...).
	// Open vocabulary, see the RuleType* constants.
	Type string `json:"type" yaml:"type"`
	// Params holds arbitrary rule parameters (bounds, patterns, ...).
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
	// MessageTemplate is an optional template for rendering failure messages.
	MessageTemplate string `json:"messageTemplate,omitempty" yaml:"messageTemplate,omitempty"`
}
