package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ValidatorID records the validator identifier under the key "validator_id".
func ValidatorID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("validator_id", id)
}

// RuleID records the rule identifier under the key "rule_id".
func RuleID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("rule_id", id)
}

// ExecutionID records the execution identifier under the key "execution_id".
func ExecutionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("execution_id", id)
}

// Outcome records a validation outcome tag under the key "outcome".
func Outcome(outcome string) slog.Attr {
	if outcome == "" {
		return slog.Attr{}
	}
	return slog.String("outcome", outcome)
}

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
