package validator

import (
	"fmt"
	"strings"
)

// MessageFunc renders the human-readable message of a failure.
type MessageFunc func(ValidationError) string

var defaultTemplates = map[Kind]string{
	KindMinimum:          "The number must be `>= %s`.",
	KindMaximum:          "The number must be `<= %s`.",
	KindExclusiveMinimum: "The number must be `> %s`.",
	KindExclusiveMaximum: "The number must be `< %s`.",
	KindMultipleOf:       "The value must be multiple of `%s`.",
	KindMinLength:        "The length of the value must be `>= %s`.",
	KindMaxLength:        "The length of the value must be `<= %s`.",
	KindPattern:          "The value must match the pattern of \"%s\".",
	KindMinItems:         "The length of the items must be `>= %s`.",
	KindMaxItems:         "The length of the items must be `<= %s`.",
	KindUniqueItems:      "The items must be unique.",
	KindMinProperties:    "The size of the properties must be `>= %s`.",
	KindMaxProperties:    "The size of the properties must be `<= %s`.",
	KindEnumerate:        "The value must be in [%s].",
}

// DefaultMessage renders the built-in English message for a failure.
// Custom failures keep the message produced by their predicate.
func DefaultMessage(err ValidationError) string {
	if err.Kind == KindCustom {
		return err.Message
	}
	tmpl, ok := defaultTemplates[err.Kind]
	if !ok {
		return ErrValidationFailed.Error()
	}
	if err.Kind == KindUniqueItems {
		return tmpl
	}
	return fmt.Sprintf(tmpl, FormatParam(err.Param()))
}

// FormatParam renders a constraint parameter for use in a message.
// Enumerations are joined with ", ".
func FormatParam(param any) string {
	switch p := param.(type) {
	case nil:
		return ""
	case string:
		return p
	case []any:
		parts := make([]string, 0, len(p))
		for _, v := range p {
			parts = append(parts, fmt.Sprint(v))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(p)
	}
}
