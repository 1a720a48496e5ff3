package validator

import (
	"errors"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind identifies a constraint family.
type Kind string

const (
	KindMinimum          Kind = "minimum"
	KindMaximum          Kind = "maximum"
	KindExclusiveMinimum Kind = "exclusive_minimum"
	KindExclusiveMaximum Kind = "exclusive_maximum"
	KindMultipleOf       Kind = "multiple_of"
	KindMinLength        Kind = "min_length"
	KindMaxLength        Kind = "max_length"
	KindPattern          Kind = "pattern"
	KindMinItems         Kind = "min_items"
	KindMaxItems         Kind = "max_items"
	KindUniqueItems      Kind = "unique_items"
	KindMinProperties    Kind = "min_properties"
	KindMaxProperties    Kind = "max_properties"
	KindEnumerate        Kind = "enumerate"
	KindCustom           Kind = "custom"
)

// Kinds lists every constraint kind in catalogue order.
func Kinds() []Kind {
	return []Kind{
		KindMinimum, KindMaximum, KindExclusiveMinimum, KindExclusiveMaximum, KindMultipleOf,
		KindMinLength, KindMaxLength, KindPattern,
		KindMinItems, KindMaxItems, KindUniqueItems,
		KindMinProperties, KindMaxProperties,
		KindEnumerate, KindCustom,
	}
}

// TranslationKey returns the message catalogue key for kind.
func (k Kind) TranslationKey() string {
	return "validation." + string(k)
}

// ValidationError represents a single constraint failure with translation support.
type ValidationError struct {
	Kind           Kind
	Params         map[string]any
	Message        string
	TranslationKey string
}

func (e ValidationError) Error() string {
	return e.Message
}

// Param returns the constraint parameter stored under the kind's own name.
func (e ValidationError) Param() any {
	return e.Params[string(e.Kind)]
}

// NewCustomError builds a custom failure carrying message verbatim.
func NewCustomError(message string) ValidationError {
	return ValidationError{
		Kind:           KindCustom,
		Params:         map[string]any{string(KindCustom): message},
		Message:        message,
		TranslationKey: KindCustom.TranslationKey(),
	}
}

// ValidationErrors is the ordered list of failures attached to one tree node.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(ve.Messages(), "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Messages returns the failure messages in order. The result is never nil.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

func (ve ValidationErrors) Has(kind Kind) bool {
	for _, err := range ve {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// IsValidationError reports whether err carries validation failures,
// either as a tree, a failure list or a single failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var tree *Errors
	if errors.As(err, &tree) {
		return true
	}
	var list ValidationErrors
	if errors.As(err, &list) {
		return true
	}
	var single ValidationError
	return errors.As(err, &single)
}
