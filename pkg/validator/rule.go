package validator

import "errors"

// errCheckFailed marks a built-in predicate failure; the message comes from the rule.
var errCheckFailed = errors.New("check failed")

// Rule is a single constraint bound to its parameters.
// Rules are immutable; the With* methods return modified copies.
type Rule[V any] struct {
	kind      Kind
	params    map[string]any
	test      func(V) error
	message   string
	messageFn MessageFunc
}

func newRule[V any](kind Kind, param any, ok func(V) bool) Rule[V] {
	return Rule[V]{
		kind:   kind,
		params: map[string]any{string(kind): param},
		test: func(v V) error {
			if ok(v) {
				return nil
			}
			return errCheckFailed
		},
	}
}

// Kind returns the constraint kind.
func (r Rule[V]) Kind() Kind {
	return r.kind
}

// Params returns a copy of the constraint parameters.
func (r Rule[V]) Params() map[string]any {
	params := make(map[string]any, len(r.params))
	for k, v := range r.params {
		params[k] = v
	}
	return params
}

// WithMessage replaces the rendered message with a literal.
func (r Rule[V]) WithMessage(message string) Rule[V] {
	r.message = message
	return r
}

// WithMessageFunc renders the message from the failure payload.
// A literal set with WithMessage takes precedence.
func (r Rule[V]) WithMessageFunc(fn MessageFunc) Rule[V] {
	r.messageFn = fn
	return r
}

// Evaluate checks v and returns the resolved failures, or nil when v passes.
// A nil messages func falls back to DefaultMessage.
func (r Rule[V]) Evaluate(v V, messages MessageFunc) ValidationErrors {
	if r.test == nil {
		return nil
	}
	err := r.test(v)
	if err == nil {
		return nil
	}
	if messages == nil {
		messages = DefaultMessage
	}

	var failures ValidationErrors
	if errors.Is(err, errCheckFailed) {
		failures = ValidationErrors{{
			Kind:           r.kind,
			Params:         r.params,
			TranslationKey: r.kind.TranslationKey(),
		}}
	} else {
		failures = failuresFromError(err)
	}

	for i := range failures {
		failures[i].Message = r.resolve(failures[i], messages)
	}
	return failures
}

func (r Rule[V]) resolve(failure ValidationError, messages MessageFunc) string {
	switch {
	case r.message != "":
		return r.message
	case r.messageFn != nil:
		return r.messageFn(failure)
	default:
		return resolveMessage(failure, messages)
	}
}

// resolveMessage applies the evaluation-level message strategy. Failures
// returned verbatim by a predicate keep their message; custom failures are
// passed through the strategy, which by default keeps the predicate message.
func resolveMessage(failure ValidationError, messages MessageFunc) string {
	if failure.Message != "" && failure.Kind != KindCustom {
		return failure.Message
	}
	return messages(failure)
}

// Func wraps a predicate as a custom rule. A nil error passes; a
// ValidationError is used as is; joined errors yield one failure each.
func Func[V any](fn func(V) error) Rule[V] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return Rule[V]{
		kind:   KindCustom,
		params: map[string]any{},
		test:   fn,
	}
}

// failuresFromError converts the error returned by a custom predicate into failures.
func failuresFromError(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var failures ValidationErrors
		for _, e := range joined.Unwrap() {
			failures = append(failures, failuresFromError(e)...)
		}
		return failures
	}

	var tree *Errors
	if errors.As(err, &tree) {
		var failures ValidationErrors
		for _, flat := range tree.Flatten() {
			failures = append(failures, NewCustomError(flat.Message))
		}
		return failures
	}

	var failure ValidationError
	if errors.As(err, &failure) {
		if failure.TranslationKey == "" {
			failure.TranslationKey = failure.Kind.TranslationKey()
		}
		return ValidationErrors{failure}
	}

	return ValidationErrors{NewCustomError(err.Error())}
}
