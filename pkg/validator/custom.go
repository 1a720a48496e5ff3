package validator

type customTarget uint8

const (
	targetAggregate customTarget = iota
	targetKey
	targetIndex
)

// CustomRule is a predicate over a whole aggregate, used for cross-field checks.
type CustomRule[T any] struct {
	target  customTarget
	key     string
	index   int
	fn      func(T) error
	message string
}

// Custom reports failures of fn at the aggregate level.
// A nil error passes; a ValidationError is used as is; joined errors
// produce one failure each; any other error becomes a custom failure.
func Custom[T any](fn func(T) error) CustomRule[T] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return CustomRule[T]{target: targetAggregate, fn: fn}
}

// CustomAt reports failures of fn under the field named key of a named
// aggregate. Other shapes report them at the aggregate level.
func CustomAt[T any](key string, fn func(T) error) CustomRule[T] {
	rule := Custom(fn)
	rule.target = targetKey
	rule.key = key
	return rule
}

// CustomAtIndex reports failures of fn under position index of a tuple
// aggregate. Other shapes report them at the aggregate level.
func CustomAtIndex[T any](index int, fn func(T) error) CustomRule[T] {
	rule := Custom(fn)
	rule.target = targetIndex
	rule.index = index
	return rule
}

// WithMessage replaces the message of every failure produced by the rule.
func (c CustomRule[T]) WithMessage(message string) CustomRule[T] {
	c.message = message
	return c
}

func (c CustomRule[T]) evaluate(v T, messages MessageFunc) ValidationErrors {
	failures := failuresFromError(c.fn(v))
	for i := range failures {
		if c.message != "" {
			failures[i].Message = c.message
			continue
		}
		failures[i].Message = resolveMessage(failures[i], messages)
	}
	return failures
}
