package validator

import (
	"reflect"
	"slices"
)

// FieldSpec is one declared member of an aggregate schema.
type FieldSpec[T any] interface {
	Name() string
	check(v T, o *options) *Errors
}

type field[T, V any] struct {
	name   string
	get    func(T) V
	rules  []Rule[V]
	schema Schema[V]
}

// Field declares a leaf member read by get and checked against rules.
// If the value implements Validatable its own Validate is run as well.
func Field[T, V any](name string, get func(T) V, rules ...Rule[V]) FieldSpec[T] {
	if get == nil {
		panic(ErrNilFunc)
	}
	return &field[T, V]{name: name, get: get, rules: slices.Clone(rules)}
}

// NestedField declares a member whose value is validated by schema after
// its own rules. Failures of rules land in the nested tree's errors first.
func NestedField[T, V any](name string, get func(T) V, schema Schema[V], rules ...Rule[V]) FieldSpec[T] {
	if get == nil {
		panic(ErrNilFunc)
	}
	if schema == nil {
		panic(ErrNilSchema)
	}
	return &field[T, V]{name: name, get: get, rules: slices.Clone(rules), schema: schema}
}

// OptionalField declares a member that may be absent. A nil pointer skips
// every rule; otherwise rules apply to the pointed-to value, which is also
// validated by itself when it implements Validatable.
func OptionalField[T, V any](name string, get func(T) *V, rules ...Rule[V]) FieldSpec[T] {
	return NestedField(name, get, Optional(Value(rules...)))
}

// Element declares a positional member of a tuple schema.
func Element[T, V any](get func(T) V, rules ...Rule[V]) FieldSpec[T] {
	return Field("", get, rules...)
}

func (f *field[T, V]) Name() string {
	return f.name
}

func (f *field[T, V]) check(v T, o *options) *Errors {
	value := f.get(v)

	var direct ValidationErrors
	for _, rule := range f.rules {
		direct = append(direct, rule.Evaluate(value, o.messages)...)
	}

	var nested *Errors
	if f.schema != nil {
		nested = f.schema.check(value, o)
	} else {
		nested = selfCheck(value, o)
	}
	return combine(direct, nested)
}

// Validatable is implemented by values that validate themselves.
// Messages in the returned tree are kept as rendered by Validate; implement
// ValidatableWith to render them with the enclosing run's strategy.
type Validatable interface {
	Validate() error
}

// ValidatableWith is implemented by values that validate themselves with the
// options of the enclosing run. It takes precedence over Validatable.
type ValidatableWith interface {
	ValidateWith(opts ...Option) error
}

// selfCheck runs ValidateWith or Validate on values that implement them. An
// error tree is copied into the result; any other error becomes custom
// failures.
func selfCheck(value any, o *options) *Errors {
	if isNil(value) {
		return nil
	}

	var err error
	switch v := value.(type) {
	case ValidatableWith:
		err = v.ValidateWith(o.inherit())
	case Validatable:
		err = v.Validate()
	default:
		return nil
	}
	if err == nil {
		return nil
	}
	if tree, ok := AsErrors(err); ok {
		if tree.IsEmpty() {
			return nil
		}
		return tree.clone()
	}

	failures := failuresFromError(err)
	for i := range failures {
		failures[i].Message = resolveMessage(failures[i], o.messages)
	}
	return combine(failures, nil)
}

func isNil(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
