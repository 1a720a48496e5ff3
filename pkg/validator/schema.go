package validator

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/valid/pkg/logger"
)

// Schema validates values of type T. Schemas are immutable and safe for
// concurrent use.
type Schema[T any] interface {
	// Validate returns nil when v is valid and an *Errors otherwise.
	Validate(v T, opts ...Option) error
	check(v T, o *options) *Errors
}

func run[T any](s Schema[T], v T, opts []Option) error {
	o := newOptions(opts)
	tree := s.check(v, o)
	if tree.IsEmpty() {
		return nil
	}
	o.logger.DebugContext(o.ctx, "validation failed",
		logger.Shape(tree.Shape().String()),
		logger.Failures(tree.Count()),
	)
	return tree
}

// AggregateSchema validates a composite value field by field.
type AggregateSchema[T any] struct {
	shape   Shape
	fields  []FieldSpec[T]
	rename  map[string]string
	customs []CustomRule[T]
	order   map[string]int
}

// Struct declares a schema reporting failures per field name.
func Struct[T any](fields ...FieldSpec[T]) *AggregateSchema[T] {
	return newAggregate(ShapeNamed, fields)
}

// Tuple declares a schema reporting failures per field position.
func Tuple[T any](fields ...FieldSpec[T]) *AggregateSchema[T] {
	return newAggregate(ShapeIndexed, fields)
}

// NewType declares a schema for a single-field wrapper. Failures of the
// field are reported directly on the wrapper.
func NewType[T any](f FieldSpec[T]) *AggregateSchema[T] {
	return newAggregate(ShapeFlat, []FieldSpec[T]{f})
}

func newAggregate[T any](shape Shape, fields []FieldSpec[T]) *AggregateSchema[T] {
	for _, f := range fields {
		if f == nil {
			panic(ErrNilSchema)
		}
	}
	s := &AggregateSchema[T]{shape: shape, fields: slices.Clone(fields)}
	s.index()
	return s
}

func (s *AggregateSchema[T]) index() {
	s.order = make(map[string]int, len(s.fields))
	for i, f := range s.fields {
		if _, ok := s.order[s.key(f.Name())]; !ok {
			s.order[s.key(f.Name())] = i
		}
	}
}

func (s *AggregateSchema[T]) clone() *AggregateSchema[T] {
	c := *s
	c.fields = slices.Clone(s.fields)
	c.customs = slices.Clone(s.customs)
	c.rename = maps.Clone(s.rename)
	return &c
}

// Shape returns the shape of trees produced by the schema.
func (s *AggregateSchema[T]) Shape() Shape {
	return s.shape
}

// Rename maps field names to the external keys used in named trees.
func (s *AggregateSchema[T]) Rename(names map[string]string) *AggregateSchema[T] {
	c := s.clone()
	c.rename = maps.Clone(names)
	c.index()
	return c
}

// Custom appends aggregate-level rules, evaluated after every field.
func (s *AggregateSchema[T]) Custom(rules ...CustomRule[T]) *AggregateSchema[T] {
	c := s.clone()
	c.customs = append(c.customs, rules...)
	return c
}

func (s *AggregateSchema[T]) Validate(v T, opts ...Option) error {
	return run[T](s, v, opts)
}

func (s *AggregateSchema[T]) key(name string) string {
	if renamed, ok := s.rename[name]; ok {
		return renamed
	}
	return name
}

func (s *AggregateSchema[T]) check(v T, o *options) *Errors {
	tree := newErrors(s.shape)
	for i, f := range s.fields {
		sub := f.check(v, o)
		if sub.IsEmpty() {
			continue
		}
		switch s.shape {
		case ShapeNamed:
			tree.setProperty(s.key(f.Name()), sub)
		case ShapeIndexed:
			tree.setItem(i, sub)
		default:
			tree.merge(sub)
		}
	}

	for _, rule := range s.customs {
		s.applyCustom(rule, v, tree, o)
	}

	if tree.IsEmpty() {
		return nil
	}
	if tree.shape == ShapeNamed && s.shape == ShapeNamed {
		tree.reorder(s.order)
	}
	return tree
}

func (s *AggregateSchema[T]) applyCustom(rule CustomRule[T], v T, tree *Errors, o *options) {
	failures := rule.evaluate(v, o.messages)
	if len(failures) == 0 {
		return
	}

	switch {
	case rule.target == targetKey && s.shape == ShapeNamed:
		key := s.key(rule.key)
		if _, ok := s.order[key]; !ok {
			o.logger.WarnContext(o.ctx, "custom rule targets undeclared field", logger.Path(key))
		}
		tree.setProperty(key, &Errors{shape: ShapeFlat, errs: failures})
	case rule.target == targetIndex && s.shape == ShapeIndexed && rule.index >= 0:
		if rule.index >= len(s.fields) {
			o.logger.WarnContext(o.ctx, "custom rule targets undeclared position", logger.Index(rule.index))
		}
		tree.setItem(rule.index, &Errors{shape: ShapeFlat, errs: failures})
	default:
		if rule.target != targetAggregate && s.shape != ShapeFlat {
			o.logger.WarnContext(o.ctx, "custom rule target does not match schema shape",
				logger.Shape(s.shape.String()))
		}
		tree.add(failures...)
	}
}
