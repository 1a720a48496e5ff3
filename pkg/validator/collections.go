package validator

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/dmitrymomot/valid/pkg/async"
	"github.com/dmitrymomot/valid/pkg/logger"
)

type valueSchema[V any] struct {
	rules []Rule[V]
}

// Value declares a leaf schema: every rule is checked and failures are
// reported on a flat tree. A value implementing Validatable is validated by
// itself after the rules.
func Value[V any](rules ...Rule[V]) Schema[V] {
	return &valueSchema[V]{rules: slices.Clone(rules)}
}

func (s *valueSchema[V]) Validate(v V, opts ...Option) error {
	return run[V](s, v, opts)
}

func (s *valueSchema[V]) check(v V, o *options) *Errors {
	var failures ValidationErrors
	for _, rule := range s.rules {
		failures = append(failures, rule.Evaluate(v, o.messages)...)
	}
	return combine(failures, selfCheck(v, o))
}

type optionalSchema[V any] struct {
	inner Schema[V]
}

// Optional validates the pointed-to value with inner; nil is always valid.
func Optional[V any](inner Schema[V]) Schema[*V] {
	if inner == nil {
		panic(ErrNilSchema)
	}
	return &optionalSchema[V]{inner: inner}
}

func (s *optionalSchema[V]) Validate(v *V, opts ...Option) error {
	return run[*V](s, v, opts)
}

func (s *optionalSchema[V]) check(v *V, o *options) *Errors {
	if v == nil {
		return nil
	}
	return s.inner.check(*v, o)
}

type sliceSchema[E any] struct {
	elem Schema[E]
}

// Slice validates every element with elem and reports failures per position.
// Fixed-size arrays are validated by passing a[:].
func Slice[E any](elem Schema[E]) Schema[[]E] {
	if elem == nil {
		panic(ErrNilSchema)
	}
	return &sliceSchema[E]{elem: elem}
}

func (s *sliceSchema[E]) Validate(v []E, opts ...Option) error {
	return run[[]E](s, v, opts)
}

func (s *sliceSchema[E]) check(items []E, o *options) *Errors {
	tree := newErrors(ShapeIndexed)
	for i, sub := range checkEach(items, s.elem, o) {
		tree.setItem(i, sub)
	}
	if tree.IsEmpty() {
		return nil
	}
	return tree
}

type mapSchema[K comparable, V any] struct {
	elem Schema[V]
}

// Map validates every value with elem and reports failures under the key
// formatted with fmt.Sprint. Keys are visited in sorted order. Distinct keys
// with the same text, such as 1 and "1" in a map[any]V, share one entry;
// the collision is logged as a warning.
func Map[K comparable, V any](elem Schema[V]) Schema[map[K]V] {
	if elem == nil {
		panic(ErrNilSchema)
	}
	return &mapSchema[K, V]{elem: elem}
}

func (s *mapSchema[K, V]) Validate(v map[K]V, opts ...Option) error {
	return run[map[K]V](s, v, opts)
}

func (s *mapSchema[K, V]) check(m map[K]V, o *options) *Errors {
	type entry struct {
		name  string
		value V
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{name: fmt.Sprint(k), value: v})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.name, b.name)
	})
	for i := 1; i < len(entries); i++ {
		if entries[i].name == entries[i-1].name {
			o.logger.WarnContext(o.ctx, "map keys share a name",
				logger.Path(entries[i].name),
			)
		}
	}

	values := make([]V, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}

	tree := newErrors(ShapeNamed)
	for i, sub := range checkEach(values, s.elem, o) {
		tree.setProperty(entries[i].name, sub)
	}
	if tree.IsEmpty() {
		return nil
	}
	return tree
}

type selfSchema[V Validatable] struct{}

// Self delegates to the value's own Validate method.
func Self[V Validatable]() Schema[V] {
	return selfSchema[V]{}
}

func (s selfSchema[V]) Validate(v V, opts ...Option) error {
	return run[V](s, v, opts)
}

func (s selfSchema[V]) check(v V, o *options) *Errors {
	return selfCheck(v, o)
}

// checkEach validates items in order, concurrently when the run allows it.
// Every element gets its own tree; results are indexed like items.
func checkEach[E any](items []E, elem Schema[E], o *options) []*Errors {
	if !o.parallel(len(items)) {
		results := make([]*Errors, len(items))
		for i, item := range items {
			results[i] = elem.check(item, o)
		}
		return results
	}

	ctx := context.WithoutCancel(o.ctx)
	results, _ := async.Batch(ctx, items, o.workers, func(_ context.Context, item E) (*Errors, error) {
		return elem.check(item, o), nil
	})
	return results
}
