package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"iter"
	"maps"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Shape is the fixed structure of an error tree node.
type Shape uint8

const (
	// ShapeFlat holds failures only.
	ShapeFlat Shape = iota
	// ShapeNamed holds failures plus child trees keyed by field name.
	ShapeNamed
	// ShapeIndexed holds failures plus child trees keyed by position.
	ShapeIndexed
)

func (s Shape) String() string {
	switch s {
	case ShapeNamed:
		return "named"
	case ShapeIndexed:
		return "indexed"
	default:
		return "flat"
	}
}

// Errors is the error tree produced by a failed validation.
// Its shape mirrors the validated value; a tree returned to callers always
// holds at least one failure somewhere below it.
type Errors struct {
	shape Shape
	errs  ValidationErrors
	names []string
	props map[string]*Errors
	items map[int]*Errors
}

func newErrors(shape Shape) *Errors {
	return &Errors{shape: shape}
}

// AsErrors extracts the error tree from err.
func AsErrors(err error) (*Errors, bool) {
	var tree *Errors
	if errors.As(err, &tree) && tree != nil {
		return tree, true
	}
	return nil, false
}

func (e *Errors) Shape() Shape {
	if e == nil {
		return ShapeFlat
	}
	return e.shape
}

// Errors returns the failures attached directly to this node.
func (e *Errors) Errors() ValidationErrors {
	if e == nil {
		return nil
	}
	return slices.Clone(e.errs)
}

// Messages returns the messages of the failures attached directly to this node.
func (e *Errors) Messages() []string {
	if e == nil {
		return []string{}
	}
	return e.errs.Messages()
}

// Property returns the child tree for name, or nil.
func (e *Errors) Property(name string) *Errors {
	if e == nil {
		return nil
	}
	return e.props[name]
}

// PropertyNames returns the child keys of a named tree in order.
func (e *Errors) PropertyNames() []string {
	if e == nil {
		return nil
	}
	return slices.Clone(e.names)
}

// Properties iterates child trees of a named tree in order.
func (e *Errors) Properties() iter.Seq2[string, *Errors] {
	return func(yield func(string, *Errors) bool) {
		if e == nil {
			return
		}
		for _, name := range e.names {
			if !yield(name, e.props[name]) {
				return
			}
		}
	}
}

// Item returns the child tree at index, or nil.
func (e *Errors) Item(index int) *Errors {
	if e == nil {
		return nil
	}
	return e.items[index]
}

// ItemIndexes returns the child indexes of an indexed tree in ascending order.
func (e *Errors) ItemIndexes() []int {
	if e == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(e.items))
}

// Items iterates child trees of an indexed tree in ascending index order.
func (e *Errors) Items() iter.Seq2[int, *Errors] {
	return func(yield func(int, *Errors) bool) {
		for _, i := range e.ItemIndexes() {
			if !yield(i, e.items[i]) {
				return
			}
		}
	}
}

// Count returns the number of failures in the whole tree.
func (e *Errors) Count() int {
	if e == nil {
		return 0
	}
	n := len(e.errs)
	for _, child := range e.props {
		n += child.Count()
	}
	for _, child := range e.items {
		n += child.Count()
	}
	return n
}

// IsEmpty reports whether the tree holds no failure at any depth.
func (e *Errors) IsEmpty() bool {
	return e.Count() == 0
}

// Error returns the canonical JSON form of the tree.
func (e *Errors) Error() string {
	data, err := e.MarshalJSON()
	if err != nil {
		return ErrValidationFailed.Error()
	}
	return string(data)
}

// Is makes every tree match ErrValidationFailed.
func (e *Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *Errors) add(failures ...ValidationError) {
	e.errs = append(e.errs, failures...)
}

// setProperty attaches child under name, merging with an existing entry.
func (e *Errors) setProperty(name string, child *Errors) {
	if child.IsEmpty() {
		return
	}
	if e.props == nil {
		e.props = make(map[string]*Errors)
	}
	if existing, ok := e.props[name]; ok {
		existing.merge(child)
		return
	}
	e.names = append(e.names, name)
	e.props[name] = child
}

// setItem attaches child at index, merging with an existing entry.
func (e *Errors) setItem(index int, child *Errors) {
	if child.IsEmpty() {
		return
	}
	if e.items == nil {
		e.items = make(map[int]*Errors)
	}
	if existing, ok := e.items[index]; ok {
		existing.merge(child)
		return
	}
	e.items[index] = child
}

// clone returns a deep copy of e that shares no slices or maps with it.
func (e *Errors) clone() *Errors {
	if e == nil {
		return nil
	}
	c := &Errors{
		shape: e.shape,
		errs:  slices.Clone(e.errs),
		names: slices.Clone(e.names),
	}
	if e.props != nil {
		c.props = make(map[string]*Errors, len(e.props))
		for name, child := range e.props {
			c.props[name] = child.clone()
		}
	}
	if e.items != nil {
		c.items = make(map[int]*Errors, len(e.items))
		for index, child := range e.items {
			c.items[index] = child.clone()
		}
	}
	return c
}

// merge folds other into e. A flat node takes the shape of a structured one.
func (e *Errors) merge(other *Errors) {
	if other == nil {
		return
	}
	if e.shape == ShapeFlat && other.shape != ShapeFlat {
		e.shape = other.shape
	}
	e.errs = append(e.errs, other.errs...)
	for _, name := range other.names {
		e.setProperty(name, other.props[name])
	}
	for index, child := range other.items {
		e.setItem(index, child)
	}
}

// reorder sorts named children by their position in declared; unknown names
// keep their relative order after the declared ones.
func (e *Errors) reorder(declared map[string]int) {
	rank := func(name string) int {
		if i, ok := declared[name]; ok {
			return i
		}
		return len(declared)
	}
	slices.SortStableFunc(e.names, func(a, b string) int {
		return rank(a) - rank(b)
	})
}

// combine joins the direct failures of a field with the tree of its nested
// value. Direct failures come first in the resulting node's errors.
func combine(direct ValidationErrors, nested *Errors) *Errors {
	if nested.IsEmpty() {
		if len(direct) == 0 {
			return nil
		}
		return &Errors{shape: ShapeFlat, errs: direct}
	}
	if len(direct) > 0 {
		nested.errs = append(slices.Clone(direct), nested.errs...)
	}
	return nested
}

// MarshalJSON writes the canonical form: "errors" always, plus "properties"
// or "items" when the node has children.
func (e *Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Errors) writeJSON(buf *bytes.Buffer) error {
	if e == nil {
		buf.WriteString(`{"errors":[]}`)
		return nil
	}
	buf.WriteString(`{"errors":`)
	if err := writeJSONValue(buf, e.Messages()); err != nil {
		return err
	}

	switch {
	case e.shape == ShapeNamed && len(e.names) > 0:
		buf.WriteString(`,"properties":{`)
		for i, name := range e.names {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := e.props[name].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case e.shape == ShapeIndexed && len(e.items) > 0:
		buf.WriteString(`,"items":{`)
		for i, index := range e.ItemIndexes() {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Quote(strconv.Itoa(index)))
			buf.WriteByte(':')
			if err := e.items[index].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}

	buf.WriteByte('}')
	return nil
}

// writeJSONValue encodes v without HTML escaping so that messages such as
// "`<= 4`" stay readable.
func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// MarshalYAML renders the tree with the same keys and ordering as the canonical JSON form.
func (e *Errors) MarshalYAML() (any, error) {
	return e.yamlNode(), nil
}

func (e *Errors) yamlNode() *yaml.Node {
	messages := &yaml.Node{Kind: yaml.SequenceNode}
	for _, msg := range e.Messages() {
		messages.Content = append(messages.Content, yamlString(msg))
	}
	if len(messages.Content) == 0 {
		messages.Style = yaml.FlowStyle
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content, yamlString("errors"), messages)
	if e == nil {
		return node
	}

	switch {
	case e.shape == ShapeNamed && len(e.names) > 0:
		props := &yaml.Node{Kind: yaml.MappingNode}
		for _, name := range e.names {
			props.Content = append(props.Content, yamlString(name), e.props[name].yamlNode())
		}
		node.Content = append(node.Content, yamlString("properties"), props)
	case e.shape == ShapeIndexed && len(e.items) > 0:
		items := &yaml.Node{Kind: yaml.MappingNode}
		for _, index := range e.ItemIndexes() {
			items.Content = append(items.Content, yamlString(strconv.Itoa(index)), e.items[index].yamlNode())
		}
		node.Content = append(node.Content, yamlString("items"), items)
	}
	return node
}

func yamlString(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
