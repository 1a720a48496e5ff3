package validator

import (
	"strconv"
	"strings"
)

// FlatError is one failure together with the JSON Pointer (RFC 6901) of the
// value it belongs to. The root value has the empty path.
type FlatError struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Flatten lists every failure of the tree depth first: a node's own failures
// precede its children, children follow declaration or index order.
func (e *Errors) Flatten() []FlatError {
	var out []FlatError
	e.flatten("", &out)
	return out
}

func (e *Errors) flatten(path string, out *[]FlatError) {
	if e == nil {
		return
	}
	for _, failure := range e.errs {
		*out = append(*out, FlatError{Path: path, Message: failure.Message})
	}
	for name, child := range e.Properties() {
		child.flatten(path+"/"+pointerEscaper.Replace(name), out)
	}
	for index, child := range e.Items() {
		child.flatten(path+"/"+strconv.Itoa(index), out)
	}
}
