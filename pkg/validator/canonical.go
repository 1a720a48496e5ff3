package validator

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
)

// canonicalTree is the wire shape written by Errors.MarshalJSON.
type canonicalTree struct {
	Errors     []string                  `json:"errors" jsonschema:"description=Messages of failures attached to this node"`
	Properties map[string]*canonicalTree `json:"properties,omitempty" jsonschema:"description=Child trees keyed by field name"`
	Items      map[string]*canonicalTree `json:"items,omitempty" jsonschema:"description=Child trees keyed by decimal position"`
}

var canonicalSchema = sync.OnceValues(func() ([]byte, error) {
	r := &jsonschema.Reflector{Anonymous: true}
	s := r.Reflect(&canonicalTree{})
	s.Title = "Validation error tree"

	if def, ok := s.Definitions["canonicalTree"]; ok {
		// properties and items are mutually exclusive
		def.Not = &jsonschema.Schema{Required: []string{"properties", "items"}}
		if items, ok := def.Properties.Get("items"); ok {
			items.PropertyNames = &jsonschema.Schema{Pattern: "^(0|[1-9][0-9]*)$"}
		}
	}
	return json.Marshal(s)
})

// CanonicalSchema returns the JSON Schema (draft 2020-12) of the canonical
// error tree form.
func CanonicalSchema() ([]byte, error) {
	return canonicalSchema()
}
