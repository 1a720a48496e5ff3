// Package validator provides a shape-aware validation engine for in-memory
// values: numeric ranges, string and collection lengths, patterns,
// uniqueness, enumerations, map sizes, custom predicates and cross-field
// rules, reported as an error tree that mirrors the validated value.
//
// Validation always collects every failure. A run never stops at the first
// failed rule or skips sibling fields: either the value is valid and
// Validate returns nil, or it returns an *Errors tree holding at least one
// failure.
//
// # Architecture
//
// Constraint families live in their own files (`numeric_rules.go`,
// `string_rules.go`, `collection_rules.go`, `pattern_rules.go`,
// `choice_rules.go`). Each constructor returns an immutable Rule value bound
// to its parameters.
//
// Rules are attached to values through schemas:
//   - Struct, Tuple, NewType - aggregates reported as named, indexed or flat trees
//   - Field, NestedField, OptionalField, Element - members of an aggregate
//   - Value, Optional, Slice, Map, Self - leaf and container schemas
//   - Custom, CustomAt, CustomAtIndex - cross-field rules run after the fields
//
// Schemas are built once and are safe for concurrent use.
//
// A member whose type implements Validatable or ValidatableWith is also
// validated by itself. ValidateWith receives the options of the enclosing
// run, so nested failures use the same message strategy and logger.
//
// # Usage
//
//	type Signup struct {
//	    Name string
//	    Age  int
//	    Tags []string
//	}
//
//	var signupSchema = validator.Struct(
//	    validator.Field("name", func(s Signup) string { return s.Name },
//	        validator.MinLength(1), validator.MaxLength(64)),
//	    validator.Field("age", func(s Signup) int { return s.Age },
//	        validator.Minimum(18)),
//	    validator.NestedField("tags", func(s Signup) []string { return s.Tags },
//	        validator.Slice(validator.Value(validator.MaxLength(16))),
//	        validator.UniqueItems[string]()),
//	)
//
//	if err := signupSchema.Validate(signup); err != nil {
//	    tree, _ := validator.AsErrors(err)
//	    fmt.Println(tree) // {"errors":[],"properties":{"age":{"errors":["The number must be `>= 18`."]}}}
//	}
//
// # Error Handling
//
// *Errors implements error; its Error method returns the canonical JSON form.
// errors.Is(err, ErrValidationFailed) holds for every tree and AsErrors
// extracts it. Flatten lists failures with JSON Pointer paths and
// MarshalYAML renders the same structure as YAML.
//
// Declaration mistakes such as a zero multiple_of divisor or an invalid
// pattern are reported by panicking with the matching sentinel error from
// the constructor, the same way regexp.MustCompile does.
//
// # Messages
//
// Each failure message is resolved in order from a literal set with
// Rule.WithMessage, a function set with Rule.WithMessageFunc, and finally
// the run's MessageFunc (DefaultMessage unless WithMessages is given).
package validator
