package validator_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valid/pkg/validator"
)

type address struct {
	City string
	Zip  string
}

type user struct {
	Name     string
	Age      int
	Tags     []string
	Address  address
	Nickname *string
	Scores   map[string]int
}

var addressSchema = validator.Struct(
	validator.Field("city", func(a address) string { return a.City }, validator.MinLength(1)),
	validator.Field("zip", func(a address) string { return a.Zip }, validator.MustPattern(`^[0-9]{5}$`)),
)

var userSchema = validator.Struct(
	validator.Field("name", func(u user) string { return u.Name }, validator.MinLength(2), validator.MaxLength(10)),
	validator.Field("age", func(u user) int { return u.Age }, validator.Range(0, 150)...),
	validator.NestedField("tags", func(u user) []string { return u.Tags },
		validator.Slice(validator.Value(validator.MinLength(1))),
		validator.MaxItems[string](3),
	),
	validator.NestedField("address", func(u user) address { return u.Address }, addressSchema),
	validator.OptionalField("nickname", func(u user) *string { return u.Nickname }, validator.MinLength(3)),
	validator.NestedField("scores", func(u user) map[string]int { return u.Scores },
		validator.Map[string](validator.Value(validator.Maximum(100))),
	),
)

func validUser() user {
	return user{
		Name:    "Alice",
		Age:     30,
		Tags:    []string{"admin"},
		Address: address{City: "Berlin", Zip: "10115"},
		Scores:  map[string]int{"go": 90},
	}
}

func ptr[V any](v V) *V {
	return &v
}

func TestStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid value", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, userSchema.Validate(validUser()))
	})

	t.Run("failures follow declaration order", func(t *testing.T) {
		t.Parallel()
		u := validUser()
		u.Scores["rust"] = 101
		u.Age = -1
		u.Name = "A"
		u.Address.Zip = "1"

		tree := mustTree(t, userSchema.Validate(u))
		assert.Equal(t, []string{"name", "age", "address", "scores"}, tree.PropertyNames())
		assert.Equal(t, []string{"The length of the value must be `>= 2`."}, tree.Property("name").Messages())
		assert.Equal(t, []string{"The number must be `>= 0`."}, tree.Property("age").Messages())
		assert.Equal(t, []string{"zip"}, tree.Property("address").PropertyNames())
		assert.Equal(t, []string{"rust"}, tree.Property("scores").PropertyNames())
		assert.Equal(t, 4, tree.Count())
	})

	t.Run("every failing rule is reported", func(t *testing.T) {
		t.Parallel()
		schema := validator.Struct(
			validator.Field("n", func(n int) int { return n }, validator.Maximum(4), validator.MultipleOf(2)),
		)
		tree := mustTree(t, schema.Validate(7))
		assert.Equal(t, []string{
			"The number must be `<= 4`.",
			"The value must be multiple of `2`.",
		}, tree.Property("n").Messages())
	})

	t.Run("direct failures precede nested ones", func(t *testing.T) {
		t.Parallel()
		u := validUser()
		u.Tags = []string{"a", "", "b", ""}

		tree := mustTree(t, userSchema.Validate(u))
		tags := tree.Property("tags")
		require.NotNil(t, tags)
		assert.Equal(t, validator.ShapeIndexed, tags.Shape())
		assert.Equal(t, []string{"The length of the items must be `<= 3`."}, tags.Messages())
		assert.Equal(t, []int{1, 3}, tags.ItemIndexes())
		assert.Equal(t,
			"{\"errors\":[\"The length of the items must be `<= 3`.\"],\"items\":{"+
				"\"1\":{\"errors\":[\"The length of the value must be `>= 1`.\"]},"+
				"\"3\":{\"errors\":[\"The length of the value must be `>= 1`.\"]}}}",
			tags.Error())
	})

	t.Run("optional field", func(t *testing.T) {
		t.Parallel()
		u := validUser()
		assert.NoError(t, userSchema.Validate(u))

		u.Nickname = ptr("al")
		tree := mustTree(t, userSchema.Validate(u))
		assert.Equal(t, []string{"The length of the value must be `>= 3`."}, tree.Property("nickname").Messages())

		u.Nickname = ptr("ally")
		assert.NoError(t, userSchema.Validate(u))
	})

	t.Run("nil getter panics", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, validator.ErrNilFunc, func() {
			validator.Field[user, string]("name", nil)
		})
		assert.PanicsWithValue(t, validator.ErrNilSchema, func() {
			validator.NestedField[user, address]("address", func(u user) address { return u.Address }, nil)
		})
	})
}

func TestRename(t *testing.T) {
	t.Parallel()

	renamed := userSchema.Rename(map[string]string{"name": "full_name"})
	u := validUser()
	u.Name = ""

	tree := mustTree(t, renamed.Validate(u))
	assert.Equal(t, []string{"full_name"}, tree.PropertyNames())

	original := mustTree(t, userSchema.Validate(u))
	assert.Equal(t, []string{"name"}, original.PropertyNames())
}

func TestTuple(t *testing.T) {
	t.Parallel()

	t.Run("positions", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, pairSchema.Validate(pair{A: 1, B: 9}))
		assert.Equal(t, validator.ShapeIndexed, tree.Shape())
		assert.Equal(t, []int{1}, tree.ItemIndexes())
		assert.Empty(t, tree.PropertyNames())
	})

	t.Run("custom at index", func(t *testing.T) {
		t.Parallel()
		schema := pairSchema.Custom(
			validator.CustomAtIndex(1, func(p pair) error {
				if p.B <= p.A {
					return errors.New("B must exceed A.")
				}
				return nil
			}),
		)
		tree := mustTree(t, schema.Validate(pair{A: 2, B: 9}))
		assert.Equal(t, []string{"The number must be `<= 3`."}, tree.Item(1).Messages())

		tree = mustTree(t, schema.Validate(pair{A: 3, B: 3}))
		assert.Equal(t, []int{1}, tree.ItemIndexes())
		assert.Equal(t, []string{"B must exceed A."}, tree.Item(1).Messages())

		tree = mustTree(t, schema.Validate(pair{A: 3, B: 9}))
		assert.Equal(t, []string{"The number must be `<= 3`.", "B must exceed A."}, tree.Item(1).Messages())
	})

	t.Run("negative index reports on the aggregate", func(t *testing.T) {
		t.Parallel()
		schema := pairSchema.Custom(validator.CustomAtIndex(-1, func(pair) error { return errors.New("bad") }))
		tree := mustTree(t, schema.Validate(pair{}))
		assert.Equal(t, []string{"bad"}, tree.Messages())
		assert.Empty(t, tree.ItemIndexes())
	})
}

type email struct {
	value string
}

type location struct {
	addr address
}

func TestNewType(t *testing.T) {
	t.Parallel()

	t.Run("leaf wrapper reports flat", func(t *testing.T) {
		t.Parallel()
		schema := validator.NewType(
			validator.Field("", func(e email) string { return e.value }, validator.MinLength(3), validator.MustPattern("@")),
		)
		assert.NoError(t, schema.Validate(email{value: "a@b"}))

		tree := mustTree(t, schema.Validate(email{value: "ab"}))
		assert.Equal(t, validator.ShapeFlat, tree.Shape())
		assert.Equal(t,
			"{\"errors\":[\"The length of the value must be `>= 3`.\",\"The value must match the pattern of \\\"@\\\".\"]}",
			tree.Error())
	})

	t.Run("structured wrapper adopts nested shape", func(t *testing.T) {
		t.Parallel()
		schema := validator.NewType(
			validator.NestedField("", func(l location) address { return l.addr }, addressSchema),
		)
		tree := mustTree(t, schema.Validate(location{addr: address{City: "", Zip: "12345"}}))
		assert.Equal(t, validator.ShapeNamed, tree.Shape())
		assert.Equal(t, []string{"city"}, tree.PropertyNames())
	})
}

func TestCustomRules(t *testing.T) {
	t.Parallel()

	nicknameDiffers := func(u user) error {
		if u.Nickname != nil && *u.Nickname == u.Name {
			return errors.New("The nickname must differ from the name.")
		}
		return nil
	}

	t.Run("targeted failure merges into the field", func(t *testing.T) {
		t.Parallel()
		schema := userSchema.Custom(validator.CustomAt("nickname", nicknameDiffers))
		u := validUser()
		u.Nickname = ptr("Alice")

		tree := mustTree(t, schema.Validate(u))
		assert.Equal(t, []string{"nickname"}, tree.PropertyNames())
		assert.Equal(t, []string{"The nickname must differ from the name."}, tree.Property("nickname").Messages())
	})

	t.Run("targeted failure keeps declaration order", func(t *testing.T) {
		t.Parallel()
		schema := userSchema.Custom(validator.CustomAt("name", func(user) error { return errors.New("taken") }))
		u := validUser()
		u.Age = 200

		tree := mustTree(t, schema.Validate(u))
		assert.Equal(t, []string{"name", "age"}, tree.PropertyNames())
	})

	t.Run("undeclared target is reported last and logged", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		schema := userSchema.Custom(validator.CustomAt("ghost", func(user) error { return errors.New("boo") }))
		u := validUser()
		u.Name = ""

		tree := mustTree(t, schema.Validate(u, validator.WithLogger(log)))
		assert.Equal(t, []string{"name", "ghost"}, tree.PropertyNames())
		assert.Contains(t, buf.String(), "custom rule targets undeclared field")
		assert.Contains(t, buf.String(), "path=ghost")
		assert.Contains(t, buf.String(), "validation failed")
	})

	t.Run("renamed target", func(t *testing.T) {
		t.Parallel()
		schema := userSchema.
			Rename(map[string]string{"name": "full_name"}).
			Custom(validator.CustomAt("name", func(user) error { return errors.New("taken") }))

		tree := mustTree(t, schema.Validate(validUser()))
		assert.Equal(t, []string{"full_name"}, tree.PropertyNames())
	})

	t.Run("message override", func(t *testing.T) {
		t.Parallel()
		schema := userSchema.Custom(
			validator.Custom(func(user) error {
				return errors.Join(errors.New("one"), errors.New("two"))
			}).WithMessage("The user is invalid."),
		)
		tree := mustTree(t, schema.Validate(validUser()))
		assert.Equal(t, []string{"The user is invalid.", "The user is invalid."}, tree.Messages())
	})

	t.Run("custom rules run after fields", func(t *testing.T) {
		t.Parallel()
		var calls []string
		schema := validator.Struct(
			validator.Field("n", func(n int) int { calls = append(calls, "field"); return n }),
		).Custom(validator.Custom(func(int) error { calls = append(calls, "custom"); return nil }))

		assert.NoError(t, schema.Validate(1))
		assert.Equal(t, []string{"field", "custom"}, calls)
	})

	t.Run("schemas are not modified by Custom", func(t *testing.T) {
		t.Parallel()
		_ = userSchema.Custom(validator.Custom(func(user) error { return errors.New("x") }))
		assert.NoError(t, userSchema.Validate(validUser()))
	})

	t.Run("nil function panics", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, validator.ErrNilFunc, func() { validator.Custom[user](nil) })
	})
}

type code string

func (c code) Validate() error {
	if !strings.HasPrefix(string(c), "X-") {
		return errors.New("The code must start with X-.")
	}
	return nil
}

type coupon struct {
	Codes []code
}

func (c coupon) Validate() error {
	return validator.Struct(
		validator.NestedField("codes", func(c coupon) []code { return c.Codes },
			validator.Slice(validator.Self[code]()),
		),
	).Validate(c)
}

type order struct {
	Coupon *coupon
	Code   code
}

func TestValidatable(t *testing.T) {
	t.Parallel()

	maxCodeLength := validator.Func(func(c code) error {
		if len(c) > 5 {
			return errors.New("The code is too long.")
		}
		return nil
	})
	schema := validator.Struct(
		validator.Field("coupon", func(o order) *coupon { return o.Coupon }),
		validator.Field("code", func(o order) code { return o.Code }, maxCodeLength),
	)

	t.Run("nil values are skipped", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, schema.Validate(order{Code: "X-1"}))
	})

	t.Run("own rules and Validate combine", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, schema.Validate(order{Code: "ABCDEFG"}))
		assert.Equal(t, []string{
			"The code is too long.",
			"The code must start with X-.",
		}, tree.Property("code").Messages())
	})

	t.Run("nested trees are embedded", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, schema.Validate(order{
			Coupon: &coupon{Codes: []code{"X-1", "bad"}},
			Code:   "X-2",
		}))
		assert.Equal(t, []string{"coupon"}, tree.PropertyNames())
		assert.Equal(t,
			`{"errors":[],"properties":{"codes":{"errors":[],"items":{"1":{"errors":["The code must start with X-."]}}}}}`,
			tree.Property("coupon").Error())
	})

	t.Run("duplicate keys merge", func(t *testing.T) {
		t.Parallel()
		s := validator.Struct(
			validator.Field("code", func(o order) string { return string(o.Code) }, validator.MaxLength(5)),
			validator.NestedField("code", func(o order) code { return o.Code }, validator.Self[code]()),
		)
		tree := mustTree(t, s.Validate(order{Code: "ABCDEFG"}))
		assert.Equal(t, []string{"code"}, tree.PropertyNames())
		assert.Equal(t, []string{
			"The length of the value must be `<= 5`.",
			"The code must start with X-.",
		}, tree.Property("code").Messages())
	})
}

type gauge struct {
	Level int
}

var gaugeSchema = validator.Struct(
	validator.Field("level", func(g gauge) int { return g.Level }, validator.Maximum(4)),
)

func (g gauge) ValidateWith(opts ...validator.Option) error {
	return gaugeSchema.Validate(g, opts...)
}

type cached struct{}

var cachedTree = func() *validator.Errors {
	tree, _ := validator.AsErrors(gaugeSchema.Validate(gauge{Level: 9}))
	return tree
}()

func (cached) Validate() error {
	return cachedTree
}

func TestValidatableWith(t *testing.T) {
	t.Parallel()

	type panel struct {
		Level int
		Gauge gauge
	}
	schema := validator.Struct(
		validator.Field("level", func(p panel) int { return p.Level }, validator.Maximum(4)),
		validator.Field("gauge", func(p panel) gauge { return p.Gauge }),
	)
	upper := func(e validator.ValidationError) string {
		return strings.ToUpper(string(e.Kind))
	}

	t.Run("nested values use the run's messages", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, schema.Validate(panel{Level: 5, Gauge: gauge{Level: 5}}, validator.WithMessages(upper)))
		assert.Equal(t, []string{"MAXIMUM"}, tree.Property("level").Messages())
		assert.Equal(t, []string{"MAXIMUM"}, tree.Property("gauge").Property("level").Messages())
	})

	t.Run("default messages without options", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, schema.Validate(panel{Gauge: gauge{Level: 5}}))
		assert.Equal(t, []string{"The number must be `<= 4`."}, tree.Property("gauge").Property("level").Messages())
	})

	t.Run("nested values log with the run's logger", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		mustTree(t, schema.Validate(panel{Gauge: gauge{Level: 5}}, validator.WithLogger(log)))
		assert.Equal(t, 2, strings.Count(buf.String(), "validation failed"))
	})
}

func TestOptionalField_Validatable(t *testing.T) {
	t.Parallel()

	type holder struct {
		Gauge  *gauge
		Coupon *coupon
	}
	schema := validator.Struct(
		validator.OptionalField("gauge", func(h holder) *gauge { return h.Gauge }),
		validator.OptionalField("coupon", func(h holder) *coupon { return h.Coupon }),
	)

	t.Run("nil pointers are skipped", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, schema.Validate(holder{}))
	})

	t.Run("pointees validate themselves", func(t *testing.T) {
		t.Parallel()
		tree := mustTree(t, schema.Validate(holder{
			Gauge:  &gauge{Level: 7},
			Coupon: &coupon{Codes: []code{"bad"}},
		}))
		assert.Equal(t, []string{"gauge", "coupon"}, tree.PropertyNames())
		assert.Equal(t, []string{"The number must be `<= 4`."}, tree.Property("gauge").Property("level").Messages())
		assert.Equal(t, []string{"The code must start with X-."}, tree.Property("coupon").Property("codes").Item(0).Messages())
	})

	t.Run("valid pointees pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, schema.Validate(holder{Gauge: &gauge{Level: 1}, Coupon: &coupon{Codes: []code{"X-1"}}}))
	})

	t.Run("optional value schema", func(t *testing.T) {
		t.Parallel()
		s := validator.Optional(validator.Value[gauge]())
		assert.NoError(t, s.Validate(nil))
		tree := mustTree(t, s.Validate(&gauge{Level: 8}))
		assert.Equal(t, []string{"level"}, tree.PropertyNames())
	})
}

func TestValidatable_ReturnedTreeIsCopied(t *testing.T) {
	t.Parallel()

	type box struct {
		Item cached
	}
	always := validator.Func(func(cached) error { return errors.New("direct") })
	schema := validator.Struct(
		validator.Field("item", func(b box) cached { return b.Item }, always),
	)
	before := cachedTree.Error()

	first := mustTree(t, schema.Validate(box{}))
	mustTree(t, schema.Validate(box{}))
	second := mustTree(t, schema.Validate(box{}))

	assert.Equal(t, before, cachedTree.Error())
	assert.Equal(t, first.Error(), second.Error())
	assert.Equal(t, []string{"direct"}, second.Property("item").Messages())
	assert.Equal(t, []string{"The number must be `<= 4`."}, second.Property("item").Property("level").Messages())
}

func TestOptional(t *testing.T) {
	t.Parallel()

	calls := 0
	schema := validator.Optional(validator.Value(validator.Func(func(int) error {
		calls++
		return errors.New("never")
	})))

	assert.NoError(t, schema.Validate(nil))
	assert.Equal(t, 0, calls)

	tree := mustTree(t, schema.Validate(ptr(1)))
	assert.Equal(t, []string{"never"}, tree.Messages())
	assert.Equal(t, 1, calls)
}

func TestMap(t *testing.T) {
	t.Parallel()

	schema := validator.Map[int](validator.Value(validator.MinLength(2)))
	tree := mustTree(t, schema.Validate(map[int]string{10: "a", 2: "b", 3: "ok"}))

	assert.Equal(t, validator.ShapeNamed, tree.Shape())
	assert.Equal(t, []string{"10", "2"}, tree.PropertyNames())
	assert.NoError(t, schema.Validate(map[int]string{}))
	assert.NoError(t, schema.Validate(nil))

	t.Run("keys with the same text share an entry", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		s := validator.Map[any](validator.Value(validator.Maximum(10)))

		tree := mustTree(t, s.Validate(map[any]int{1: 11, "1": 12, "2": 1}, validator.WithLogger(log)))
		assert.Equal(t, []string{"1"}, tree.PropertyNames())
		assert.Len(t, tree.Property("1").Messages(), 2)
		assert.Contains(t, buf.String(), "map keys share a name")
		assert.Contains(t, buf.String(), "path=1")
	})
}

func TestSlice(t *testing.T) {
	t.Parallel()

	schema := validator.Slice(validator.Value(validator.Maximum(10)))

	assert.NoError(t, schema.Validate(nil))
	assert.NoError(t, schema.Validate([]int{1, 2, 3}))

	array := [3]int{1, 20, 3}
	tree := mustTree(t, schema.Validate(array[:]))
	assert.Equal(t, []int{1}, tree.ItemIndexes())
}

func TestParallelValidation(t *testing.T) {
	t.Parallel()

	items := make([]pair, 500)
	for i := range items {
		items[i] = pair{A: i % 7, B: i % 5}
	}
	schema := validator.Slice[pair](pairSchema)

	sequential := mustTree(t, schema.Validate(items))
	parallel := mustTree(t, schema.Validate(items,
		validator.WithParallelism(10),
		validator.WithWorkers(8),
		validator.WithContext(context.Background()),
	))

	assert.Equal(t, sequential.Error(), parallel.Error())
	assert.Equal(t, sequential.Count(), parallel.Count())

	t.Run("cancelled context does not stop validation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		tree := mustTree(t, schema.Validate(items,
			validator.WithParallelism(1),
			validator.WithWorkers(4),
			validator.WithContext(ctx),
		))
		assert.Equal(t, sequential.Error(), tree.Error())
	})

	t.Run("maps", func(t *testing.T) {
		t.Parallel()
		m := make(map[string]int, 100)
		for i := range 100 {
			m[fmt.Sprintf("k%03d", i)] = i
		}
		mapSchema := validator.Map[string](validator.Value(validator.MultipleOf(3)))
		seq := mustTree(t, mapSchema.Validate(m))
		par := mustTree(t, mapSchema.Validate(m, validator.WithParallelism(2), validator.WithWorkers(3)))
		assert.Equal(t, seq.Error(), par.Error())
	})
}

func TestValidationIsPure(t *testing.T) {
	t.Parallel()

	u := validUser()
	u.Name = ""
	u.Tags = []string{""}

	first := mustTree(t, userSchema.Validate(u))
	second := mustTree(t, userSchema.Validate(u))
	assert.Equal(t, first.Error(), second.Error())
	assert.Equal(t, "", u.Name)
	assert.Equal(t, []string{""}, u.Tags)
}

func TestNoEmptyEntries(t *testing.T) {
	t.Parallel()

	u := validUser()
	u.Address.City = ""
	tree := mustTree(t, userSchema.Validate(u))

	var check func(t *testing.T, tree *validator.Errors)
	check = func(t *testing.T, tree *validator.Errors) {
		for _, child := range tree.Properties() {
			assert.False(t, child.IsEmpty())
			check(t, child)
		}
		for _, child := range tree.Items() {
			assert.False(t, child.IsEmpty())
			check(t, child)
		}
	}
	check(t, tree)
	assert.Equal(t, []string{"address"}, tree.PropertyNames())
	assert.Equal(t, []string{"city"}, tree.Property("address").PropertyNames())
}
