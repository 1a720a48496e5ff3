// Package valid wires the validation engine in pkg/validator to
// configuration, logging and localized messages.
//
// Schemas are declared with pkg/validator and can be used on their own:
//
//	var readingSchema = validator.Struct(
//		validator.Field("val", func(r Reading) int32 { return r.Val },
//			validator.Maximum[int32](4)),
//	)
//
//	err := readingSchema.Validate(Reading{Val: 5})
//	// {"errors":[],"properties":{"val":{"errors":["The number must be `<= 4`."]}}}
//
// An Engine adds the settings read from the environment (see Config):
//
//	cfg, err := valid.LoadConfig()
//	if err != nil {
//		return err
//	}
//	engine, err := valid.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	ctx = i18n.SetLocale(ctx, "de")
//	err = valid.Validate(ctx, engine, readingSchema, reading)
//	// {"errors":[],"properties":{"val":{"errors":["Die Zahl muss `<= 4` sein."]}}}
//
// Messages:
//
// Built-in catalogues for English and German are embedded. VALID_MESSAGES_DIR
// points to a directory of YAML or JSON catalogues whose keys override the
// built-in ones; WithCatalogue layers further sources on top. Keys follow
// the pattern "validation.<kind>" and reference the constraint parameter as
// %{<kind>}, for example "validation.maximum" with %{maximum}.
//
// Errors:
//
// Validate returns nil or an error tree; validator.AsErrors extracts it and
// FieldErrorsFrom flattens it into messages keyed by JSON Pointer.
package valid
