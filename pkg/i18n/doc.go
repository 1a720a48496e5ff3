// Package i18n loads message catalogues and translates keys with named
// placeholders.
//
// Catalogues map a language code to a nested tree of keys. A
// TranslationAdapter produces them: MapAdapter holds an in-memory tree,
// FSAdapter reads YAML or JSON files from any fs.FS (embed.FS, os.DirFS,
// fstest.MapFS), and ChainAdapter deep-merges several adapters so that a
// directory of overrides can sit on top of built-in catalogues.
//
// # Usage
//
//	//go:embed locales
//	var locales embed.FS
//
//	translator, err := i18n.NewTranslator(ctx,
//	    i18n.ChainAdapter{
//	        i18n.NewFSAdapter(locales, "locales", nil),
//	        i18n.NewFSAdapter(os.DirFS(dir), ".", nil),
//	    },
//	    i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	msg := translator.T("de", "validation.minimum", "minimum", "18")
//
// Keys use dot notation to reach nested entries and templates reference
// arguments as %{name}. A missing key yields the key itself (T) or a caller
// supplied default (Td).
//
// # Language matching
//
// MatchLanguage and Translator.Match accept a single BCP 47 tag or a full
// Accept-Language list and return the closest supported language, so
// "de-AT" resolves to a "de" catalogue. SetLocale and GetLocale carry the
// chosen language through a context.Context.
//
// # Errors
//
// Loading failures wrap the sentinel errors declared in this package
// (ErrFailedToReadDir, ErrFailedToParse, ErrInvalidStructure and others)
// and can be tested with errors.Is.
package i18n
