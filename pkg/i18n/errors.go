package i18n

import "errors"

var (
	ErrNilAdapter      = errors.New("i18n: adapter is nil")
	ErrEmptyLanguage   = errors.New("i18n: empty language code")
	ErrNilTranslations = errors.New("i18n: nil translations map")

	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// ErrInvalidStructure is returned when a catalogue's top level is not a
	// map of language codes to translation maps.
	ErrInvalidStructure = errors.New("invalid translation structure")

	ErrLoadingCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadDir  = errors.New("failed to read translation directory")
	ErrFailedToReadFile = errors.New("failed to read translation file")
	ErrFailedToParse    = errors.New("failed to parse translation file")
)
