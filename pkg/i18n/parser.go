package i18n

import (
	"context"
	"path"
)

// Parser decodes one catalogue file into translations keyed by language
// and then by dotted message key.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether files with ext are decoded by
	// this parser. A leading dot is optional.
	SupportsFileExtension(ext string) bool
}

// catalogueParsers lists the formats recognised by file name.
func catalogueParsers() []Parser {
	return []Parser{NewYAMLParser(), NewJSONParser()}
}

// NewParserForFile picks a catalogue parser by the extension of filename,
// ignoring case. It returns nil for unknown formats.
func NewParserForFile(filename string) Parser {
	ext := path.Ext(filename)
	if ext == "" {
		return nil
	}
	for _, p := range catalogueParsers() {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}
