package table

import (
	"log/slog"

	"tabcast/internal/sniff"
)

// Option configures Load.
type Option func(*config)

type config struct {
	delims    []byte
	charsets  []sniff.Charset
	hasHeader bool
	skipBlank bool
	autoCast  bool
	normalize bool
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		delims:    sniff.DefaultDelimiters(),
		charsets:  sniff.DefaultCharsets(),
		hasHeader: true,
		skipBlank: true,
		autoCast:  true,
		normalize: true,
	}
}

// WithDelimiters replaces the candidate delimiters tried during
// detection. Order matters: detection ties resolve to the earliest
// candidate.
func WithDelimiters(delims ...byte) Option {
	return func(c *config) { c.delims = delims }
}

// WithCharsets replaces the candidate charsets tried during detection,
// in order.
func WithCharsets(charsets ...sniff.Charset) Option {
	return func(c *config) { c.charsets = charsets }
}

// WithoutHeader treats every record as data; name-based column access
// is then unavailable.
func WithoutHeader() Option {
	return func(c *config) { c.hasHeader = false }
}

// KeepBlankRows keeps rows whose cells are all blank instead of
// dropping them at load.
func KeepBlankRows() Option {
	return func(c *config) { c.skipBlank = false }
}

// WithoutAutoCast stores every field as its exact raw string instead of
// inferring typed values.
func WithoutAutoCast() Option {
	return func(c *config) { c.autoCast = false }
}

// WithoutHeaderNormalization keeps header names exactly as written in
// the file.
func WithoutHeaderNormalization() Option {
	return func(c *config) { c.normalize = false }
}

// WithLogger routes the table's non-fatal warnings to l instead of
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
