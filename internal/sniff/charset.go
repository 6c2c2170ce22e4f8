package sniff

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrCharset is returned when no candidate charset decodes the input.
var ErrCharset = errors.New("no candidate charset decodes file")

// Charset is one candidate text encoding. It carries both directions:
// the decoder used at load and the encoder used to write the file back
// in the same form (the BOM variant re-emits its BOM on encode).
type Charset struct {
	name string
	enc  encoding.Encoding

	// strict rejects byte sequences that are not valid UTF-8 instead of
	// letting the x/text decoder substitute replacement runes.
	strict bool
}

// UTF8 is plain UTF-8 with strict validation.
func UTF8() Charset {
	return Charset{name: "utf-8", enc: unicode.UTF8, strict: true}
}

// UTF8BOM is UTF-8 with a byte-order mark: the mark is stripped when
// decoding and written back when encoding.
func UTF8BOM() Charset {
	return Charset{name: "utf-8-sig", enc: unicode.UTF8BOM, strict: true}
}

// Latin1 is ISO 8859-1, the universal fallback: every byte sequence
// decodes.
func Latin1() Charset {
	return Charset{name: "latin-1", enc: charmap.ISO8859_1}
}

// DefaultCharsets returns the default candidate list, in detection order.
func DefaultCharsets() []Charset {
	return []Charset{UTF8(), UTF8BOM(), Latin1()}
}

// Name returns the charset's label, e.g. "utf-8".
func (c Charset) Name() string { return c.name }

// Decode converts raw file bytes to text.
func (c Charset) Decode(data []byte) (string, error) {
	if c.strict && !utf8.Valid(data) {
		return "", fmt.Errorf("%s: invalid byte sequence", c.name)
	}

	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.name, err)
	}

	return string(out), nil
}

// Encode converts text back to file bytes. Fails if the text contains
// runes the charset cannot represent (possible after mutations on a
// Latin-1 file).
func (c Charset) Encode(text string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}

	return out, nil
}

// DetectCharset tries each candidate in order against the raw file bytes
// and returns the first that decodes, together with the decoded text.
// An empty candidate list means the defaults.
func DetectCharset(data []byte, candidates []Charset) (Charset, string, error) {
	if len(candidates) == 0 {
		candidates = DefaultCharsets()
	}

	for _, c := range candidates {
		text, err := c.Decode(data)
		if err != nil {
			continue
		}

		return c, text, nil
	}

	return Charset{}, "", ErrCharset
}
