package table

import "strings"

// NormalizeHeader canonicalizes one header name: surrounding whitespace
// trimmed, lowercased, each space and hyphen folded to an underscore.
// Applied once at load; the original header text is discarded, so the
// normalized form is the only name a resolver lookup can match.
func NormalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")

	return strings.ReplaceAll(name, "-", "_")
}

func normalizeHeaders(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = NormalizeHeader(name)
	}

	return out
}
