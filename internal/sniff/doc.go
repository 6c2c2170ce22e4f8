// Package sniff infers the physical shape of a delimited text file:
// which charset decodes it and which delimiter splits it into records.
//
// Detection is best-effort and deterministic. Charsets are tried in
// candidate order and the first successful decode wins; with Latin-1 in
// the list (the default) detection cannot fail, since Latin-1 decodes
// any byte sequence. Delimiters are scored by how consistently they
// split the input into records of one width, ties keep the earliest
// candidate, and a fully scoreless input falls back to the comma.
package sniff
