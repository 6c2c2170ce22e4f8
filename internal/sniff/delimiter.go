package sniff

// DefaultDelimiters returns the default candidate delimiters, in
// tie-break order.
func DefaultDelimiters() []byte {
	return []byte{',', ';', '|', '\t'}
}

// DetectDelimiter scores each candidate by the frequency of the most
// common record width it produces and picks the highest scorer. A
// candidate that fails to parse, or yields no records, is skipped. Ties
// keep the earliest candidate; if nothing scores, the comma wins by
// default.
//
// The heuristic assumes the true delimiter produces the most
// self-consistent row shape. Single-column data scores every candidate
// identically and therefore resolves to the first; this ambiguity is
// accepted rather than special-cased.
func DetectDelimiter(text string, candidates []byte) byte {
	if len(candidates) == 0 {
		candidates = DefaultDelimiters()
	}

	var best byte
	bestScore := 0

	for _, delim := range candidates {
		records, err := ReadRecords(text, delim)
		if err != nil {
			continue
		}

		widths := make(map[int]int)
		for _, rec := range records {
			if blankRecord(rec) {
				continue
			}
			widths[len(rec)]++
		}

		score := 0
		for _, freq := range widths {
			if freq > score {
				score = freq
			}
		}

		if score > bestScore {
			best, bestScore = delim, score
		}
	}

	if bestScore == 0 {
		return ','
	}

	return best
}
