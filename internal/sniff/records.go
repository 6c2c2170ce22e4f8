package sniff

import (
	"io"
	"strings"

	"github.com/oleg578/swiftcsv"
)

// ReadRecords parses text as quoted records split by delim. Records may
// vary in width; the reader's field-count check is re-armed before every
// record so ragged input is not an error.
func ReadRecords(text string, delim byte) ([][]string, error) {
	r := swiftcsv.NewReader(strings.NewReader(text))
	r.Comma = delim

	var records [][]string

	for {
		r.FieldsPerRecord = 0

		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}
}

// blankRecord reports a record produced by a blank input line: a single
// empty field.
func blankRecord(rec []string) bool {
	return len(rec) == 0 || (len(rec) == 1 && rec[0] == "")
}
