package sniff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want byte
	}{
		{
			name: "comma",
			text: "a,b,c\n1,2,3\n4,5,6\n",
			want: ',',
		},
		{
			// The wrong delimiters split every line into one consistent
			// field, so they tie the right one; the earliest candidate
			// takes the tie. Single-column shapes are ambiguous by design.
			name: "clean semicolon file ties to comma",
			text: "a;b;c\n1;2;3\n",
			want: ',',
		},
		{
			// Stray commas break the comma candidate's shape consistency,
			// so the semicolon pulls ahead.
			name: "consistency beats ties",
			text: "a;b;c\n1,5;2;3\nx;y,z;w\n",
			want: ';',
		},
		{
			// Every punctuation candidate splits the lines unevenly; only
			// the tab keeps a stable width.
			name: "tab wins over inconsistent punctuation",
			text: "a\tb\n1,2;3|4\t5\n6,7,8;9;10|11|12\t13\n",
			want: '\t',
		},
		{
			name: "single column ties to comma",
			text: "alpha\nbeta\ngamma\n",
			want: ',',
		},
		{
			name: "empty input falls back to comma",
			text: "",
			want: ',',
		},
		{
			// Blank lines would hand the comma candidate free width-1
			// records; they must not score.
			name: "blank lines do not score",
			text: "\n\na;b\n1,x;2\n",
			want: ';',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDelimiter(tt.text, nil))
		})
	}
}

func TestDetectDelimiterCandidateOrder(t *testing.T) {
	text := "alpha\nbeta\n"

	// With a custom candidate list the tie goes to its first entry, and
	// a no-score outcome still falls back to the comma.
	assert.Equal(t, byte(';'), DetectDelimiter(text, []byte{';', ','}))
	assert.Equal(t, byte(','), DetectDelimiter("", []byte{';'}))
}

func TestReadRecordsRagged(t *testing.T) {
	records, err := ReadRecords("a,b,c\n1,2\nx,y,z,w\n", ',')
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"1", "2"},
		{"x", "y", "z", "w"},
	}, records)
}

func TestReadRecordsQuoted(t *testing.T) {
	records, err := ReadRecords("\"a,b\",c\n", ',')
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"a,b", "c"}}, records)
}
