package sniff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCharsetUTF8First(t *testing.T) {
	data := []byte("name,city\nанна,köln\n")

	cs, text, err := DetectCharset(data, nil)
	require.NoError(t, err)

	assert.Equal(t, "utf-8", cs.Name())
	assert.Equal(t, string(data), text)
}

func TestDetectCharsetLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and an invalid sequence in UTF-8.
	data := []byte{'c', 'a', 'f', 0xE9, ',', '1', '\n'}

	cs, text, err := DetectCharset(data, nil)
	require.NoError(t, err)

	assert.Equal(t, "latin-1", cs.Name())
	assert.Equal(t, "café,1\n", text)
}

func TestDetectCharsetCandidateOrder(t *testing.T) {
	bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b\n")...)

	// BOM first: the mark is consumed by the decoder.
	cs, text, err := DetectCharset(bom, []Charset{UTF8BOM(), UTF8()})
	require.NoError(t, err)
	assert.Equal(t, "utf-8-sig", cs.Name())
	assert.Equal(t, "a,b\n", text)

	// Plain UTF-8 first: the mark survives as a leading rune.
	cs, text, err = DetectCharset(bom, []Charset{UTF8(), UTF8BOM()})
	require.NoError(t, err)
	assert.Equal(t, "utf-8", cs.Name())
	assert.Equal(t, "\uFEFFa,b\n", text)
}

func TestDetectCharsetNoMatch(t *testing.T) {
	data := []byte{0xFF, 0xFE, 0x00}

	_, _, err := DetectCharset(data, []Charset{UTF8()})
	require.ErrorIs(t, err, ErrCharset)
}

func TestUTF8BOMEncodeRoundTrip(t *testing.T) {
	cs := UTF8BOM()

	out, err := cs.Encode("a,b\n")
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b\n")...), out)

	back, err := cs.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", back)
}

func TestLatin1EncodeRoundTrip(t *testing.T) {
	cs := Latin1()

	out, err := cs.Encode("café\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, '\n'}, out)

	back, err := cs.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "café\n", back)
}
