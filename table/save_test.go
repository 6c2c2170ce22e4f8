package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabcast/cell"
	"tabcast/internal/sniff"
)

func TestSaveRoundTripRaw(t *testing.T) {
	tab := loadTemp(t, "id,name\n1,alpha\n2,beta\n", WithoutAutoCast())

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, tab.SaveTo(out))

	back, err := Load(out, WithoutAutoCast())
	require.NoError(t, err)

	assert.Equal(t, tab.Len(), back.Len())
	assert.Equal(t, tab.Header(), back.Header())
	assert.Equal(t, tab.Rows(), back.Rows(), spew.Sdump(back.Rows()))
}

func TestSaveSerialization(t *testing.T) {
	tab := loadTemp(t, "flag,score\ntrue,3.5\nFalse,10\n")

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, tab.SaveTo(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	// Booleans are written lowercase regardless of source casing.
	assert.Equal(t, "flag,score\ntrue,3.5\nfalse,10\n", string(data))
}

func TestSaveReconcilesRows(t *testing.T) {
	tab := loadTemp(t, "a,b,c\n1,2\n1,2,3,4\n", WithDelimiters(','))

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, tab.SaveTo(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, "a,b,c\n1,2,\n1,2,3\n", string(data))

	// The in-memory rows stay ragged; only the written form reconciles.
	assert.Len(t, tab.Rows()[0], 2)
}

func TestSaveOverwritesSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	tab, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, tab.UpdateCell(0, Name("a"), cell.Int(9)))
	require.NoError(t, tab.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n9,2\n", string(data))
}

func TestSaveKeepsDelimiter(t *testing.T) {
	tab := loadTemp(t, "a;b\n1;2\n", WithDelimiters(';'))
	require.Equal(t, byte(';'), tab.Delimiter())

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, tab.SaveTo(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a;b\n1;2\n", string(data))
}

func TestSaveKeepsCharset(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "latin1.csv")
	require.NoError(t, os.WriteFile(path, []byte{'n', 'a', 'm', 'e', '\n', 'c', 'a', 'f', 0xE9, '\n'}, 0o644))

	tab, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "latin-1", tab.Encoding())

	out := filepath.Join(dir, "out.csv")
	require.NoError(t, tab.SaveTo(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{'n', 'a', 'm', 'e', '\n', 'c', 'a', 'f', 0xE9, '\n'}, data)
}

func TestSaveKeepsBOM(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bom.csv")
	require.NoError(t, os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b\n1,2\n")...), 0o644))

	tab, err := Load(path, WithCharsets(sniff.UTF8BOM(), sniff.UTF8()))
	require.NoError(t, err)
	require.Equal(t, "utf-8-sig", tab.Encoding())

	out := filepath.Join(dir, "out.csv")
	require.NoError(t, tab.SaveTo(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b\n1,2\n")...), data)
}
