package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
)

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	table := &Table{
		Headers: []string{"Name", "Email", "Affiliation"},
		Rows: [][]string{
			{"Ada Lovelace", "ada@example.com", "Analytical Engine"},
			{"Grace Hopper", "grace@x.com", ""},
		},
	}

	require.NoError(t, WriteCSV(path, table))

	got, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, table.Headers, got.Headers)
	assert.Equal(t, table.Rows, got.Rows)
}

func TestWriteCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old,content\n1,2\n3,4\n"), 0o644))

	table := &Table{Headers: []string{"Email"}, Rows: [][]string{{"a@b.com"}}}
	require.NoError(t, WriteCSV(path, table))

	got, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Email"}, got.Headers)
	require.Len(t, got.Rows, 1)
}

func TestLoadCSVMissing(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.InputNotFoundError))
}

func TestLoadCSVPadsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Email\nAda\n"), 0o644))

	got, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, []string{"Ada", ""}, got.Rows[0])
}

func TestFilterRows(t *testing.T) {
	table := &Table{
		Headers: []string{"Email"},
		Rows:    [][]string{{"a@x.com"}, {"b@x.com"}, {"c@x.com"}},
	}

	got := FilterRows(table, map[int]bool{0: true, 2: true})

	assert.Equal(t, table.Headers, got.Headers)
	assert.Equal(t, [][]string{{"a@x.com"}, {"c@x.com"}}, got.Rows)
}
