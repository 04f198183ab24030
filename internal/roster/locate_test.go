package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
)

func TestFindExcelInput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xlsx", "a.xlsx", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	path, err := FindExcelInput(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.xlsx"), path)
}

func TestFindExcelInputMissingDir(t *testing.T) {
	_, err := FindExcelInput(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.InputNotFoundError))
}

func TestFindExcelInputNoSpreadsheets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	_, err := FindExcelInput(dir)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.InputNotFoundError))
}

func TestValidateCSVInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invites.csv")
	require.NoError(t, os.WriteFile(path, []byte("Email\n"), 0o644))

	assert.NoError(t, ValidateCSVInput(path))
	assert.Error(t, ValidateCSVInput(filepath.Join(dir, "absent.csv")))
	assert.Error(t, ValidateCSVInput(dir))
}
