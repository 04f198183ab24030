package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
)

func TestResolveEmailColumn(t *testing.T) {
	col, err := ResolveEmailColumn([]string{"Name", "Email Address", "Affiliation"})
	require.NoError(t, err)
	assert.Equal(t, 1, col)
}

func TestResolveEmailColumnCaseInsensitive(t *testing.T) {
	col, err := ResolveEmailColumn([]string{"EMAIL", "Name"})
	require.NoError(t, err)
	assert.Equal(t, 0, col)
}

func TestResolveEmailColumnMissing(t *testing.T) {
	_, err := ResolveEmailColumn([]string{"Name", "Affiliation"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.SchemaMismatchError))
}

func TestResolveEmailColumnAmbiguous(t *testing.T) {
	_, err := ResolveEmailColumn([]string{"Email", "Backup Email"})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.SchemaMismatchError))
}

func TestResolveNameColumn(t *testing.T) {
	assert.Equal(t, 0, ResolveNameColumn([]string{"Name", "Email"}))
	assert.Equal(t, -1, ResolveNameColumn([]string{"Email", "Affiliation"}))
	// exact "Name" beats an earlier substring match
	assert.Equal(t, 1, ResolveNameColumn([]string{"Username", "Name"}))
	assert.Equal(t, 0, ResolveNameColumn([]string{"Full Name", "Email"}))
}

func TestRegistrants(t *testing.T) {
	table := &Table{
		Headers: []string{"Name", "Email"},
		Rows: [][]string{
			{"Ada Lovelace", "ada@example.com"},
			{"", "grace@x.com"},
		},
	}

	regs := Registrants(table, 1, 0)

	require.Len(t, regs, 2)
	assert.Equal(t, 2, regs[0].Row)
	assert.Equal(t, "Ada Lovelace", regs[0].Name)
	assert.Equal(t, "ada@example.com", regs[0].Email)
	assert.Equal(t, 3, regs[1].Row)
	assert.Equal(t, "", regs[1].Name)
}

func TestRegistrantsNoNameColumn(t *testing.T) {
	table := &Table{
		Headers: []string{"Email"},
		Rows:    [][]string{{"ada@example.com"}},
	}

	regs := Registrants(table, 0, -1)

	require.Len(t, regs, 1)
	assert.Equal(t, "", regs[0].Name)
	assert.Equal(t, "ada@example.com", regs[0].Email)
}
