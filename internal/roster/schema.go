package roster

import (
	"fmt"
	"strings"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
	"github.com/Penn-I3H/pennsieve-invite-sync/internal/reconcile"
)

// ResolveEmailColumn finds the single header containing "email"
// (case-insensitive). Zero or multiple candidates is a schema error: picking
// the first match silently is how the wrong column gets invited.
func ResolveEmailColumn(headers []string) (int, error) {
	found := -1
	var candidates []string
	for i, h := range headers {
		if strings.Contains(strings.ToLower(h), "email") {
			if found == -1 {
				found = i
			}
			candidates = append(candidates, h)
		}
	}
	switch len(candidates) {
	case 0:
		return -1, apperrors.SchemaMismatch(
			"could not find email column in the spreadsheet",
			fmt.Sprintf("available columns: %s", strings.Join(headers, ", ")))
	case 1:
		return found, nil
	default:
		return -1, apperrors.SchemaMismatch(
			"multiple email columns in the spreadsheet",
			fmt.Sprintf("candidates: %s", strings.Join(candidates, ", ")))
	}
}

// ResolveNameColumn finds the name column, preferring an exact "Name" header
// over a substring match. The name column is optional; -1 means absent.
func ResolveNameColumn(headers []string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), "name") {
			return i
		}
	}
	for i, h := range headers {
		if strings.Contains(strings.ToLower(h), "name") {
			return i
		}
	}
	return -1
}

// Registrants converts table rows into reconcile.Registrant values using the
// resolved columns. Row numbers are 1-based spreadsheet rows (header is row 1).
func Registrants(t *Table, emailCol, nameCol int) []reconcile.Registrant {
	regs := make([]reconcile.Registrant, 0, len(t.Rows))
	for i, row := range t.Rows {
		reg := reconcile.Registrant{Row: i + 2}
		if emailCol >= 0 && emailCol < len(row) {
			reg.Email = row[emailCol]
		}
		if nameCol >= 0 && nameCol < len(row) {
			reg.Name = strings.TrimSpace(row[nameCol])
		}
		regs = append(regs, reg)
	}
	return regs
}
