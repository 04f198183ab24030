// Package emailaddr normalizes email cells read from spreadsheets.
// Every script must use Normalize for both registrant and member emails;
// a second normalization path is how mismatches creep in.
package emailaddr

import "strings"

// Normalize trims and lower-cases a raw email cell. It returns ok=false for
// values that mean "no email": empty cells and the literal string "nan" that
// spreadsheet exports produce for blank cells.
func Normalize(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || email == "nan" {
		return "", false
	}
	return email, true
}
