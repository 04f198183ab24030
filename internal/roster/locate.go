package roster

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
)

// FindExcelInput returns the first .xlsx file in dir, name order. A missing
// directory or a directory without spreadsheets is InputNotFound.
func FindExcelInput(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", apperrors.InputNotFound(dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".xlsx") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", apperrors.InputNotFound("no Excel files found in " + dir)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}

// ValidateCSVInput checks that path exists and is a regular file.
func ValidateCSVInput(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return apperrors.InputNotFound(path)
	}
	return nil
}
