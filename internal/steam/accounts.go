// Package steam touches the local Steam installation and the
// community site: userdata account discovery and display-name lookup.
package steam

import (
	"os"
	"path/filepath"
	"sort"
)

// EnumerateAccountDirs lists the account directory names under the
// installation's userdata directory. Only all-digit directory names
// count; a missing or unreadable directory yields an empty list, never
// an error.
func EnumerateAccountDirs(steamPath string) []string {
	entries, err := os.ReadDir(filepath.Join(steamPath, "userdata"))
	if err != nil {
		return nil
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || !isDigits(e.Name()) {
			continue
		}
		dirs = append(dirs, e.Name())
	}
	sort.Strings(dirs)
	return dirs
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
