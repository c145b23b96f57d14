package catalog

import (
	"path/filepath"
	"strings"

	"github.com/IGLOU-EU/go-wildcard"
	"github.com/spf13/afero"
)

// join is filepath.Join that refuses to build on an unresolved base folder,
// so a missing special folder never turns into a relative path.
func join(base string, elem ...string) string {
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

func hasWildcard(p string) bool {
	return strings.Contains(p, "*")
}

// expandPattern expands "*" path segments against the filesystem, one
// segment at a time, so separators never take part in matching. Paths
// without wildcards are returned as-is.
func expandPattern(fs afero.Fs, pattern string) []string {
	if !hasWildcard(pattern) {
		return []string{pattern}
	}

	dir, name := filepath.Split(pattern)
	dir = filepath.Clean(dir)

	parents := []string{dir}
	if hasWildcard(dir) {
		parents = expandPattern(fs, dir)
	}

	var out []string
	for _, parent := range parents {
		if !hasWildcard(name) {
			out = append(out, filepath.Join(parent, name))
			continue
		}
		entries, err := afero.ReadDir(fs, parent)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() && wildcard.Match(name, e.Name()) {
				out = append(out, filepath.Join(parent, e.Name()))
			}
		}
	}
	return out
}
