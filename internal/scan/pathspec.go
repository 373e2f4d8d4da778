package scan

import (
	"path/filepath"
	"strings"
)

// Pathspec restricts which staged paths the scanner considers.
// An empty pattern list matches everything.
type Pathspec struct {
	patterns []string
}

func NewPathspec(patterns []string) *Pathspec {
	return &Pathspec{patterns: patterns}
}

// Match returns true if the path is selected by the pathspec.
func (p *Pathspec) Match(path string) bool {
	if len(p.patterns) == 0 {
		return true
	}
	for _, pat := range p.patterns {
		if matchPattern(pat, path) {
			return true
		}
	}
	return false
}

// matchPattern handles exact paths, leading directories, and
// *, ?, and ** globs like Git pathspecs.
func matchPattern(pattern, path string) bool {
	pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
	if pattern == path || strings.HasPrefix(path, pattern+"/") {
		return true
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

// matchSegments matches pattern segments recursively.
func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true // trailing ** matches anything
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, _ := filepath.Match(p, parts[0])
		if !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
