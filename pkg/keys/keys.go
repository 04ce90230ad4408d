// Package keys derives unique, safe identifier keys from filesystem paths.
//
// Keys are scoped to one assembly run: the caller threads a single Set
// through every Sanitize call so that no two records in the same output
// document share a key. The Set is an explicit parameter, never ambient
// state, which keeps the pipeline reusable per invocation.
package keys

import "strconv"

// Set tracks keys already handed out during one assembly run.
type Set map[string]struct{}

// NewSet returns an empty key set.
func NewSet() Set {
	return make(Set)
}

// Has reports whether key was already handed out.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Set) add(key string) {
	s[key] = struct{}{}
}

// Sanitize turns a filesystem path into a safe identifier key:
//
//   - strip a single leading '/', lowercase the rest
//   - letters and digits pass through; every other rune collapses into a
//     single '_', with runs merged into one
//   - trim '_' at both ends; an empty result becomes "root"
//   - on collision, append _2, _3, ... until unique
//
// The returned key is recorded in used, so the result sequence for a
// fixed input order is fully deterministic.
func Sanitize(path string, used Set) string {
	key := baseKey(path)

	if !used.Has(key) {
		used.add(key)
		return key
	}
	for i := 2; ; i++ {
		candidate := key + "_" + strconv.Itoa(i)
		if !used.Has(candidate) {
			used.add(candidate)
			return candidate
		}
	}
}

func baseKey(path string) string {
	s := path
	if len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}

	out := make([]rune, 0, len(s))
	prevUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			prevUnderscore = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			prevUnderscore = false
		default:
			if !prevUnderscore {
				out = append(out, '_')
				prevUnderscore = true
			}
		}
	}

	// Trim underscores at both ends.
	start, end := 0, len(out)
	for start < end && out[start] == '_' {
		start++
	}
	for end > start && out[end-1] == '_' {
		end--
	}
	if start == end {
		return "root"
	}
	return string(out[start:end])
}
