// Package links resolves symlink targets into absolute path strings.
//
// Resolution is purely lexical with POSIX path semantics: no filesystem
// access, only string normalization. Relative targets are resolved
// against the directory portion of the link's own path.
package links

import (
	gopath "path"
	"strings"
)

// ResolveSource converts a symlink target into an absolute path.
// The second return value is false when the target is absent or empty,
// in which case no src property should be emitted.
//
// Absolute targets are normalized and returned as-is. Relative targets
// are joined to the directory of linkPath, which is forced to begin with
// '/' even when linkPath is malformed or relative.
func ResolveSource(target, linkPath string) (string, bool) {
	// A whitespace-only target counts as absent too: such a link is
	// broken on disk and a src of "/" would be worse than no src.
	lt := strings.TrimSpace(target)
	if lt == "" {
		return "", false
	}

	if strings.HasPrefix(lt, "/") {
		return gopath.Clean(lt), true
	}

	base := gopath.Dir(linkPath)
	if linkPath == "" || base == "." {
		base = "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + strings.TrimLeft(base, "/")
	}
	return gopath.Clean(gopath.Join(base, lt)), true
}
