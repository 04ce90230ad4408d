package assemble

import "github.com/arthur-debert/rpmvars/pkg/types"

// MergeFiles flattens the file lists of every installed instance of one
// package name into a single ordered sequence, deduplicated by absolute
// path. Packages are processed in input order and files within each
// package in input order; the first occurrence of a path wins and later
// duplicates are dropped, whatever their metadata says. Records with an
// empty path are skipped.
//
// The resulting order drives both category insertion order and key
// collision resolution, so it must stay stable.
func MergeFiles(pkgs []types.Package) []types.FileRecord {
	seen := make(map[string]struct{})
	var out []types.FileRecord

	for _, pkg := range pkgs {
		for _, f := range pkg.Files {
			if f.Path == "" {
				continue
			}
			if _, dup := seen[f.Path]; dup {
				continue
			}
			seen[f.Path] = struct{}{}
			out = append(out, f)
		}
	}

	return out
}
