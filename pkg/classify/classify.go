// Package classify maps a FileRecord to exactly one output category.
//
// The policy is evaluated in strict priority order, first match wins:
// the "config" flag, then "license", then "doc", then symlinks, then the
// artifacts catch-all. Classification is a total function: malformed
// input degrades to the catch-all instead of failing.
package classify

import (
	"strings"

	"github.com/arthur-debert/rpmvars/pkg/types"
)

// Classify selects the category for a single file record.
func Classify(rec types.FileRecord) types.Category {
	flags := make(map[string]struct{}, len(rec.Flags))
	for _, f := range rec.Flags {
		flags[strings.ToLower(f)] = struct{}{}
	}

	if _, ok := flags["config"]; ok {
		return types.CategoryConfiguration
	}
	if _, ok := flags["license"]; ok {
		return types.CategoryLicenses
	}
	if _, ok := flags["doc"]; ok {
		return types.CategoryDocs
	}

	if strings.ToLower(rec.Type) == "link" {
		return types.CategoryGeneral
	}

	return types.CategoryArtifacts
}
