package assemble

import (
	"strings"

	"github.com/arthur-debert/rpmvars/pkg/links"
	"github.com/arthur-debert/rpmvars/pkg/types"
)

// BuildItem maps one file record into the per-file output record.
// follow and force are fixed policy constants, not derived from input.
// Missing owner/group default to root; a missing mode becomes an empty
// string so the output never carries a numeric mode.
func BuildItem(rec types.FileRecord) types.ConfigItem {
	item := types.ConfigItem{
		Follow: false,
		Force:  true,
		Group:  defaultString(rec.Group, "root"),
		Mode:   rec.Mode,
		Owner:  defaultString(rec.Owner, "root"),
		Path:   rec.Path,
		State:  stateFromType(rec.Type),
	}

	// Only links get a src, and only when the target resolves.
	if item.State == types.StateLink {
		if src, ok := links.ResolveSource(rec.LinkTo, rec.Path); ok {
			item.Src = src
		}
	}

	return item
}

// stateFromType normalizes a record type to an output state.
func stateFromType(t string) string {
	switch strings.ToLower(t) {
	case "dir", "directory":
		return types.StateDirectory
	case "link", "symlink":
		return types.StateLink
	default:
		return types.StateFile
	}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
