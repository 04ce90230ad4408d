package rpmquery

import (
	"fmt"
	"sort"
)

// RPM file-flag bits, mirroring the RPMFILE_* constants in rpmlib.
var fileFlagNames = map[int]string{
	1 << 0:  "config",
	1 << 1:  "doc",
	1 << 2:  "icon",
	1 << 3:  "missingok",
	1 << 4:  "noreplace",
	1 << 5:  "specfile",
	1 << 6:  "ghost",
	1 << 7:  "license",
	1 << 8:  "readme",
	1 << 9:  "exclude",
	1 << 10: "unpatched",
	1 << 11: "pubkey",
	1 << 12: "artifact",
}

// decodeFileFlags converts an RPM file-flags bitmask into a sorted list
// of lowercase flag names. Unknown bits are ignored.
func decodeFileFlags(bitmask int) []string {
	var names []string
	for bit, name := range fileFlagNames {
		if bitmask&bit != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// octalPerms returns the 4-digit octal permission bits, with the file
// type bits masked out.
func octalPerms(mode int) string {
	return fmt.Sprintf("%04o", mode&0o7777)
}

// fileTypeFromMode maps POSIX mode type bits to a simple string.
func fileTypeFromMode(mode int) string {
	switch mode & 0o170000 {
	case 0o040000:
		return "dir"
	case 0o120000:
		return "link"
	case 0o100000:
		return "file"
	default:
		return "other"
	}
}
