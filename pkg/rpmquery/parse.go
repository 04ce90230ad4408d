package rpmquery

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/rpmvars/pkg/errors"
	"github.com/arthur-debert/rpmvars/pkg/logging"
	"github.com/arthur-debert/rpmvars/pkg/types"
)

// parseDump turns raw query output into package objects. Malformed file
// lines are skipped rather than failing the whole query; a malformed
// header is a hard error since everything after it would be misattributed.
func parseDump(out string) ([]types.Package, error) {
	logger := logging.GetLogger("rpmquery")

	var pkgs []types.Package
	var current *types.Package

	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, pkgMarker) {
			pkg, err := parseHeader(strings.TrimPrefix(line, pkgMarker))
			if err != nil {
				return nil, err
			}
			pkgs = append(pkgs, pkg)
			current = &pkgs[len(pkgs)-1]
			continue
		}

		if current == nil {
			return nil, errors.New(errors.ErrQueryParse, "file entry before any package header")
		}

		rec, ok := parseFileLine(line)
		if !ok {
			logger.Debug().Str("line", line).Msg("skipping malformed file entry")
			continue
		}
		current.Files = append(current.Files, rec)
	}

	return pkgs, nil
}

func parseHeader(line string) (types.Package, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 5 {
		return types.Package{}, errors.Newf(errors.ErrQueryParse,
			"malformed package header: %d fields", len(fields))
	}

	pkg := types.Package{
		Name:    fields[0],
		Version: fields[2],
		Release: fields[3],
		Arch:    fields[4],
	}

	// rpm prints "(none)" for an unset epoch.
	if e, err := strconv.Atoi(fields[1]); err == nil {
		pkg.Epoch = &e
	}

	pkg.NEVRA = nevra(pkg)
	return pkg, nil
}

// nevra builds the fully qualified identifier, with the epoch prefix
// only when the epoch is present and nonzero.
func nevra(pkg types.Package) string {
	if pkg.Epoch == nil || *pkg.Epoch == 0 {
		return pkg.Name + "-" + pkg.Version + "-" + pkg.Release + "." + pkg.Arch
	}
	return pkg.Name + "-" + strconv.Itoa(*pkg.Epoch) + ":" + pkg.Version + "-" + pkg.Release + "." + pkg.Arch
}

// File line fields, in query-format order.
const (
	fieldPath = iota
	fieldMode
	fieldSize
	fieldMtime
	fieldDigest
	fieldOwner
	fieldGroup
	fieldLinkTo
	fieldFlags
	fieldCount
)

func parseFileLine(line string) (types.FileRecord, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != fieldCount || fields[fieldPath] == "" {
		return types.FileRecord{}, false
	}

	mode, err := strconv.Atoi(fields[fieldMode])
	if err != nil {
		mode = 0
	}
	size, _ := strconv.ParseInt(fields[fieldSize], 10, 64)
	mtime, _ := strconv.ParseInt(fields[fieldMtime], 10, 64)
	flags, err := strconv.Atoi(fields[fieldFlags])
	if err != nil {
		flags = 0
	}

	owner := fields[fieldOwner]
	if owner == "" {
		owner = "root"
	}
	group := fields[fieldGroup]
	if group == "" {
		group = "root"
	}

	return types.FileRecord{
		Path:     fields[fieldPath],
		Size:     size,
		Mtime:    mtime,
		Digest:   fields[fieldDigest],
		Mode:     octalPerms(mode),
		Owner:    owner,
		Group:    group,
		LinkTo:   fields[fieldLinkTo],
		Flags:    decodeFileFlags(flags),
		FlagsRaw: flags,
		Type:     fileTypeFromMode(mode),
	}, true
}
