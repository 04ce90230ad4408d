// Package rpmquery acquires per-file metadata for installed RPM packages.
//
// The default implementation shells out to the rpm binary with a custom
// query format, one package object per installed NEVRA. A JSON loader
// reads the same package-object shape from a file for offline use.
package rpmquery

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/rpmvars/pkg/errors"
	"github.com/arthur-debert/rpmvars/pkg/logging"
	"github.com/arthur-debert/rpmvars/pkg/types"
)

// Querier yields the installed package instances for one validated
// package name.
type Querier interface {
	InstalledPackages(ctx context.Context, name string) ([]types.Package, error)
}

// Query format: one marker-prefixed header line per package, then one
// tab-separated line per file. The marker cannot appear in any header
// field, so parsing stays unambiguous.
const (
	pkgMarker   = "=PKG="
	queryFormat = pkgMarker +
		`%{NAME}\t%{EPOCH}\t%{VERSION}\t%{RELEASE}\t%{ARCH}\n` +
		`[%{FILENAMES}\t%{FILEMODES}\t%{FILESIZES}\t%{FILEMTIMES}\t%{FILEDIGESTS}\t` +
		`%{FILEUSERNAME}\t%{FILEGROUPNAME}\t%{FILELINKTOS}\t%{FILEFLAGS}\n]`
)

// RPMQuerier queries the local RPM database via the rpm binary.
type RPMQuerier struct {
	// Bin overrides the rpm binary path; empty means "rpm" from PATH.
	Bin string
}

// InstalledPackages implements Querier. It returns one Package per
// installed NEVRA matching name, with per-file metadata populated.
func (q RPMQuerier) InstalledPackages(ctx context.Context, name string) ([]types.Package, error) {
	logger := logging.GetLogger("rpmquery")

	bin := q.Bin
	if bin == "" {
		bin = "rpm"
	}

	cmd := exec.CommandContext(ctx, bin, "-q", "--queryformat", queryFormat, name)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().Str("bin", bin).Str("package", name).Msg("querying rpm database")

	if err := cmd.Run(); err != nil {
		combined := stdout.String() + stderr.String()
		if strings.Contains(combined, "is not installed") {
			return nil, errors.Newf(errors.ErrPackageNotFound, "package not installed: %s", name)
		}
		if execErr, ok := err.(*exec.Error); ok && execErr.Err == exec.ErrNotFound {
			return nil, errors.Wrap(err, errors.ErrQueryBackend, "rpm binary is unavailable")
		}
		return nil, errors.Wrap(err, errors.ErrQueryBackend, "rpm query failed")
	}

	pkgs, err := parseDump(stdout.String())
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf(errors.ErrPackageNotFound, "package not installed: %s", name)
	}

	logger.Debug().Int("packages", len(pkgs)).Msg("rpm query complete")
	return pkgs, nil
}
