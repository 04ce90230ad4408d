package rpmquery

import (
	"context"
	"encoding/json"
	"os"

	"github.com/arthur-debert/rpmvars/pkg/errors"
	"github.com/arthur-debert/rpmvars/pkg/types"
)

// FileQuerier reads package dumps from a JSON file instead of the RPM
// database. The file holds a list of package objects in the same shape
// the rpm-backed querier produces, which makes offline runs and fixtures
// possible.
type FileQuerier struct {
	Path string
}

// InstalledPackages implements Querier. Packages whose name does not
// match are filtered out; an empty result is a not-found error, same as
// the database-backed path.
func (q FileQuerier) InstalledPackages(_ context.Context, name string) ([]types.Package, error) {
	pkgs, err := LoadDump(q.Path)
	if err != nil {
		return nil, err
	}

	matched := pkgs[:0]
	for _, pkg := range pkgs {
		if pkg.Name == name {
			matched = append(matched, pkg)
		}
	}
	if len(matched) == 0 {
		return nil, errors.Newf(errors.ErrPackageNotFound, "package not in dump: %s", name)
	}
	return matched, nil
}

// LoadDump reads a list of package objects from a JSON file.
func LoadDump(path string) ([]types.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrQueryBackend, "failed to read dump %s", path)
	}

	var pkgs []types.Package
	if err := json.Unmarshal(data, &pkgs); err != nil {
		return nil, errors.Wrapf(err, errors.ErrQueryParse, "failed to parse dump %s", path)
	}
	return pkgs, nil
}
