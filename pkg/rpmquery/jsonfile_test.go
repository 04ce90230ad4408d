package rpmquery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rpmvars/pkg/errors"
)

const sampleJSON = `[
  {
    "name": "shadow-utils",
    "epoch": null,
    "version": "4.14.5",
    "release": "27.el9",
    "arch": "x86_64",
    "nevra": "shadow-utils-4.14.5-27.el9.x86_64",
    "files": [
      {
        "path": "/etc/default/useradd",
        "size": 123,
        "mtime": 1690000000,
        "mode": "0644",
        "owner": "root",
        "group": "root",
        "flags": ["config"],
        "flags_raw": 1,
        "type": "file"
      },
      {
        "path": "/usr/sbin/adduser",
        "size": 7,
        "mtime": 1690000000,
        "mode": "0777",
        "owner": "root",
        "group": "root",
        "linkto": "useradd",
        "flags": [],
        "flags_raw": 0,
        "type": "link"
      }
    ]
  },
  {
    "name": "other-package",
    "epoch": 1,
    "version": "1.0",
    "release": "1.el9",
    "arch": "noarch",
    "nevra": "other-package-1:1.0-1.el9.noarch",
    "files": []
  }
]`

func writeDump(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDump(t *testing.T) {
	pkgs, err := LoadDump(writeDump(t, sampleJSON))
	require.NoError(t, err)
	require.Len(t, pkgs, 2)

	assert.Equal(t, "shadow-utils", pkgs[0].Name)
	assert.Nil(t, pkgs[0].Epoch)
	require.Len(t, pkgs[0].Files, 2)
	assert.Equal(t, "useradd", pkgs[0].Files[1].LinkTo)

	require.NotNil(t, pkgs[1].Epoch)
	assert.Equal(t, 1, *pkgs[1].Epoch)
}

func TestFileQuerierFiltersByName(t *testing.T) {
	q := FileQuerier{Path: writeDump(t, sampleJSON)}

	pkgs, err := q.InstalledPackages(context.Background(), "shadow-utils")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "shadow-utils", pkgs[0].Name)
}

func TestFileQuerierNameNotInDump(t *testing.T) {
	q := FileQuerier{Path: writeDump(t, sampleJSON)}

	_, err := q.InstalledPackages(context.Background(), "bash")
	require.Error(t, err)
	assert.Equal(t, errors.ErrPackageNotFound, errors.GetErrorCode(err))
}

func TestLoadDumpToleratesWrongTypedFields(t *testing.T) {
	// Dumps from other tooling sometimes carry a numeric mode or a
	// scalar flags field. Those records degrade to usable values
	// instead of failing the whole load.
	dump := `[
	  {
	    "name": "shadow-utils",
	    "version": "4.14.5",
	    "release": "27.el9",
	    "arch": "x86_64",
	    "files": [
	      {"path": "/etc/default/useradd", "mode": 644, "owner": "root", "group": "root", "flags": "config", "type": "file"},
	      {"path": "/usr/bin/useradd", "owner": "root", "group": "root", "flags": ["config", 7], "type": "file"}
	    ]
	  }
	]`

	pkgs, err := LoadDump(writeDump(t, dump))
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	require.Len(t, pkgs[0].Files, 2)

	assert.Equal(t, "644", pkgs[0].Files[0].Mode)
	assert.Empty(t, pkgs[0].Files[0].Flags)

	assert.Equal(t, "", pkgs[0].Files[1].Mode)
	assert.Equal(t, []string{"config"}, pkgs[0].Files[1].Flags)
}

func TestLoadDumpErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDump(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Equal(t, errors.ErrQueryBackend, errors.GetErrorCode(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadDump(writeDump(t, "{not json"))
		require.Error(t, err)
		assert.Equal(t, errors.ErrQueryParse, errors.GetErrorCode(err))
	})
}
