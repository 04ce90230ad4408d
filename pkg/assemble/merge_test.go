package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rpmvars/pkg/types"
)

func TestMergeFiles(t *testing.T) {
	t.Run("first occurrence wins across packages", func(t *testing.T) {
		pkgs := []types.Package{
			{
				NEVRA: "foo-1.0-1.x86_64",
				Files: []types.FileRecord{
					{Path: "/etc/foo.conf", Mode: "0644"},
					{Path: "/usr/bin/foo", Mode: "0755"},
				},
			},
			{
				NEVRA: "foo-1.0-1.i686",
				Files: []types.FileRecord{
					{Path: "/etc/foo.conf", Mode: "0600"},
					{Path: "/usr/lib/libfoo.so", Mode: "0755"},
				},
			},
		}

		merged := MergeFiles(pkgs)
		require.Len(t, merged, 3)

		assert.Equal(t, "/etc/foo.conf", merged[0].Path)
		assert.Equal(t, "0644", merged[0].Mode, "later package's differing mode must be discarded")
		assert.Equal(t, "/usr/bin/foo", merged[1].Path)
		assert.Equal(t, "/usr/lib/libfoo.so", merged[2].Path)
	})

	t.Run("duplicates inside one package are dropped", func(t *testing.T) {
		pkgs := []types.Package{
			{
				Files: []types.FileRecord{
					{Path: "/usr/bin/foo", Owner: "root"},
					{Path: "/usr/bin/foo", Owner: "nobody"},
				},
			},
		}

		merged := MergeFiles(pkgs)
		require.Len(t, merged, 1)
		assert.Equal(t, "root", merged[0].Owner)
	})

	t.Run("empty paths are skipped", func(t *testing.T) {
		pkgs := []types.Package{
			{
				Files: []types.FileRecord{
					{Path: ""},
					{Path: "/usr/bin/foo"},
					{Path: ""},
				},
			},
		}

		merged := MergeFiles(pkgs)
		require.Len(t, merged, 1)
		assert.Equal(t, "/usr/bin/foo", merged[0].Path)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		pkgs := []types.Package{
			{Files: []types.FileRecord{{Path: "/b"}, {Path: "/a"}}},
			{Files: []types.FileRecord{{Path: "/c"}, {Path: "/b"}}},
		}

		merged := MergeFiles(pkgs)
		paths := make([]string, len(merged))
		for i, f := range merged {
			paths[i] = f.Path
		}
		assert.Equal(t, []string{"/b", "/a", "/c"}, paths)
	})

	t.Run("no packages yields no files", func(t *testing.T) {
		assert.Empty(t, MergeFiles(nil))
		assert.Empty(t, MergeFiles([]types.Package{}))
		assert.Empty(t, MergeFiles([]types.Package{{Files: nil}}))
	})
}
