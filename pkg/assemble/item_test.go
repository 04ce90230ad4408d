package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/rpmvars/pkg/types"
)

func TestBuildItem(t *testing.T) {
	tests := []struct {
		name     string
		record   types.FileRecord
		expected types.ConfigItem
	}{
		{
			name: "regular file",
			record: types.FileRecord{
				Path:  "/etc/default/useradd",
				Mode:  "0644",
				Owner: "root",
				Group: "root",
				Type:  "file",
			},
			expected: types.ConfigItem{
				Follow: false,
				Force:  true,
				Group:  "root",
				Mode:   "0644",
				Owner:  "root",
				Path:   "/etc/default/useradd",
				State:  "file",
			},
		},
		{
			name: "directory",
			record: types.FileRecord{
				Path: "/usr/share/foo",
				Mode: "0755",
				Type: "dir",
			},
			expected: types.ConfigItem{
				Force: true,
				Group: "root",
				Mode:  "0755",
				Owner: "root",
				Path:  "/usr/share/foo",
				State: "directory",
			},
		},
		{
			name: "symlink with relative target resolves src",
			record: types.FileRecord{
				Path:   "/usr/sbin/service",
				Mode:   "0777",
				Type:   "link",
				LinkTo: "../bin/sh",
			},
			expected: types.ConfigItem{
				Force: true,
				Group: "root",
				Mode:  "0777",
				Owner: "root",
				Path:  "/usr/sbin/service",
				State: "link",
				Src:   "/usr/bin/sh",
			},
		},
		{
			name: "symlink without target omits src",
			record: types.FileRecord{
				Path: "/usr/bin/dangling",
				Type: "link",
			},
			expected: types.ConfigItem{
				Force: true,
				Group: "root",
				Owner: "root",
				Path:  "/usr/bin/dangling",
				State: "link",
			},
		},
		{
			name: "custom ownership is kept",
			record: types.FileRecord{
				Path:  "/var/spool/mail",
				Mode:  "0775",
				Owner: "mail",
				Group: "mail",
				Type:  "dir",
			},
			expected: types.ConfigItem{
				Force: true,
				Group: "mail",
				Mode:  "0775",
				Owner: "mail",
				Path:  "/var/spool/mail",
				State: "directory",
			},
		},
		{
			name:   "empty record degrades to defaults",
			record: types.FileRecord{},
			expected: types.ConfigItem{
				Force: true,
				Group: "root",
				Owner: "root",
				State: "file",
			},
		},
		{
			name: "unknown type defaults to file",
			record: types.FileRecord{
				Path: "/dev/weird",
				Type: "other",
			},
			expected: types.ConfigItem{
				Force: true,
				Group: "root",
				Owner: "root",
				Path:  "/dev/weird",
				State: "file",
			},
		},
		{
			name: "symlink spelled out resolves the same",
			record: types.FileRecord{
				Path:   "/usr/bin/vi",
				Type:   "symlink",
				LinkTo: "vim",
			},
			expected: types.ConfigItem{
				Force: true,
				Group: "root",
				Owner: "root",
				Path:  "/usr/bin/vi",
				State: "link",
				Src:   "/usr/bin/vim",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildItem(tt.record))
		})
	}
}

func TestStateFromType(t *testing.T) {
	assert.Equal(t, "directory", stateFromType("dir"))
	assert.Equal(t, "directory", stateFromType("DIRECTORY"))
	assert.Equal(t, "link", stateFromType("link"))
	assert.Equal(t, "link", stateFromType("symlink"))
	assert.Equal(t, "file", stateFromType("file"))
	assert.Equal(t, "file", stateFromType(""))
	assert.Equal(t, "file", stateFromType("other"))
}
