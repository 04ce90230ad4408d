package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "simple path",
			path:     "/etc/default/useradd",
			expected: "etc_default_useradd",
		},
		{
			name:     "case folding and trailing punctuation",
			path:     "/etc/Default/useradd!!",
			expected: "etc_default_useradd",
		},
		{
			name:     "consecutive separators collapse",
			path:     "/usr//share..//doc",
			expected: "usr_share_doc",
		},
		{
			name:     "no leading slash",
			path:     "relative/path",
			expected: "relative_path",
		},
		{
			name:     "dots and dashes become underscores",
			path:     "/usr/lib64/libfoo.so.1.2.3",
			expected: "usr_lib64_libfoo_so_1_2_3",
		},
		{
			name:     "empty path falls back to root",
			path:     "",
			expected: "root",
		},
		{
			name:     "only separators fall back to root",
			path:     "/.../---/",
			expected: "root",
		},
		{
			name:     "non-ascii collapses into underscores",
			path:     "/usr/share/café/menu",
			expected: "usr_share_caf_menu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used := NewSet()
			assert.Equal(t, tt.expected, Sanitize(tt.path, used))
		})
	}
}

func TestSanitizeCollisions(t *testing.T) {
	used := NewSet()

	assert.Equal(t, "etc_default_useradd", Sanitize("/etc/default/useradd", used))
	assert.Equal(t, "etc_default_useradd_2", Sanitize("/etc/Default/useradd!!", used))
	assert.Equal(t, "etc_default_useradd_3", Sanitize("/etc/default/useradd..", used))
}

func TestSanitizeCollisionWithSuffixedKey(t *testing.T) {
	used := NewSet()

	// A path that naturally produces foo_2 occupies the first suffix
	// slot; the colliding base key then jumps to foo_3.
	assert.Equal(t, "foo", Sanitize("/foo", used))
	assert.Equal(t, "foo_2", Sanitize("/foo/2", used))
	assert.Equal(t, "foo_3", Sanitize("/foo!", used))
}

func TestSanitizeRootFallbackCollides(t *testing.T) {
	used := NewSet()

	assert.Equal(t, "root", Sanitize("", used))
	assert.Equal(t, "root_2", Sanitize("/", used))
}

func TestSanitizeDeterministic(t *testing.T) {
	paths := []string{
		"/etc/foo.conf",
		"/etc/foo_conf",
		"/usr/bin/foo",
		"/usr/bin/Foo",
		"",
	}

	run := func() []string {
		used := NewSet()
		out := make([]string, 0, len(paths))
		for _, p := range paths {
			out = append(out, Sanitize(p, used))
		}
		return out
	}

	assert.Equal(t, run(), run())
}
