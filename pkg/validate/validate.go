// Package validate checks package names against per-distro allow-list
// policies. The policy registry is data-driven (an embedded TOML file),
// ASCII-only and fail-closed; no regular expressions are involved.
//
// Error messages stay generic and never echo the untrusted input.
package validate

import (
	_ "embed"
	"sort"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/rpmvars/pkg/errors"
)

//go:embed policies.toml
var policiesTOML []byte

// Policy describes the name rules for one distro/ecosystem.
type Policy struct {
	MinLen         int    `toml:"min_len"`
	MaxLen         int    `toml:"max_len"`
	StartChars     string `toml:"start_chars"`
	AllowedChars   string `toml:"allowed_chars"`
	ForbiddenChars string `toml:"forbidden_chars"`
}

type registry struct {
	Policies map[string]Policy `toml:"policies"`
}

var (
	loadOnce sync.Once
	policies map[string]Policy
	loadErr  error
)

func loadPolicies() (map[string]Policy, error) {
	loadOnce.Do(func() {
		var reg registry
		if err := toml.Unmarshal(policiesTOML, &reg); err != nil {
			loadErr = errors.Wrap(err, errors.ErrConfigParse, "failed to parse policy registry")
			return
		}
		policies = reg.Policies
	})
	return policies, loadErr
}

// Distros returns the sorted list of supported distro keywords.
func Distros() []string {
	reg, err := loadPolicies()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// PackageName validates a package name under the given distro's policy
// and returns the trimmed name. Surrounding whitespace is trimmed; inner
// whitespace is rejected.
func PackageName(name, distro string) (string, error) {
	reg, err := loadPolicies()
	if err != nil {
		return "", err
	}

	policy, ok := reg[strings.ToLower(strings.TrimSpace(distro))]
	if !ok {
		return "", errors.Newf(errors.ErrDistroUnsupported,
			"unsupported distro, supported: %s", strings.Join(Distros(), ", "))
	}

	s := strings.TrimSpace(name)

	// ASCII-only: blocks Unicode confusables and control characters.
	for _, r := range s {
		if r > 127 {
			return "", errors.New(errors.ErrNameInvalid, "package name must be ASCII")
		}
		if r < 32 || r == 127 || r == ' ' || r == '\t' {
			return "", errors.New(errors.ErrNameInvalid, "package name must not contain whitespace or control characters")
		}
	}

	if len(s) < policy.MinLen {
		return "", errors.Newf(errors.ErrNameInvalid, "package name must be at least %d characters", policy.MinLen)
	}
	if len(s) > policy.MaxLen {
		return "", errors.Newf(errors.ErrNameInvalid, "package name too long (>%d characters)", policy.MaxLen)
	}

	for _, r := range s {
		if strings.ContainsRune(policy.ForbiddenChars, r) {
			return "", errors.New(errors.ErrNameInvalid, "package name contains reserved characters")
		}
	}

	if !strings.ContainsRune(policy.StartChars, rune(s[0])) {
		return "", errors.New(errors.ErrNameInvalid, "package name must start with a valid alphanumeric character")
	}

	for _, r := range s {
		if !strings.ContainsRune(policy.AllowedChars, r) {
			return "", errors.New(errors.ErrNameInvalid, "package name contains an invalid character")
		}
	}

	return s, nil
}
