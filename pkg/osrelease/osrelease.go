// Package osrelease detects the host OS family from /etc/os-release
// for validation-policy auto-selection.
package osrelease

import (
	"bufio"
	"os"
	"strings"
)

// DefaultPath is the canonical os-release location.
const DefaultPath = "/etc/os-release"

// Read parses an os-release file into a key/value map. Values are
// lowercased for stable matching; keys are kept as-is. Any read failure
// yields an empty map, never an error: detection degrades to defaults.
func Read(path string) map[string]string {
	if path == "" {
		path = DefaultPath
	}

	data := make(map[string]string)
	f, err := os.Open(path)
	if err != nil {
		return data
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}
		key, rawVal, _ := strings.Cut(line, "=")
		data[strings.TrimSpace(key)] = strings.ToLower(unquote(rawVal))
	}
	return data
}

// unquote strips one layer of surrounding single or double quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// DetectDistro picks one of choices by strict precedence:
//
//  1. ID matches a choice exactly
//  2. the first ID_LIKE token matching a choice
//  3. the default, when provided and present in choices
//  4. the first non-"auto" choice
//  5. the first choice, or "" when choices is empty
func DetectDistro(choices []string, def string, path string) string {
	lowered := make([]string, len(choices))
	for i, c := range choices {
		lowered[i] = strings.ToLower(c)
	}
	index := func(want string) int {
		for i, c := range lowered {
			if c == want {
				return i
			}
		}
		return -1
	}

	osr := Read(path)
	osID := strings.TrimSpace(osr["ID"])
	idLike := strings.TrimSpace(osr["ID_LIKE"])

	if osID != "" {
		if i := index(osID); i >= 0 {
			return choices[i]
		}
	}

	for _, token := range strings.Fields(idLike) {
		if i := index(token); i >= 0 {
			return choices[i]
		}
	}

	if def != "" {
		if i := index(strings.ToLower(def)); i >= 0 {
			return choices[i]
		}
	}

	for i, label := range lowered {
		if label != "auto" {
			return choices[i]
		}
	}

	if len(choices) > 0 {
		return choices[0]
	}
	return ""
}
