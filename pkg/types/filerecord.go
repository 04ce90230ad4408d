package types

import "encoding/json"

// FileRecord is one file, directory or symlink entry belonging to an
// installed package, as reported by the package metadata store. It is
// read-only input: the pipeline derives new structures from it and never
// mutates it.
//
// Fields may be absent in malformed input; consumers must degrade to
// documented defaults instead of failing (empty flag set, "file" state,
// "root" owner/group, empty mode).
type FileRecord struct {
	Path     string   `json:"path"`
	Size     int64    `json:"size"`
	Mtime    int64    `json:"mtime"`
	Digest   string   `json:"digest,omitempty"`
	Mode     string   `json:"mode"`
	Owner    string   `json:"owner"`
	Group    string   `json:"group"`
	LinkTo   string   `json:"linkto,omitempty"`
	Flags    []string `json:"flags"`
	FlagsRaw int      `json:"flags_raw"`
	Type     string   `json:"type"`
}

// UnmarshalJSON tolerates wrong-typed mode and flags fields instead of
// failing the whole record: a numeric mode becomes its decimal string
// form, anything non-list in flags becomes an empty set, and non-string
// list elements are dropped.
func (r *FileRecord) UnmarshalJSON(data []byte) error {
	type plain FileRecord
	aux := struct {
		Mode  json.RawMessage `json:"mode"`
		Flags json.RawMessage `json:"flags"`
		*plain
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Mode = looseString(aux.Mode)
	r.Flags = looseStringList(aux.Flags)
	return nil
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func looseStringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var items []interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	list = make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}
	return list
}

// Package is one installed instance of a logical package name, identified
// by its NEVRA. Several Package values can exist for one name (multilib,
// multiple installed versions); the merge step flattens their file lists.
type Package struct {
	Name       string       `json:"name"`
	Epoch      *int         `json:"epoch"`
	Version    string       `json:"version"`
	Release    string       `json:"release"`
	Arch       string       `json:"arch"`
	NEVRA      string       `json:"nevra"`
	DigestAlgo int          `json:"digest_algo,omitempty"`
	Files      []FileRecord `json:"files"`
}
