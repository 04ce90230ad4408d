package types

import "gopkg.in/yaml.v3"

// States a ConfigItem can carry.
const (
	StateFile      = "file"
	StateDirectory = "directory"
	StateLink      = "link"
)

// ConfigItem is the per-file output record consumed by downstream
// automation tooling. Field declaration order is the property emission
// order and is a stable contract; do not reorder.
type ConfigItem struct {
	Follow bool   `yaml:"follow" json:"follow"`
	Force  bool   `yaml:"force" json:"force"`
	Group  string `yaml:"group" json:"group"`
	Mode   string `yaml:"mode" json:"mode"`
	Owner  string `yaml:"owner" json:"owner"`
	Path   string `yaml:"path" json:"path"`
	State  string `yaml:"state" json:"state"`
	// Src is set only for state=link when the link target resolves.
	Src string `yaml:"src,omitempty" json:"src,omitempty"`
}

// Entry is one key/item pair inside a category group.
type Entry struct {
	Key  string
	Item ConfigItem
}

// Group is an insertion-ordered key to ConfigItem mapping. A plain Go map
// would lose insertion order under yaml marshaling (keys get sorted), so
// the group is a slice that marshals itself as a mapping node.
type Group []Entry

// Add appends a key/item pair. Key uniqueness is the caller's concern
// (the sanitizer guarantees it document-wide).
func (g *Group) Add(key string, item ConfigItem) {
	*g = append(*g, Entry{Key: key, Item: item})
}

// MarshalYAML renders the group as a mapping with keys in insertion order.
func (g Group) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range g {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(e.Item); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// Files holds the five category groups. Field order matches the fixed
// category emission order.
type Files struct {
	Configuration Group `yaml:"configuration"`
	Artifacts     Group `yaml:"artifacts"`
	Docs          Group `yaml:"docs"`
	Licenses      Group `yaml:"licenses"`
	General       Group `yaml:"general"`
}

// Document is the top-level output structure, built fresh per assembly
// and never mutated after it.
type Document struct {
	Files Files `yaml:"files"`
}

// Group returns the mutable group for the given category. Unknown
// categories map to the artifacts catch-all.
func (d *Document) Group(c Category) *Group {
	switch c {
	case CategoryConfiguration:
		return &d.Files.Configuration
	case CategoryDocs:
		return &d.Files.Docs
	case CategoryLicenses:
		return &d.Files.Licenses
	case CategoryGeneral:
		return &d.Files.General
	default:
		return &d.Files.Artifacts
	}
}

// Len returns the total number of entries across all categories.
func (d *Document) Len() int {
	n := 0
	for _, c := range CategoryOrder() {
		n += len(*d.Group(c))
	}
	return n
}
