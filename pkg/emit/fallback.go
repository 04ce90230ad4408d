package emit

import (
	"io"
	"strings"

	"github.com/arthur-debert/rpmvars/pkg/types"
)

// FallbackEncoder renders the document without any yaml library, in a
// fixed line-oriented block format. Its exact output is a compatibility
// contract: all five categories appear in fixed order even when empty
// (with no children), follow/force are always emitted including when
// false, and every other property is emitted only when non-empty.
type FallbackEncoder struct{}

// Encode implements Encoder.
func (FallbackEncoder) Encode(w io.Writer, doc *types.Document) error {
	var lines []string
	lines = append(lines, "files:")

	for _, cat := range types.CategoryOrder() {
		lines = append(lines, "  "+string(cat)+":")
		for _, entry := range *doc.Group(cat) {
			lines = append(lines, "    "+entry.Key+":")
			lines = append(lines, itemLines(entry.Item)...)
		}
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// itemLines renders one item's properties in the fixed property order.
func itemLines(item types.ConfigItem) []string {
	lines := make([]string, 0, 8)

	emit := func(name, value string) {
		lines = append(lines, "      "+name+": "+value)
	}

	// Booleans are intentionally written even when false.
	emit("follow", boolScalar(item.Follow))
	emit("force", boolScalar(item.Force))

	for _, prop := range []struct {
		name  string
		value string
	}{
		{"group", item.Group},
		{"mode", item.Mode},
		{"owner", item.Owner},
		{"path", item.Path},
		{"state", item.State},
		{"src", item.Src},
	} {
		if prop.value != "" {
			emit(prop.name, quoteScalar(prop.value))
		}
	}

	return lines
}

func boolScalar(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// quoteScalar single-quotes a string, doubling embedded single quotes.
func quoteScalar(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
