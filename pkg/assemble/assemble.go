// Package assemble builds the grouped output document from deduplicated
// file records. It orchestrates classification, key derivation and item
// construction; the result is deterministic for a fixed input order.
package assemble

import (
	"github.com/arthur-debert/rpmvars/pkg/classify"
	"github.com/arthur-debert/rpmvars/pkg/keys"
	"github.com/arthur-debert/rpmvars/pkg/logging"
	"github.com/arthur-debert/rpmvars/pkg/types"
)

// Assemble builds the final document from an ordered record sequence.
// One key set spans all five categories, so keys are unique across the
// whole document, not per category. Every category is present in the
// result, possibly empty.
func Assemble(records []types.FileRecord) *types.Document {
	logger := logging.GetLogger("assemble")

	doc := &types.Document{}
	used := keys.NewSet()

	for _, rec := range records {
		cat := classify.Classify(rec)
		key := keys.Sanitize(rec.Path, used)
		doc.Group(cat).Add(key, BuildItem(rec))
	}

	logger.Debug().
		Int("records", len(records)).
		Int("entries", doc.Len()).
		Msg("document assembled")

	return doc
}
