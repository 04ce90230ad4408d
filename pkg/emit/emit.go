// Package emit serializes an assembled document to a destination sink.
//
// Two interchangeable encoders implement one writer capability: the
// yaml.v3 based encoder (preferred) and a deterministic line-oriented
// fallback whose literal text format is a compatibility contract of its
// own. Documents are always encoded fully in memory before any byte
// reaches the sink, so a failed encode never partially writes.
package emit

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/rpmvars/pkg/errors"
	"github.com/arthur-debert/rpmvars/pkg/logging"
	"github.com/arthur-debert/rpmvars/pkg/types"
)

// Encoder renders a document into a writer.
type Encoder interface {
	Encode(w io.Writer, doc *types.Document) error
}

// YAMLEncoder renders the document with gopkg.in/yaml.v3 in block style,
// 2-space indent, with key order preserved exactly as constructed.
type YAMLEncoder struct{}

// Encode implements Encoder.
func (YAMLEncoder) Encode(w io.Writer, doc *types.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, errors.ErrDocumentEncode, "yaml encoding failed")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrDocumentEncode, "yaml encoder close failed")
	}
	return nil
}

// WriteFile encodes doc with enc and writes the result to path in one
// write. Encode failures and sink failures carry distinct error codes.
func WriteFile(path string, doc *types.Document, enc Encoder) error {
	logger := logging.GetLogger("emit")

	var buf bytes.Buffer
	if err := enc.Encode(&buf, doc); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrDocumentWrite, "failed to write %s", path)
	}

	logger.Debug().Str("path", path).Int("bytes", buf.Len()).Msg("document written")
	return nil
}
