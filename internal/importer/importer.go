// Package importer turns raw bank-statement exports into normalized
// transactions ready for bulk insertion.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/skarbnik-dev/skarbnik/internal/categorize"
	"github.com/skarbnik-dev/skarbnik/internal/model"
	"github.com/skarbnik-dev/skarbnik/internal/normalize"
)

// ErrEmptyFile reports a statement that decoded to zero rows. It aborts the
// whole import; nothing is persisted.
var ErrEmptyFile = errors.New("no rows decoded from statement")

// Importer runs the decode → normalize → categorize pipeline over one
// statement file.
type Importer struct {
	normalizer *normalize.Normalizer
	log        zerolog.Logger
}

// New creates an Importer.
func New(normalizer *normalize.Normalizer, log zerolog.Logger) *Importer {
	return &Importer{normalizer: normalizer, log: log}
}

// Import reads a headerless Windows-1250 CSV export and returns one
// transaction per row, in input order. Rows are processed sequentially so
// repeated dates within a file hit the warm rate cache instead of issuing
// concurrent lookups for the same (currency, date) pair. Malformed rows
// degrade to documented defaults; only an empty decode fails the batch.
func (imp *Importer) Import(ctx context.Context, r io.Reader, sourceFile string) ([]model.Transaction, error) {
	decoded := transform.NewReader(r, charmap.Windows1250.NewDecoder())

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1 // field count is not enforced, rows parse defensively
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, sourceFile)
	}

	txns := make([]model.Transaction, 0, len(records))
	for _, rec := range records {
		txn := imp.normalizer.Normalize(ctx, normalize.RawRow(rec), sourceFile)
		txn.Category = categorize.Categorize(txn.Title, txn.Sender, txn.Amount)
		txns = append(txns, txn)
	}

	imp.log.Info().
		Str("file", sourceFile).
		Int("rows", len(txns)).
		Msg("statement decoded")
	return txns, nil
}

// ImportFile runs Import on a file path, tagging rows with the base name.
func (imp *Importer) ImportFile(ctx context.Context, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	return imp.Import(ctx, f, filepath.Base(path))
}
