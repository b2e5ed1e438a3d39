package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/routegraph/connectivity"
)

// Default column layout of the entity CSV.
const (
	DefaultIDColumn        = 0
	DefaultNameColumn      = 1
	DefaultAttributeColumn = 6
	DefaultMinColumns      = 7
)

// ErrBadColumn is returned for a negative column index or column count.
var ErrBadColumn = errors.New("ingest: column settings must be non-negative")

// EntityOption configures ReadEntities.
type EntityOption func(*entityOptions)

type entityOptions struct {
	log        *zap.Logger
	attrColumn int
	minColumns int
}

// WithLogger sets the logger that receives skipped-row warnings.
// The default discards everything.
func WithLogger(l *zap.Logger) EntityOption {
	return func(o *entityOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithAttributeColumn sets the 0-based column holding the grouping attribute.
func WithAttributeColumn(col int) EntityOption {
	return func(o *entityOptions) { o.attrColumn = col }
}

// WithMinColumns sets the minimum number of columns a row needs to be used.
// It is raised automatically to cover the ID, name and attribute columns.
func WithMinColumns(n int) EntityOption {
	return func(o *entityOptions) { o.minColumns = n }
}

// ReadEntities reads entities from a comma-separated stream with a header row.
//
// Column 0 is the integer ID and column 1 the name. Rows with too few columns
// are skipped silently (logged at debug level). Rows whose ID is not an
// integer are skipped with a warning. Only a broken stream, such as an
// unterminated quote, is returned as an error.
func ReadEntities(r io.Reader, opts ...EntityOption) ([]connectivity.Entity, error) {
	cfg := entityOptions{
		log:        zap.NewNop(),
		attrColumn: DefaultAttributeColumn,
		minColumns: DefaultMinColumns,
	}
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.attrColumn < 0 || cfg.minColumns < 0 {
		return nil, ErrBadColumn
	}
	need := cfg.minColumns
	for _, col := range []int{DefaultIDColumn, DefaultNameColumn, cfg.attrColumn} {
		if col+1 > need {
			need = col + 1
		}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	// Header.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []connectivity.Entity{}, nil
		}
		return nil, fmt.Errorf("ingest: read entity header: %w", err)
	}

	out := make([]connectivity.Entity, 0, 64)
	var short, invalid int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &LineError{Line: pe.Line, Err: pe.Err}
			}
			return nil, fmt.Errorf("ingest: read entities: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < need {
			short++
			cfg.log.Debug("skipping short row",
				zap.Int("line", line),
				zap.Int("columns", len(rec)),
				zap.Int("required", need))
			continue
		}
		id, err := strconv.Atoi(rec[DefaultIDColumn])
		if err != nil {
			invalid++
			cfg.log.Warn("skipping row with non-integer id",
				zap.Int("line", line),
				zap.String("id", rec[DefaultIDColumn]),
				zap.Error(err))
			continue
		}
		out = append(out, connectivity.Entity{
			ID:        id,
			Name:      rec[DefaultNameColumn],
			Attribute: rec[cfg.attrColumn],
		})
	}

	cfg.log.Debug("entities read",
		zap.Int("entities", len(out)),
		zap.Int("short_rows", short),
		zap.Int("invalid_ids", invalid))

	return out, nil
}

// LoadEntities opens path and reads it with ReadEntities.
func LoadEntities(path string, opts ...EntityOption) ([]connectivity.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open entities: %w", err)
	}
	defer f.Close()

	es, err := ReadEntities(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return es, nil
}
