package pipeline

import (
	"time"

	"tgju/internal"
)

// minRowCells guards against navigation and layout rows, which never
// reach six cells on the source page.
const minRowCells = 6

// Options fixes the per-run behavior of a pipeline: which key strategy
// tags records and whether trailing cells are padded when absent.
type Options struct {
	Keys         KeyStrategy
	PadShortRows bool
}

// NormalizeRow turns one table row into a Record. A row is dropped when
// it has fewer than six cells, when name or price is empty, or when the
// name matches no category.
func (o Options) NormalizeRow(cells []string, now time.Time) (internal.Record, bool) {
	if len(cells) < minRowCells {
		return internal.Record{}, false
	}
	if cells[0] == "" || cells[1] == "" {
		return internal.Record{}, false
	}

	name := cells[0]
	category := Categorize(name)
	if category == internal.CategoryNone {
		return internal.Record{}, false
	}

	cell := func(i int) string {
		if o.PadShortRows && i >= len(cells) {
			return ""
		}
		return cells[i]
	}

	return internal.Record{
		Key:       o.Keys.Derive(name),
		Name:      name,
		Price:     cells[1],
		Change:    cell(2),
		MinPrice:  cell(3),
		MaxPrice:  cell(4),
		Time:      cell(5),
		Timestamp: now,
		Category:  category,
	}, true
}
