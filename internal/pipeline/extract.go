package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"tgju/internal"
)

// SourceLabel names the page all records are extracted from.
const SourceLabel = "TGJU.org"

// Fetcher loads the source page as a parsed document.
type Fetcher interface {
	Fetch(ctx context.Context) (*goquery.Document, error)
}

// Extractor runs one full scrape of the source page per call. It walks
// every table on the page and relies on row filtering alone; no table
// allowlist exists.
type Extractor struct {
	fetcher Fetcher
	opts    Options
	now     func() time.Time
}

func NewExtractor(f Fetcher, opts Options) *Extractor {
	return &Extractor{fetcher: f, opts: opts, now: time.Now}
}

// ExtractAll fetches the page and builds the full Envelope. A fetch or
// parse failure yields an error Envelope with no partial data.
func (x *Extractor) ExtractAll(ctx context.Context) internal.Envelope {
	doc, err := x.fetcher.Fetch(ctx)
	if err != nil {
		return internal.ErrorEnvelope(fmt.Sprintf("extraction failed: %v", err))
	}

	maps := internal.CategoryMaps{
		Currencies: map[string]internal.Record{},
		Gold:       map[string]internal.Record{},
		Coins:      map[string]internal.Record{},
	}

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			var cells []string
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})

			rec, ok := x.opts.NormalizeRow(cells, x.now())
			if !ok {
				return
			}
			// Colliding keys overwrite: last row in document order wins.
			maps.ByCategory(rec.Category)[rec.Key] = rec
		})
	})

	return internal.Envelope{
		Status: internal.StatusSuccess,
		Summary: &internal.Summary{
			TotalCurrencies: len(maps.Currencies),
			TotalGold:       len(maps.Gold),
			TotalCoins:      len(maps.Coins),
			TotalItems:      len(maps.Currencies) + len(maps.Gold) + len(maps.Coins),
		},
		Data:        &maps,
		Source:      SourceLabel,
		LastUpdated: x.now().Format(time.RFC3339),
	}
}

// CurrenciesOnly re-runs the full pipeline and projects the currency map.
func (x *Extractor) CurrenciesOnly(ctx context.Context) internal.CategoryView {
	return categoryView(x.ExtractAll(ctx), internal.CategoryCurrency)
}

// GoldOnly re-runs the full pipeline and projects the gold map.
func (x *Extractor) GoldOnly(ctx context.Context) internal.CategoryView {
	return categoryView(x.ExtractAll(ctx), internal.CategoryGold)
}

// CoinsOnly re-runs the full pipeline and projects the coin map.
func (x *Extractor) CoinsOnly(ctx context.Context) internal.CategoryView {
	return categoryView(x.ExtractAll(ctx), internal.CategoryCoin)
}

func categoryView(env internal.Envelope, cat internal.Category) internal.CategoryView {
	if !env.OK() {
		return internal.CategoryView{Status: env.Status, Message: env.Message}
	}
	items := env.Data.ByCategory(cat)
	return internal.CategoryView{
		Status:      internal.StatusSuccess,
		Count:       len(items),
		Category:    cat,
		Items:       items,
		LastUpdated: env.LastUpdated,
	}
}

// Search re-runs the full pipeline and returns every record whose
// display name contains term, case-insensitively. No matches is a
// success with an empty result list.
func (x *Extractor) Search(ctx context.Context, term string) internal.SearchResult {
	env := x.ExtractAll(ctx)
	if !env.OK() {
		return internal.SearchResult{Status: env.Status, Message: env.Message, SearchTerm: term}
	}

	needle := strings.ToLower(term)
	hits := []internal.SearchHit{}
	for _, cat := range []internal.Category{internal.CategoryCurrency, internal.CategoryGold, internal.CategoryCoin} {
		items := env.Data.ByCategory(cat)
		keys := make([]string, 0, len(items))
		for k := range items {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if strings.Contains(strings.ToLower(items[k].Name), needle) {
				hits = append(hits, internal.SearchHit{Category: cat, Item: items[k]})
			}
		}
	}

	return internal.SearchResult{
		Status:       internal.StatusSuccess,
		SearchTerm:   term,
		ResultsCount: len(hits),
		Results:      hits,
	}
}
