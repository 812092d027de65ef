package internal

import "time"

// Category of a tracked instrument.
type Category string

const (
	CategoryCurrency Category = "currency"
	CategoryGold     Category = "gold"
	CategoryCoin     Category = "coin"
	CategoryNone     Category = ""
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Record is one normalized price entry for a single instrument.
// Price fields keep the source's display strings untouched.
type Record struct {
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Change    string    `json:"change"`
	MinPrice  string    `json:"min_price"`
	MaxPrice  string    `json:"max_price"`
	Time      string    `json:"time"`
	Timestamp time.Time `json:"timestamp"`
	Category  Category  `json:"category"`
}

type Summary struct {
	TotalCurrencies int `json:"total_currencies"`
	TotalGold       int `json:"total_gold"`
	TotalCoins      int `json:"total_coins"`
	TotalItems      int `json:"total_items"`
}

// CategoryMaps holds the three per-category record maps, keyed by derived key.
type CategoryMaps struct {
	Currencies map[string]Record `json:"currencies"`
	Gold       map[string]Record `json:"gold"`
	Coins      map[string]Record `json:"coins"`
}

func (m *CategoryMaps) ByCategory(c Category) map[string]Record {
	switch c {
	case CategoryCurrency:
		return m.Currencies
	case CategoryGold:
		return m.Gold
	case CategoryCoin:
		return m.Coins
	}
	return nil
}

// Envelope is the top-level result of one extraction pass. An error
// envelope carries only Status and Message, never partial data.
type Envelope struct {
	Status      string        `json:"status"`
	Message     string        `json:"message,omitempty"`
	Summary     *Summary      `json:"summary,omitempty"`
	Data        *CategoryMaps `json:"data,omitempty"`
	Source      string        `json:"source,omitempty"`
	LastUpdated string        `json:"last_updated,omitempty"`
}

func (e Envelope) OK() bool { return e.Status == StatusSuccess }

func ErrorEnvelope(msg string) Envelope {
	return Envelope{Status: StatusError, Message: msg}
}

// CategoryView projects a single category out of a full Envelope.
type CategoryView struct {
	Status      string            `json:"status"`
	Message     string            `json:"message,omitempty"`
	Count       int               `json:"count"`
	Category    Category          `json:"category,omitempty"`
	Items       map[string]Record `json:"items,omitempty"`
	LastUpdated string            `json:"last_updated,omitempty"`
}

type SearchHit struct {
	Category Category `json:"category"`
	Item     Record   `json:"item"`
}

type SearchResult struct {
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	SearchTerm   string      `json:"search_term"`
	ResultsCount int         `json:"results_count"`
	Results      []SearchHit `json:"results"`
}
