package pipeline

import (
	"regexp"
	"strings"
)

// KeyStrategy selects how a display name becomes a map key.
type KeyStrategy int

const (
	// KeyTransliterate yields ASCII keys like coin_emami.
	KeyTransliterate KeyStrategy = iota
	// KeyLiteral keeps the original script, lowercased with underscores.
	KeyLiteral
)

func (s KeyStrategy) Derive(name string) string {
	if s == KeyLiteral {
		return LiteralKey(name)
	}
	return TransliterateKey(name)
}

// Substitution table for financial terms, longest entry first so that a
// multi-word name is consumed before any shorter entry it contains
// (e.g. رینگیت before ین).
var transliterations = []struct{ fa, en string }{
	{"بهار آزادی", "bahar_azadi"},
	{"لایت کوین", "litecoin"},
	{"بیت کوین", "bitcoin"},
	{"دوج کوین", "dogecoin"},
	{"رینگیت", "ringgit"},
	{"پلاتین", "platinum"},
	{"بایننس", "binance"},
	{"دینار", "dinar"},
	{"روپیه", "rupee"},
	{"فرانک", "franc"},
	{"مثقال", "mesghal"},
	{"امامی", "emami"},
	{"آبشده", "abshodeh"},
	{"گرمی", "gerami"},
	{"حباب", "bubble"},
	{"دلار", "dollar"},
	{"یورو", "euro"},
	{"پوند", "pound"},
	{"درهم", "dirham"},
	{"یوان", "yuan"},
	{"کرون", "krone"},
	{"شیبا", "shiba"},
	{"عیار", "ayar"},
	{"لیر", "lira"},
	{"تون", "ton"},
	{"سکه", "coin"},
	{"طلا", "gold"},
	{"انس", "ounce"},
	{"ربع", "rob"},
	{"نیم", "nim"},
	{"ین", "yen"},
}

var (
	reNonASCII   = regexp.MustCompile(`[^\x00-\x7F]+`)
	reDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	rePunct      = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// TransliterateKey derives a deterministic ASCII key from a display name.
// Example: سکه امامی -> coin_emami. Never returns an empty string.
func TransliterateKey(name string) string {
	s := strings.ToLower(name)
	for _, t := range transliterations {
		s = strings.ReplaceAll(s, t.fa, t.en)
	}
	s = reNonASCII.ReplaceAllString(s, " ")
	s = reDisallowed.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(strings.TrimSpace(s), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "unknown"
	}
	return s
}

// LiteralKey derives a key without transliteration, so keys round-trip
// to the display name at the cost of non-ASCII characters.
func LiteralKey(name string) string {
	s := rePunct.ReplaceAllString(name, "")
	s = reSpaces.ReplaceAllString(strings.TrimSpace(s), "_")
	s = strings.ToLower(s)
	if s == "" {
		return "unknown"
	}
	return s
}
