package pipeline

import (
	"strings"

	"tgju/internal"
)

// Keyword lists matching the row labels the source site uses.
var (
	currencyKeywords = []string{
		"دلار", "یورو", "پوند", "درهم", "یوان", "ین", "کرون", "لیر",
		"دینار", "روپیه", "فرانک", "رینگیت", "بیت کوین", "لایت کوین",
		"دوج کوین", "بایننس", "شیبا", "تون", "پلاتین",
	}
	goldKeywords = []string{"طلا", "gold", "مثقال", "انس طلا", "صندوق طلا"}
	coinKeywords = []string{"سکه", "حباب", "تمام سکه"}
)

// Categorize maps a display name to its category. Lists are checked in
// the order currency, gold, coin and the first match wins; a name that
// carries tokens from several lists keeps the earlier classification.
func Categorize(name string) internal.Category {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, currencyKeywords):
		return internal.CategoryCurrency
	case containsAny(lower, goldKeywords):
		return internal.CategoryGold
	case containsAny(lower, coinKeywords):
		return internal.CategoryCoin
	}
	return internal.CategoryNone
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
