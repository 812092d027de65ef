package pipeline

import (
	"strings"
	"testing"
	"time"

	"tgju/internal"
)

func reportEnvelope(gold, coins, currencies map[string]internal.Record) internal.Envelope {
	return internal.Envelope{
		Status: internal.StatusSuccess,
		Summary: &internal.Summary{
			TotalCurrencies: len(currencies),
			TotalGold:       len(gold),
			TotalCoins:      len(coins),
			TotalItems:      len(currencies) + len(gold) + len(coins),
		},
		Data:        &internal.CategoryMaps{Currencies: currencies, Gold: gold, Coins: coins},
		Source:      SourceLabel,
		LastUpdated: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

func TestFormatReportError(t *testing.T) {
	got := FormatReport(internal.ErrorEnvelope("boom"))
	if got != "Error fetching data: boom" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatReportSkipsPlaceholderPrices(t *testing.T) {
	gold := map[string]internal.Record{
		"gold_18_ayar": {Key: "gold_18_ayar", Name: "طلای 18 عیار", Price: "-", Category: internal.CategoryGold},
	}
	report := FormatReport(reportEnvelope(gold, nil, nil))

	if strings.Contains(report, "gold_18_ayar") {
		t.Fatalf("placeholder price rendered:\n%s", report)
	}
	if !strings.Contains(report, "*No data found*") {
		t.Fatalf("missing no-data marker:\n%s", report)
	}
}

func TestFormatReportSortsByName(t *testing.T) {
	currencies := map[string]internal.Record{
		"yuan":   {Key: "yuan", Name: "یوان چین", Price: "8,000", Change: "+10", Category: internal.CategoryCurrency},
		"dollar": {Key: "dollar", Name: "دلار آمریکا", Price: "58,000", Change: "+120", Category: internal.CategoryCurrency},
		"euro":   {Key: "euro", Name: "یورو", Price: "62,000", Change: "-90", Category: internal.CategoryCurrency},
	}
	report := FormatReport(reportEnvelope(nil, nil, currencies))

	dollar := strings.Index(report, "dollar")
	yuan := strings.Index(report, "yuan")
	euro := strings.Index(report, "euro")
	if dollar < 0 || yuan < 0 || euro < 0 {
		t.Fatalf("missing rows:\n%s", report)
	}
	// دلار sorts before یوان and یورو
	if !(dollar < yuan && dollar < euro) {
		t.Fatalf("rows out of order:\n%s", report)
	}
}

func TestFormatReportSectionOrder(t *testing.T) {
	report := FormatReport(reportEnvelope(nil, nil, nil))
	gold := strings.Index(report, "Gold")
	coins := strings.Index(report, "Coins")
	currencies := strings.Index(report, "Currencies")
	if !(gold < coins && coins < currencies) {
		t.Fatalf("section order wrong:\n%s", report)
	}
}
