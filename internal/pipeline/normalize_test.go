package pipeline

import (
	"testing"
	"time"

	"tgju/internal"
)

func TestNormalizeRowRejects(t *testing.T) {
	now := time.Now()
	opts := Options{Keys: KeyTransliterate}

	cases := []struct {
		label string
		cells []string
	}{
		{"too few cells", []string{"دلار آمریکا", "58,000", "+120", "57,800", "58,100"}},
		{"empty name", []string{"", "58,000", "+120", "57,800", "58,100", "14:32"}},
		{"empty price", []string{"دلار آمریکا", "", "+120", "57,800", "58,100", "14:32"}},
		{"no category", []string{"شاخص بورس", "2,100", "+3", "2,000", "2,200", "14:32"}},
	}
	for _, tc := range cases {
		if _, ok := opts.NormalizeRow(tc.cells, now); ok {
			t.Fatalf("%s: row accepted", tc.label)
		}
	}
}

func TestNormalizeRowAccepts(t *testing.T) {
	now := time.Now()
	opts := Options{Keys: KeyTransliterate}

	rec, ok := opts.NormalizeRow([]string{"دلار آمریکا", "58,000", "+120", "57,800", "58,100", "14:32"}, now)
	if !ok {
		t.Fatal("row rejected")
	}
	if rec.Category != internal.CategoryCurrency {
		t.Fatalf("category=%q", rec.Category)
	}
	if rec.Key != "dollar" || rec.Price != "58,000" || rec.Time != "14:32" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !rec.Timestamp.Equal(now) {
		t.Fatalf("timestamp=%v", rec.Timestamp)
	}
}

func TestNormalizeRowLiteralVariant(t *testing.T) {
	opts := Options{Keys: KeyLiteral, PadShortRows: true}

	rec, ok := opts.NormalizeRow([]string{"سکه امامی", "41,000,000", "-", "-", "-", ""}, time.Now())
	if !ok {
		t.Fatal("row rejected")
	}
	if rec.Key != "سکه_امامی" {
		t.Fatalf("key=%q", rec.Key)
	}
	if rec.Time != "" {
		t.Fatalf("time=%q", rec.Time)
	}
}
