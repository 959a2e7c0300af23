package language

import (
	"math"
	"strings"
	"testing"

	"github.com/go-drift/guikit/pkg/text"
)

const (
	strGreeting StringID = FirstUserString + iota
	strCash
	strNested
)

var testNames = map[string]StringID{
	"GREETING": strGreeting,
	"CASH":     strCash,
	"NESTED":   strNested,
}

func testTable() *Table {
	en := English()
	en.Strings[strGreeting] = "Hello {1}"
	en.Strings[strCash] = "Cash: {1}"
	en.Strings[strNested] = "[{1}]"
	return NewTable(en)
}

func TestFormatMoney(t *testing.T) {
	en := English()
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{123456, "$1,234.56"},
		{-9999999999, "-$99,999,999.99"},
		{math.MinInt64, "-$92,233,720,368,547,758.08"},
	}
	for _, tt := range tests {
		if got := en.FormatMoney(tt.cents); got != tt.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	en := English()
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{-1234567, "-1,234,567"},
	}
	for _, tt := range tests {
		if got := en.FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	en := English()
	if got := en.FormatDate(Date{Day: 3, Month: 7, Year: 2001}); got != "3 Jul 2001" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := en.FormatDate(Date{Day: 1, Month: 13, Year: 1}); got != "1 Dec 1" {
		t.Errorf("FormatDate clamps month, got %q", got)
	}
}

func TestTableFormat(t *testing.T) {
	tbl := testTable()
	var p Params
	p.SetText(1, "world")
	if got := tbl.Format(strGreeting, &p); got != "Hello world" {
		t.Errorf("Format = %q", got)
	}

	p.Reset()
	p.SetMoney(1, 250)
	if got := tbl.Format(strCash, &p); got != "Cash: $2.50" {
		t.Errorf("Format money = %q", got)
	}

	p.Reset()
	p.SetStringID(1, strCash)
	if got := tbl.Format(strNested, &p); got != "[Cash: ]" {
		t.Errorf("Format nested = %q", got)
	}

	if got := tbl.Format(StrNull, nil); got != "" {
		t.Errorf("Format(StrNull) = %q, want empty", got)
	}
	p.Reset()
	p.SetNumber(1, 42)
	if got := tbl.Format(StrArg1, &p); got != "42" {
		t.Errorf("Format(StrArg1) = %q, want 42", got)
	}
}

func TestTableFallbackAndMissing(t *testing.T) {
	tbl := testTable()
	nl := English()
	nl.Name = "nl_NL"
	nl.Strings[strGreeting] = "Hallo {1}"
	tbl.Add(nl)
	if !tbl.Select("nl_NL") {
		t.Fatal("Select(nl_NL) failed")
	}

	var p Params
	p.SetText(1, "x")
	if got := tbl.Format(strGreeting, &p); got != "Hallo x" {
		t.Errorf("translated Format = %q", got)
	}
	// strCash is only in the fallback language.
	if got := tbl.Format(strCash, &p); got != "Cash: x" {
		t.Errorf("fallback Format = %q", got)
	}
	if got := tbl.Text(999); !strings.HasPrefix(got, "<string") {
		t.Errorf("missing string = %q", got)
	}
	if tbl.Select("fr_FR") {
		t.Error("Select of unknown language should fail")
	}
}

func TestLongestAcrossLanguages(t *testing.T) {
	tbl := testTable()
	de := English()
	de.Name = "de_DE"
	de.Strings[strGreeting] = "Guten Tag {1}"
	tbl.Add(de)

	m := text.CellMeasurer{CellWidth: 1, CellHeight: 1}
	var p Params
	p.SetText(1, "ab")
	if got := tbl.Measure(m, strGreeting, &p).Width; got != len("Hello ab") {
		t.Errorf("Measure width = %d", got)
	}
	if got := tbl.Longest(m, strGreeting, &p).Width; got != len("Guten Tag ab") {
		t.Errorf("Longest width = %d", got)
	}
}

func TestParamsIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for index 0")
		}
	}()
	var p Params
	p.SetText(0, "x")
}

func TestLoad(t *testing.T) {
	data := []byte(`
name: nl_NL
currency: "€"
thousands: "."
decimal: ","
strings:
  GREETING: "Hallo {1}"
  CASH: "Geld: {1}"
`)
	lang, err := Load(data, testNames)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lang.Name != "nl_NL" {
		t.Errorf("Name = %q", lang.Name)
	}
	if got := lang.FormatMoney(123456); got != "€1.234,56" {
		t.Errorf("FormatMoney = %q", got)
	}
	if lang.Months[0] != "Jan" {
		t.Errorf("months should default to English, got %q", lang.Months[0])
	}
	if lang.Strings[strCash] != "Geld: {1}" {
		t.Errorf("CASH = %q", lang.Strings[strCash])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no name", "strings: {}", "no name"},
		{"unknown string", "name: x\nstrings:\n  NOPE: a\n", "unknown strings [NOPE]"},
		{"bad months", "name: x\nmonths: [a, b]\n", "expected 12 month names"},
		{"bad yaml", "name: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data), testNames)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
