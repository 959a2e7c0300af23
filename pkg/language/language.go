// Package language resolves string ids to display text.
//
// A Table holds one or more Languages. Strings are templates whose
// "{1}".."{8}" placeholders are replaced by typed Params at format time, so
// money and dates follow the conventions of the current language. The table
// can also estimate the widest rendering of a string across every loaded
// language, which layout uses to reserve space that never has to reflow.
package language

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/text"
)

// StringID identifies a string in the table.
type StringID uint16

const (
	// StrNull is the empty string.
	StrNull StringID = 0
	// StrArg1 displays argument 1 unchanged.
	StrArg1 StringID = 1
	// FirstUserString is the first id available to applications.
	FirstUserString StringID = 16
)

// Language is one set of translations plus its formatting conventions.
type Language struct {
	Name      string
	Strings   map[StringID]string
	Months    [12]string
	Currency  string
	Thousands string
	Decimal   string
}

// English returns an empty language with English conventions.
func English() *Language {
	return &Language{
		Name:    "en_GB",
		Strings: make(map[StringID]string),
		Months: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Currency:  "$",
		Thousands: ",",
		Decimal:   ".",
	}
}

func (l *Language) raw(id StringID) (string, bool) {
	switch id {
	case StrNull:
		return "", true
	case StrArg1:
		return "{1}", true
	}
	s, ok := l.Strings[id]
	return s, ok
}

// Table is the set of loaded languages. The first added language is the
// fallback for strings the current language lacks.
type Table struct {
	langs   []*Language
	current *Language
}

// NewTable creates a table with the given languages; the first is current.
func NewTable(langs ...*Language) *Table {
	t := &Table{}
	for _, l := range langs {
		t.Add(l)
	}
	return t
}

// Add registers a language. The first language added becomes current.
func (t *Table) Add(l *Language) {
	t.langs = append(t.langs, l)
	if t.current == nil {
		t.current = l
	}
}

// Current returns the active language, or nil for an empty table.
func (t *Table) Current() *Language {
	return t.current
}

// Select makes the named language current. It reports whether it exists.
func (t *Table) Select(name string) bool {
	for _, l := range t.langs {
		if l.Name == name {
			t.current = l
			return true
		}
	}
	return false
}

// Languages returns the names of all loaded languages in load order.
func (t *Table) Languages() []string {
	names := make([]string, len(t.langs))
	for i, l := range t.langs {
		names[i] = l.Name
	}
	return names
}

func (t *Table) template(lang *Language, id StringID) string {
	if lang != nil {
		if s, ok := lang.raw(id); ok {
			return s
		}
	}
	if len(t.langs) > 0 && t.langs[0] != lang {
		if s, ok := t.langs[0].raw(id); ok {
			return s
		}
	}
	return fmt.Sprintf("<string %d>", id)
}

// Text returns the unformatted template of id in the current language.
func (t *Table) Text(id StringID) string {
	return t.template(t.current, id)
}

// Format expands id with params in the current language.
func (t *Table) Format(id StringID, params *Params) string {
	return t.formatIn(t.current, id, params, 0)
}

func (t *Table) formatIn(lang *Language, id StringID, params *Params, depth int) string {
	tmpl := t.template(lang, id)
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	var sb strings.Builder
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c == '{' && i+2 < len(tmpl) && tmpl[i+2] == '}' && tmpl[i+1] >= '1' && tmpl[i+1] <= '0'+MaxParams {
			idx := int(tmpl[i+1] - '0')
			sb.WriteString(t.formatParam(lang, params.Get(idx), depth))
			i += 2
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func (t *Table) formatParam(lang *Language, p Param, depth int) string {
	if lang == nil {
		lang = English()
	}
	switch p.Kind {
	case ParamText:
		return p.Text
	case ParamString:
		// Nested strings do not see the outer arguments.
		if depth > 2 {
			return ""
		}
		return t.formatIn(lang, p.String, nil, depth+1)
	case ParamNumber:
		return lang.FormatNumber(p.Number)
	case ParamMoney:
		return lang.FormatMoney(p.Number)
	case ParamDate:
		return lang.FormatDate(p.Date)
	default:
		return ""
	}
}

// FormatNumber formats n with the language's digit grouping.
func (l *Language) FormatNumber(n int64) string {
	neg := n < 0
	digits := strconv.FormatUint(absInt64(n), 10)
	grouped := groupDigits(digits, l.Thousands)
	if neg {
		return "-" + grouped
	}
	return grouped
}

// FormatMoney formats an amount in cents, e.g. "-$99,999,999.99".
func (l *Language) FormatMoney(cents int64) string {
	u := absInt64(cents)
	whole := groupDigits(strconv.FormatUint(u/100, 10), l.Thousands)
	frac := u % 100
	s := fmt.Sprintf("%s%s%s%02d", l.Currency, whole, l.Decimal, frac)
	if cents < 0 {
		return "-" + s
	}
	return s
}

// FormatDate formats a date as "day Month year". Out of range months are
// clamped to the valid range.
func (l *Language) FormatDate(d Date) string {
	m := min(max(d.Month, 1), 12)
	return fmt.Sprintf("%d %s %d", d.Day, l.Months[m-1], d.Year)
}

func absInt64(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var sb strings.Builder
	head := len(digits) % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// Measure formats id with params in the current language and measures it.
func (t *Table) Measure(m text.Measurer, id StringID, params *Params) graphics.Size {
	return m.Measure(t.Format(id, params))
}

// Longest estimates the widest rendering of id across all loaded languages
// when formatted with params. Layout uses it to reserve space for text that
// may change language at runtime.
func (t *Table) Longest(m text.Measurer, id StringID, params *Params) graphics.Size {
	if len(t.langs) == 0 {
		return m.Measure(t.formatIn(nil, id, params, 0))
	}
	var out graphics.Size
	for _, l := range t.langs {
		out = out.Max(m.Measure(t.formatIn(l, id, params, 0)))
	}
	return out
}
