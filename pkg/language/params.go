package language

// MaxParams is the number of arguments a Params set can hold. Arguments are
// numbered from 1 to match the "{1}".."{8}" placeholders in strings.
const MaxParams = 8

// ParamKind identifies the type of a string argument.
type ParamKind uint8

const (
	ParamNone ParamKind = iota
	ParamText
	ParamString
	ParamNumber
	ParamMoney
	ParamDate
)

// Date is a calendar date as displayed by the language layer.
// Month is 1-based.
type Date struct {
	Day, Month, Year int
}

// Param is one typed argument. Only the field matching Kind is meaningful.
type Param struct {
	Kind   ParamKind
	Text   string
	String StringID
	Number int64
	Date   Date
}

// Params holds the dynamic arguments substituted into a string when it is
// formatted. The zero value is an empty set.
type Params struct {
	args [MaxParams]Param
}

func (p *Params) slot(idx int) *Param {
	if idx < 1 || idx > MaxParams {
		panic("language: parameter index out of range")
	}
	return &p.args[idx-1]
}

// Reset clears all arguments.
func (p *Params) Reset() {
	p.args = [MaxParams]Param{}
}

// SetText sets argument idx to a literal string.
func (p *Params) SetText(idx int, s string) {
	*p.slot(idx) = Param{Kind: ParamText, Text: s}
}

// SetStringID sets argument idx to another string of the table.
func (p *Params) SetStringID(idx int, id StringID) {
	*p.slot(idx) = Param{Kind: ParamString, String: id}
}

// SetNumber sets argument idx to an integer, formatted with digit grouping.
func (p *Params) SetNumber(idx int, n int64) {
	*p.slot(idx) = Param{Kind: ParamNumber, Number: n}
}

// SetMoney sets argument idx to an amount in cents.
func (p *Params) SetMoney(idx int, cents int64) {
	*p.slot(idx) = Param{Kind: ParamMoney, Number: cents}
}

// SetDate sets argument idx to a date.
func (p *Params) SetDate(idx int, d Date) {
	*p.slot(idx) = Param{Kind: ParamDate, Date: d}
}

// Get returns argument idx; out of range indices yield an empty Param.
func (p *Params) Get(idx int) Param {
	if p == nil || idx < 1 || idx > MaxParams {
		return Param{}
	}
	return p.args[idx-1]
}
