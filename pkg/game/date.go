package game

import (
	"time"

	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/text"
)

// Date is a day of the in-game calendar. Month is 1-based.
type Date struct {
	Day, Month, Year int
}

// StartDate is the first day of a new park.
var StartDate = Date{Day: 1, Month: 1, Year: 2001}

// Next returns the following day.
func (d Date) Next() Date {
	t := time.Date(d.Year, time.Month(d.Month), d.Day+1, 0, 0, 0, 0, time.UTC)
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

// Param converts d for use as a string argument.
func (d Date) Param() language.Date {
	return language.Date{Day: d.Day, Month: d.Month, Year: d.Year}
}

// Clock tracks the in-game date.
type Clock struct {
	today Date

	// OnChange is called after the date changes.
	OnChange func()
}

// NewClock returns a clock set to start.
func NewClock(start Date) *Clock {
	return &Clock{today: start}
}

// Today returns the current date.
func (c *Clock) Today() Date {
	return c.today
}

// Set moves the clock to d.
func (c *Clock) Set(d Date) {
	if c.today == d {
		return
	}
	c.today = d
	if c.OnChange != nil {
		c.OnChange()
	}
}

// Advance moves the clock one day forward.
func (c *Clock) Advance() {
	c.Set(c.today.Next())
}

// SetDate stores the current date as argument idx.
func (c *Clock) SetDate(p *language.Params, idx int) {
	p.SetDate(idx, c.today.Param())
}

// MaxDateSize returns the widest rendering of any date in year across all
// languages, so a date readout never needs to grow as days pass.
func MaxDateSize(m text.Measurer, strings *language.Table, year int) graphics.Size {
	var out graphics.Size
	var p language.Params
	for month := 1; month <= 12; month++ {
		for day := 1; day <= 31; day++ {
			p.SetDate(1, language.Date{Day: day, Month: month, Year: year})
			out = out.Max(strings.Longest(m, language.StrArg1, &p))
		}
	}
	return out
}
