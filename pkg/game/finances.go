// Package game holds the simulation state the toolbar windows display:
// the park's cash and the in-game date.
package game

import (
	"github.com/go-drift/guikit/pkg/graphics"
	"github.com/go-drift/guikit/pkg/language"
	"github.com/go-drift/guikit/pkg/text"
)

// Money is an amount in cents.
type Money int64

// LargeMoneyAmount is the largest amount worth reserving display space for,
// -99,999,999.99.
const LargeMoneyAmount Money = -9999999999

// Finances tracks the park's cash.
type Finances struct {
	cash Money

	// OnChange is called after the cash amount changes.
	OnChange func()
}

// NewFinances returns finances starting with cash.
func NewFinances(cash Money) *Finances {
	return &Finances{cash: cash}
}

// Cash returns the current amount.
func (f *Finances) Cash() Money {
	return f.cash
}

// SetCash replaces the current amount.
func (f *Finances) SetCash(m Money) {
	if f.cash == m {
		return
	}
	f.cash = m
	f.changed()
}

// Pay subtracts amount from the cash; a negative amount is income.
func (f *Finances) Pay(amount Money) {
	f.SetCash(f.cash - amount)
}

func (f *Finances) changed() {
	if f.OnChange != nil {
		f.OnChange()
	}
}

// CashToStrParams stores the cash as money argument 1.
func (f *Finances) CashToStrParams(p *language.Params) {
	p.SetMoney(1, int64(f.cash))
}

// MoneySize returns the widest rendering of amount across all languages.
func MoneySize(m text.Measurer, strings *language.Table, amount Money) graphics.Size {
	var p language.Params
	p.SetMoney(1, int64(amount))
	return strings.Longest(m, language.StrArg1, &p)
}
