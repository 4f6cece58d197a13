package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders monetary values of a single currency for a locale.
// It is an immutable value: every call builds fresh formatting state, so a
// Formatter may be shared and invoked concurrently from any number of
// goroutines.
//
// The locale is always an explicit parameter of the presentation layer;
// the process-wide default locale is never consulted, so formatting output
// cannot change behind a caller's back.
type Formatter struct {
	curr   Currency
	locale language.Tag
}

// Formatter returns a fresh formatter scoped to the currency of m and the
// given locale.
// The formatter can be reused for any number of values denominated in that
// currency.
func (m Money) Formatter(locale language.Tag) Formatter {
	return Formatter{curr: m.curr, locale: locale}
}

// NewFormatter returns a formatter for the given currency and locale.
// See also method [Money.Formatter].
func NewFormatter(curr Currency, locale language.Tag) Formatter {
	return Formatter{curr: curr, locale: locale}
}

// Curr returns the currency the formatter is scoped to.
func (f Formatter) Curr() Currency {
	return f.curr
}

// Format renders the amount of m using the locale's digit grouping and
// decimal separator, with the fraction digits pinned to the currency's
// scale, followed by the 3-letter currency code:
//
//	USD 12345.678 in locale en  =>  "12,345.68 USD"
//	JPY 12345     in locale en  =>  "12,345 JPY"
//
// A value denominated in another currency is rendered with its own
// currency's scale and code, so an amount is never reinterpreted at the
// wrong scale.
// Output is deterministic for a given amount, currency, and locale.
//
// The amount passes through float64 on its way to the locale renderer, so
// amounts beyond float64's 15 significant digits may display rounded.
// Use [Money.String] or [Money.Decimal] when exact output is required.
func (f Formatter) Format(m Money) string {
	c := f.curr
	if m.curr != c {
		c = m.curr
	}
	v, _ := m.Float64()
	p := message.NewPrinter(f.locale)
	return p.Sprintf("%v %s", number.Decimal(v, number.Scale(c.Scale())), c.Code())
}

// Display returns the formatted display string for the value in the given
// locale.
// It is shorthand for m.Formatter(locale).Format(m).
// See also method [Currency.Symbol] for presentation layers that place a
// currency symbol themselves.
func (m Money) Display(locale language.Tag) string {
	return m.Formatter(locale).Format(m)
}
