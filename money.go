package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	errAmountOverflow   = errors.New("amount overflow")
	errCurrencyMismatch = errors.New("cannot compare different currencies")
	errMissingOperand   = errors.New("cannot compare money to null")
)

// Money type represents a monetary value as a whole number of minor units
// (e.g. cents) of its currency.
// The zero value is "XXX 0", where [XXX] indicates an unknown currency;
// it acts as "no money", and cross-value operations treat it as a missing
// operand.
// Money is an immutable value, safe for concurrent use by multiple
// goroutines, and a comparable struct: copies made by assignment are
// independent and equal, == performs structural equality over amount and
// currency, and equal values hash equally as map keys.
type Money struct {
	curr  Currency // ISO 4217 currency
	units int64    // amount in minor units
}

func newMoney(c Currency, units int64) Money {
	return Money{curr: c, units: units}
}

// NewFromDecimal converts a decimal quantity of major currency units to a
// money value, shifting the decimal point right by the currency's scale and
// rounding the result to a whole number of minor units with the given mode.
//
// NewFromDecimal returns an error if:
//   - the currency code is not valid;
//   - the mode is [RoundUnnecessary] and rounding would discard a nonzero digit;
//   - the scaled amount does not fit in an int64.
func NewFromDecimal(curr string, amount decimal.Decimal, mode RoundingMode) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	units, err := quantize(amount, c.Scale(), mode)
	if err != nil {
		return Money{}, fmt.Errorf("converting decimal: %w", err)
	}
	return newMoney(c, units), nil
}

// NewFromFloat64 converts a float quantity of major currency units to a
// money value, rounding half away from zero to the nearest minor unit.
// This is the convenience path: it offers no rounding-mode choice, and the
// binary representation of float64 introduces imprecision before rounding,
// which is a known limitation of this constructor.
// See also constructor [NewFromDecimal].
//
// NewFromFloat64 returns an error if:
//   - the currency code is not valid;
//   - the float is a special value (NaN or Inf);
//   - the scaled amount does not fit in an int64.
func NewFromFloat64(curr string, amount float64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("converting float: special value %v", amount)
	}
	f, err := c.factor()
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	v := math.Round(amount * float64(f))
	if v >= float64(math.MaxInt64) || v < float64(math.MinInt64) {
		return Money{}, fmt.Errorf("converting float: %w", errAmountOverflow)
	}
	return newMoney(c, int64(v)), nil
}

// NewFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to a money value.
// No scaling is applied: the integer becomes the amount directly.
// See also method [Money.MinorUnits] and constructor [NewFromMajorUnits].
//
// NewFromMinorUnits returns an error if the currency code is not valid.
func NewFromMinorUnits(curr string, units int64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return newMoney(c, units), nil
}

// NewFromMajorUnits converts an integer, representing whole currency units
// (e.g. dollars), to a money value, multiplying by the currency's scale
// factor.
// This is deliberately asymmetric with [NewFromMinorUnits], which applies no
// scaling.
//
// NewFromMajorUnits returns an error if:
//   - the currency code is not valid;
//   - the scaled amount does not fit in an int64.
func NewFromMajorUnits(curr string, units int64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	f, err := c.factor()
	if err != nil {
		return Money{}, fmt.Errorf("converting major units: %w", err)
	}
	u, ok := mulUnits(units, f)
	if !ok {
		return Money{}, fmt.Errorf("converting major units: %w", errAmountOverflow)
	}
	return newMoney(c, u), nil
}

// Dollars returns a money value of the given amount in US dollars.
// It is a convenience wrapper around [NewFromFloat64] and panics in the
// cases where that constructor returns an error.
func Dollars(amount float64) Money {
	m, err := NewFromFloat64("USD", amount)
	if err != nil {
		panic(fmt.Sprintf("Dollars(%v) failed: %v", amount, err))
	}
	return m
}

// Parse converts currency and decimal strings to a money value.
// The amount must be exactly representable at the currency's scale;
// excess precision is an error, not a silent rounding.
// Parse is the inverse of [Money.String] apart from the argument split.
// See also constructor [ParseCurr].
func Parse(curr, amount string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	units, err := quantize(d, c.Scale(), RoundUnnecessary)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newMoney(c, units), nil
}

// MustParse is like [Parse] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding monetary values.
func MustParse(curr, amount string) Money {
	m, err := Parse(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// Curr returns the currency of the value.
func (m Money) Curr() Currency {
	return m.curr
}

// MinorUnits returns the amount as an integer count of minor units of the
// currency.
// See also constructor [NewFromMinorUnits].
func (m Money) MinorUnits() int64 {
	return m.units
}

// Decimal returns the exact decimal representation of the amount, derived
// losslessly from the minor-unit count and the currency's scale.
// The scale of the result always equals the scale of the currency.
func (m Money) Decimal() decimal.Decimal {
	d, _ := decimal.New(m.units, m.curr.Scale()) // scale is 0..3, New cannot fail
	return d
}

// Float64 returns the nearest binary floating-point representation of the
// amount.
// This conversion may lose precision for amounts beyond float64's
// 15 significant digits.
// See also constructor [NewFromFloat64].
func (m Money) Float64() (f float64, ok bool) {
	return m.Decimal().Float64()
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	switch {
	case m.units < 0:
		return -1
	case m.units > 0:
		return 1
	}
	return 0
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.units == 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.units < 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.units > 0
}

// Abs returns the absolute value of m.
func (m Money) Abs() Money {
	if m.units < 0 {
		return newMoney(m.curr, -m.units)
	}
	return m
}

// Neg returns a value with the opposite sign.
func (m Money) Neg() Money {
	return newMoney(m.curr, -m.units)
}

// SameCurr returns true if values are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// matchCurr validates the currency-guard precondition for a cross-value
// operation: neither operand may be the missing value, and both must share
// a currency.
func (m Money) matchCurr(b Money) error {
	if m.curr == XXX || b.curr == XXX {
		return errMissingOperand
	}
	if m.curr != b.curr {
		return errCurrencyMismatch
	}
	return nil
}

// Add returns the sum of values m and b.
//
// Add returns an error if:
//   - the values are denominated in different currencies;
//   - either operand is the missing (zero) value;
//   - the sum does not fit in an int64.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if err := m.matchCurr(b); err != nil {
		return Money{}, err
	}
	u, ok := addUnits(m.units, b.units)
	if !ok {
		return Money{}, errAmountOverflow
	}
	return newMoney(m.curr, u), nil
}

// Sub returns the difference between values m and b.
//
// Sub returns an error if:
//   - the values are denominated in different currencies;
//   - either operand is the missing (zero) value;
//   - the difference does not fit in an int64.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if err := m.matchCurr(b); err != nil {
		return Money{}, err
	}
	u, ok := subUnits(m.units, b.units)
	if !ok {
		return Money{}, errAmountOverflow
	}
	return newMoney(m.curr, u), nil
}

// Mul returns the product of value m and factor e, rounded to the currency's
// scale using [RoundHalfEven] (banker's rounding).
// See also method [Money.MulRound].
//
// Mul returns an error if the result does not fit in an int64.
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	c, err := m.mul(e, RoundHalfEven)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

// MulRound returns the product of value m and factor e, rounded to the
// currency's scale using the given mode.
//
// MulRound returns an error if:
//   - the mode is [RoundUnnecessary] and rounding would discard a nonzero digit;
//   - the result does not fit in an int64.
func (m Money) MulRound(e decimal.Decimal, mode RoundingMode) (Money, error) {
	c, err := m.mul(e, mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

// MulFloat64 converts the factor to its decimal form and delegates to
// [Money.Mul].
func (m Money) MulFloat64(e float64) (Money, error) {
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return Money{}, fmt.Errorf("computing [%v * %v]: special value %v", m, e, e)
	}
	d, err := decimal.Parse(strconv.FormatFloat(e, 'f', -1, 64))
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return m.Mul(d)
}

func (m Money) mul(e decimal.Decimal, mode RoundingMode) (Money, error) {
	d, err := m.Decimal().Mul(e)
	if err != nil {
		return Money{}, err
	}
	units, err := quantize(d, m.curr.Scale(), mode)
	if err != nil {
		return Money{}, err
	}
	return newMoney(m.curr, units), nil
}

// Cmp compares values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns 0 if and only if [Money.Equal] reports true for operands that
// pass the currency guard.
//
// Cmp returns an error if the values are denominated in different currencies
// or either operand is the missing (zero) value.
func (m Money) Cmp(b Money) (int, error) {
	if err := m.matchCurr(b); err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, err)
	}
	switch {
	case m.units < b.units:
		return -1, nil
	case m.units > b.units:
		return 1, nil
	}
	return 0, nil
}

// Less reports whether m is strictly smaller than b.
//
// Less returns an error if the values are denominated in different
// currencies or either operand is the missing (zero) value.
func (m Money) Less(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Greater reports whether m is strictly larger than b.
//
// Greater returns an error if the values are denominated in different
// currencies or either operand is the missing (zero) value.
func (m Money) Greater(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// Equal reports whether values have the same amount and the same currency.
// Unlike the guarded comparisons, Equal never fails: values of different
// currencies are simply unequal, and the missing (zero) value equals only
// itself.
func (m Money) Equal(b Money) bool {
	return m == b
}

// Min returns the smaller value.
//
// Min returns an error if the values are denominated in different currencies
// or either operand is the missing (zero) value.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0:
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger value.
//
// Max returns an error if the values are denominated in different currencies
// or either operand is the missing (zero) value.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0:
		return m, nil
	default:
		return b, nil
	}
}

// Split returns a slice of values that sum exactly to m, as equal as
// possible: every share is either floor(m/parts) or one minor unit more,
// and the remainder goes to the lowest indices, one unit each.
// This is the deliberately "unfair" policy: the first recipients absorb the
// remainder.
// See also method [Money.Allocate].
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	res, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return res, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, errors.New("number of parts must be positive")
	}
	n := int64(parts)
	low := floorDiv(m.units, n)
	rem := m.units - low*n // 0 <= rem < parts
	res := make([]Money, parts)
	for i := range res {
		u := low
		if int64(i) < rem {
			u++
		}
		res[i] = newMoney(m.curr, u)
	}
	return res, nil
}

// Allocate returns a slice of values proportional to the given ratios that
// sum exactly to m.
// Base shares are floor(m * ratio / total); the undistributed remainder,
// always smaller than the number of ratios, is handed out one minor unit at
// a time starting from the first ratio, matching the remainder policy of
// [Money.Split].
// For example, 1.00 USD allocated by ratios (1, 1, 1) yields 0.34, 0.33,
// and 0.33 USD.
//
// Allocate returns an error if:
//   - any ratio is negative;
//   - the sum of the ratios is not positive;
//   - an intermediate product does not fit in an int64.
func (m Money) Allocate(ratios ...int64) ([]Money, error) {
	res, err := m.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by ratios %v: %w", m, ratios, err)
	}
	return res, nil
}

func (m Money) allocate(ratios []int64) ([]Money, error) {
	var total int64
	for _, r := range ratios {
		if r < 0 {
			return nil, fmt.Errorf("ratio must not be negative: %v", r)
		}
		t, ok := addUnits(total, r)
		if !ok {
			return nil, errAmountOverflow
		}
		total = t
	}
	if total <= 0 {
		return nil, errors.New("ratio total must be positive")
	}
	res := make([]Money, len(ratios))
	rem := m.units
	for i, r := range ratios {
		p, ok := mulUnits(m.units, r)
		if !ok {
			return nil, errAmountOverflow
		}
		u := floorDiv(p, total)
		res[i] = newMoney(m.curr, u)
		rem -= u
	}
	// rem is in [0, len(ratios)) thanks to floor division.
	for i := int64(0); i < rem; i++ {
		res[i].units++
	}
	return res, nil
}

// floorDiv divides rounding toward negative infinity, so allocation shares
// of negative amounts still sum back to the original amount.
func floorDiv(a, n int64) int64 {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func addUnits(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func subUnits(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}
	return d, true
}

func mulUnits(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// String implements the [fmt.Stringer] interface and returns the canonical
// text form of the value, for example "USD 12.34".
// The fractional part always shows exactly the currency's scale.
// See also constructor [Parse] and method [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	var buf [32]byte
	pos := len(buf) - 1
	u := uint64(m.units)
	if m.units < 0 {
		u = -u
	}
	scale := m.curr.Scale()

	// Digits
	for {
		buf[pos] = byte(u%10) + '0'
		pos--
		u /= 10
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if u == 0 {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if u == 0 && scale == 0 {
			break
		}
	}

	// Sign
	if m.units < 0 {
		buf[pos] = '-'
		pos--
	}

	// Delimiter
	buf[pos] = ' '
	pos--

	// Currency
	curr := m.curr.Code()
	for i := len(curr) - 1; i >= 0; i-- {
		buf[pos] = curr[i]
		pos--
	}

	return string(buf[pos+1:])
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.67    | Currency and amount        |
//	| %q     | "USD 5.67"  | Quoted currency and amount |
//	| %f     | 5.67        | Amount                     |
//	| %d     | 567         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb and can only pad the fraction
// with zeros beyond the currency's scale; the stored amount is never rounded
// for display.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	c := m.curr

	// Coefficient
	coef := uint64(m.units)
	if m.units < 0 {
		coef = -coef
	}

	// Integer and fractional digits
	intdigs, fracdigs, tzeros := 0, 0, 0
	switch prec := digits(coef); verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		intdigs = prec
	default:
		fracdigs = c.Scale()
		if prec > fracdigs {
			intdigs = prec - fracdigs
		} else {
			intdigs = 1 // leading 0
		}
		if p, ok := state.Precision(); ok && (verb == 'f' || verb == 'F') && p > fracdigs {
			tzeros = p - fracdigs
		}
	}

	// Decimal point
	dpoint := 0
	if fracdigs > 0 || tzeros > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if verb != 'c' && verb != 'C' && (m.units < 0 || state.Flag('+') || state.Flag(' ')) {
		rsign = 1
	}

	// Currency code and delimiter
	curr, currsyms, currdel := "", 0, 0
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		curr = c.Code()
		currsyms = len(curr)
	default:
		curr = c.Code()
		currsyms = len(curr)
		currdel = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currsyms + currdel + rsign + intdigs + dpoint + fracdigs + tzeros + tquote
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for j := 0; j < tspaces; j++ {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Trailing zeros
	for j := 0; j < tzeros; j++ {
		buf[pos] = '0'
		pos--
	}

	// Fractional digits
	for j := 0; j < fracdigs; j++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Decimal point
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}

	// Integer digits
	for j := 0; j < intdigs; j++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Leading zeros
	for j := 0; j < lzeros; j++ {
		buf[pos] = '0'
		pos--
	}

	// Arithmetic sign
	if rsign > 0 {
		if m.units < 0 {
			buf[pos] = '-'
		} else if state.Flag(' ') {
			buf[pos] = ' '
		} else {
			buf[pos] = '+'
		}
		pos--
	}

	// Currency delimiter
	if currdel > 0 {
		buf[pos] = ' '
		pos--
	}

	// Currency code
	for i := currsyms; i > 0; i-- {
		buf[pos] = curr[i-1]
		pos--
	}

	// Opening quote
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for j := 0; j < lspaces; j++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// digits returns the number of decimal digits in the coefficient,
// counting at least one for zero.
func digits(coef uint64) int {
	n := 1
	for coef >= 10 {
		coef /= 10
		n++
	}
	return n
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded as a string to keep it exact, for example
// {"amount":"12.34","currency":"USD"}.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.Decimal().String(),
		Currency: m.curr.Code(),
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var v moneyJSON
	if err := json.Unmarshal(text, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	parsed, err := Parse(v.Currency, v.Amount)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*m = parsed
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the canonical form returned by [Money.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (m Money) AppendText(text []byte) ([]byte, error) {
	return append(text, m.String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the canonical form returned by [Money.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := parseText(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*m = parsed
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// AppendBinary always appends the canonical form returned by [Money.String].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (m Money) AppendBinary(data []byte) ([]byte, error) {
	return append(data, m.String()...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns the canonical form returned by [Money.String].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (m Money) MarshalBinary() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (m *Money) UnmarshalBinary(data []byte) error {
	parsed, err := parseText(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*m = parsed
	return nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also constructor [Parse].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (m *Money) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	switch typ {
	case 2:
		s, err := parseBSONString(data)
		if err == nil {
			var parsed Money
			parsed, err = parseText(s)
			if err == nil {
				*m = parsed
			}
		}
		if err != nil {
			return fmt.Errorf("converting from BSON type %d to %T: %w", typ, Money{}, err)
		}
		return nil
	case 10:
		// null, do nothing
		return nil
	default:
		return fmt.Errorf("converting from BSON type %d to %T: BSON type is not supported", typ, Money{})
	}
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns the canonical form returned by [Money.String].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (m Money) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, appendBSONString(nil, m.String()), nil
}

// parseText parses the canonical "CODE amount" form written by
// [Money.String].
func parseText(s string) (Money, error) {
	curr, amount, ok := strings.Cut(s, " ")
	if !ok {
		return Money{}, fmt.Errorf("invalid money format %q", s)
	}
	return Parse(curr, amount)
}
