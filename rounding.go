package money

import (
	"errors"
	"math"

	"github.com/govalues/decimal"
)

// RoundingMode determines how a decimal quantity is rounded to a whole
// number of minor units during construction and multiplication.
// The zero value is [RoundHalfEven] (banker's rounding), which minimizes
// cumulative bias across repeated operations.
type RoundingMode uint8

const (
	RoundHalfEven    RoundingMode = iota // to nearest, ties to the even neighbor
	RoundHalfUp                          // to nearest, ties away from zero
	RoundHalfDown                        // to nearest, ties toward zero
	RoundUp                              // away from zero
	RoundDown                            // toward zero
	RoundCeiling                         // toward positive infinity
	RoundFloor                           // toward negative infinity
	RoundUnnecessary                     // no rounding; fails if a nonzero digit would be discarded
)

var (
	errRoundingNecessary = errors.New("rounding necessary")
	errUnsupportedScale  = errors.New("unsupported currency scale")
	errUnknownMode       = errors.New("unknown rounding mode")
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r RoundingMode) String() string {
	switch r {
	case RoundHalfEven:
		return "half-even"
	case RoundHalfUp:
		return "half-up"
	case RoundHalfDown:
		return "half-down"
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	case RoundUnnecessary:
		return "unnecessary"
	}
	return "unknown"
}

// quantize converts a decimal quantity to a whole number of minor units at
// the given scale, rounding a discarded fractional part with the given mode.
// It is the single place where decimals become fixed-point integers.
func quantize(d decimal.Decimal, scale int, mode RoundingMode) (int64, error) {
	if scale < 0 || scale >= len(minorUnitFactors) {
		return 0, errUnsupportedScale
	}
	if mode > RoundUnnecessary {
		return 0, errUnknownMode
	}

	// Truncated minor units
	t := d.Trunc(scale).Pad(scale)
	if t.Scale() != scale {
		return 0, errAmountOverflow
	}
	units, err := coefUnits(t)
	if err != nil {
		return 0, err
	}

	// Discarded fraction
	rem, err := d.Sub(t)
	if err != nil {
		return 0, err
	}
	if rem.IsZero() {
		return units, nil
	}

	var away bool
	switch mode {
	case RoundDown:
		return units, nil
	case RoundUnnecessary:
		return 0, errRoundingNecessary
	case RoundUp:
		away = true
	case RoundCeiling:
		away = rem.IsPos()
	case RoundFloor:
		away = rem.IsNeg()
	default:
		// Half modes, decided by comparing twice the discarded fraction
		// against one minor unit.
		two, err := decimal.New(2, 0)
		if err != nil {
			return 0, err
		}
		twice, err := rem.Mul(two)
		if err != nil {
			return 0, err
		}
		ulp, err := decimal.New(1, scale)
		if err != nil {
			return 0, err
		}
		switch cmp := twice.CmpAbs(ulp); {
		case cmp > 0:
			away = true
		case cmp < 0:
			away = false
		default:
			switch mode {
			case RoundHalfUp:
				away = true
			case RoundHalfDown:
				away = false
			case RoundHalfEven:
				away = units%2 != 0
			}
		}
	}
	if !away {
		return units, nil
	}
	if rem.IsNeg() {
		if units == math.MinInt64 {
			return 0, errAmountOverflow
		}
		return units - 1, nil
	}
	if units == math.MaxInt64 {
		return 0, errAmountOverflow
	}
	return units + 1, nil
}

// coefUnits extracts the signed integer coefficient of a decimal whose scale
// equals the target minor-unit scale.
func coefUnits(d decimal.Decimal) (int64, error) {
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, errAmountOverflow
		}
		return -int64(u), nil
	}
	if u > math.MaxInt64 {
		return 0, errAmountOverflow
	}
	return int64(u), nil
}
