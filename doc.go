/*
Package money implements a currency-aware fixed-point monetary value.

A [Money] pairs a [Currency] with a signed integer count of the currency's
minor units (cents, pennies, fens), so arithmetic is exact and no fractional
units are ever lost to floating-point error.
Splitting an amount across several recipients is supported by [Money.Split]
and [Money.Allocate], which distribute any remainder deterministically
instead of discarding it.

# Representation

The package consists of two main types: Money and Currency.
A Money holds a Currency and an int64 amount of minor units.
The Currency type is implemented as an integer index into an in-memory table
containing information defined by ISO 4217, such as code, symbol, and scale.
Both types are immutable values: operations return new values, never mutate,
and are safe for concurrent use by multiple goroutines without locking.

Money is a comparable struct.
Copying by assignment, comparing with ==, and using maps keyed by Money all
behave as expected of a value type, and equal values hash equally.

# Construction

Each construction path makes the scaling behavior explicit at the call site:

  - [NewFromDecimal] shifts a decimal amount by the currency scale and rounds
    with a caller-selected [RoundingMode];
  - [NewFromFloat64] rounds half away from zero and offers no rounding-mode
    choice, accepting float64's inherent imprecision as a documented
    limitation of the convenience path;
  - [NewFromMinorUnits] takes an amount already denominated in minor units;
  - [NewFromMajorUnits] takes whole currency units and multiplies by the
    scale factor;
  - [Dollars] is a USD shorthand.

# Operations

Add, Sub, Mul, Cmp, Less, and Greater require both operands to share a
currency; mixing currencies is a precondition violation reported as an error,
never a silent conversion.
The zero value of Money is "no money" (currency [XXX]), and cross-value
operations treat it as a missing operand.

# Errors

All failures are synchronous precondition violations: unknown currency,
mismatched currencies, a missing operand, a non-positive allocation target,
rounding that would discard digits under [RoundUnnecessary], an unsupported
currency scale, or int64 overflow.
Nothing is retried or recovered internally.
*/
package money
