/*
Package safenum decides whether a decimal numeric string survives a
round trip through an IEEE 754 double-precision (binary64) value without
any change to its mathematical value.
It is specifically designed for validating numeric input at system
boundaries where values will later be handled by binary64 arithmetic,
such as JSON payloads consumed by JavaScript clients.

# Safety

A string is safe when both of the following hold:

 1. It conforms to a strict lexical grammar (see below).
 2. Converting it to the nearest binary64 value and formatting that
    value back as the shortest round-trip decimal string yields the
    exact same mathematical value as the original string.

The comparison in step 2 is performed on exact arbitrary-precision
decimal representations, never on floating-point values, so the check
does not absorb the very precision loss it is meant to detect.

For example, "0.1" is safe: the nearest binary64 value to 0.1 formats
back as "0.1". The string "0.1234567890123456789" is not safe: binary64
cannot carry 19 significant digits, so the round trip produces a
different value.

# Grammar

The accepted format is deliberately strict and is described by the
following formal EBNF grammar:

	sign           ::= '-'
	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
	nonzero-digit  ::= '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
	integer        ::= '0' | nonzero-digit { digit }
	fraction       ::= '.' digit { digit }
	numeric-string ::= [sign] integer [fraction]

There is no exponent, no '+' sign, no whitespace, no leading zeros in
the integer part, and a decimal point must have at least one digit on
both sides. Strings such as "00", "01", ".5", "5.", "1e5", and "+1"
are all rejected.

# Magnitude

Strings whose integer part exceeds 9007199254740991 (2^53 - 1, the
largest integer n such that all integers in [0, n] are exactly
representable in binary64) are rejected unconditionally, even when the
particular value happens to be exactly representable. This is a
deliberate conservative policy, not a representability test.

# Conversions

The decimal-to-binary64 and binary64-to-shortest-decimal conversions are
implemented in this package and do not rely on strconv, so the rounding
rule (round to nearest, ties to even) and the shortest round-trip
formatting are explicit and independently testable. The formatter
reproduces the digits of ECMAScript's Number::toString.

Each conversion is carried out in two steps:

 1. The conversion is initially attempted using uint64 and float64
    arithmetic. If the coefficient fits in a uint64 and the scale is
    covered by an exact power of ten, the exact result is immediately
    returned.
 2. Otherwise the conversion is repeated with a multiprecision decimal
    scaled by powers of two, which is exact for arbitrarily long digit
    sequences.

# Errors

All functions are panic-free and pure. [IsSafe] is total: every string
maps to true or false. [Check] reports why a string is not safe by
wrapping one of the sentinel errors [ErrSyntax], [ErrRange], or
[ErrInexact].
*/
package safenum
