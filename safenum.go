package safenum

import "fmt"

// maxSafeInt is the decimal representation of 2^53 - 1, the largest
// integer n such that all integers in [0, n] are exactly representable
// in binary64.
const maxSafeInt = "9007199254740991"

// IsSafe reports whether num is a safe numeric string: it conforms to
// the lexical grammar described in the package documentation, its
// integer part does not exceed 2^53 - 1, and converting it to the
// nearest binary64 value and back to the shortest round-trip decimal
// string preserves its mathematical value exactly.
//
// IsSafe is total: every string maps to true or false and no input
// causes a panic.
//
//	IsSafe("0.1")                   // true
//	IsSafe("1234.5678")             // true
//	IsSafe("0.1234567890123456789") // false, binary64 cannot carry 19 digits
//	IsSafe("9007199254740992")      // false, integer part above 2^53-1
//	IsSafe("00123")                 // false, leading zero
func IsSafe(num string) bool {
	return Check(num) == nil
}

// Check reports why a numeric string is not safe.
// It returns nil if and only if [IsSafe] returns true; otherwise the
// returned error wraps [ErrSyntax], [ErrRange], or [ErrInexact].
func Check(num string) error {
	x, err := parseChecked(num)
	if err != nil {
		return err
	}
	rt := shortestDecimal(x.float64())
	if !x.equal(&rt) {
		return fmt.Errorf("%q becomes %q after a binary64 round trip: %w", num, rt.String(), ErrInexact)
	}
	return nil
}

// Format returns the canonical shortest round-trip rendering of a valid
// numeric string: the shortest decimal string that converts to the same
// binary64 value as num. If num is safe, Format returns a string with
// the same mathematical value as num.
//
// Format returns an error wrapping [ErrSyntax] or [ErrRange] if num
// fails the lexical or magnitude checks.
func Format(num string) (string, error) {
	x, err := parseChecked(num)
	if err != nil {
		return "", err
	}
	rt := shortestDecimal(x.float64())
	return rt.String(), nil
}

// parseChecked runs the first three pipeline stages: lexical check,
// exact decimal extraction, and the magnitude bound.
func parseChecked(num string) (*exact, error) {
	if err := checkSyntax(num); err != nil {
		return nil, err
	}
	x := new(exact)
	if !x.parse(num) {
		// Unreachable after checkSyntax; kept as a defensive invariant.
		return nil, fmt.Errorf("malformed numeric string %q: %w", num, ErrSyntax)
	}
	if err := checkMagnitude(x); err != nil {
		return nil, err
	}
	return x, nil
}

// checkMagnitude rejects values whose integer part exceeds 2^53 - 1.
// The comparison is purely on digits: digit count first, then
// lexicographically. Values above the bound are rejected even when they
// happen to be exactly representable in binary64; this is a deliberate
// conservative policy.
func checkMagnitude(x *exact) error {
	// x.point is the number of digits in the integer part: the digits
	// are canonical, with no stored leading zeros.
	switch {
	case x.point < len(maxSafeInt):
		return nil
	case x.point > len(maxSafeInt):
		return fmt.Errorf("integer part has %v digits: %w", x.point, ErrRange)
	}
	for i := 0; i < len(maxSafeInt); i++ {
		c := byte('0')
		if i < x.nd {
			c = x.dig[i]
		}
		if c != maxSafeInt[i] {
			if c > maxSafeInt[i] {
				return fmt.Errorf("integer part exceeds %v: %w", maxSafeInt, ErrRange)
			}
			return nil
		}
	}
	return nil
}
