package safenum

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates that a string does not conform to the lexical
	// grammar described in the package documentation.
	ErrSyntax = errors.New("invalid numeric syntax")

	// ErrRange indicates that the integer part of a numeric string
	// exceeds 9007199254740991 (2^53 - 1).
	ErrRange = errors.New("integer part out of safe range")

	// ErrInexact indicates that a binary64 round trip changes the
	// mathematical value of a numeric string.
	ErrInexact = errors.New("binary64 round trip is inexact")
)

// checkSyntax classifies num against the strict grammar:
// an optional leading minus sign, an integer part that is either "0" or
// starts with a nonzero digit, and an optional fractional part with at
// least one digit after the decimal point.
// It performs no normalization or trimming: rejection is final.
func checkSyntax(num string) error {
	var (
		pos   int
		width int
	)

	width = len(num)
	if width == 0 {
		return fmt.Errorf("empty string: %w", ErrSyntax)
	}

	// Sign
	if num[pos] == '-' {
		pos++
		if pos == width {
			return fmt.Errorf("no digits after sign: %w", ErrSyntax)
		}
	}

	// Integer
	switch {
	case num[pos] == '0':
		pos++
		if pos < width && num[pos] >= '0' && num[pos] <= '9' {
			return fmt.Errorf("leading zero in integer part: %w", ErrSyntax)
		}
	case num[pos] >= '1' && num[pos] <= '9':
		for pos < width && num[pos] >= '0' && num[pos] <= '9' {
			pos++
		}
	default:
		return fmt.Errorf("invalid character %q at position %v: %w", num[pos], pos, ErrSyntax)
	}

	// Fraction
	if pos < width && num[pos] == '.' {
		pos++
		if pos == width {
			return fmt.Errorf("no digits after decimal point: %w", ErrSyntax)
		}
		for pos < width && num[pos] >= '0' && num[pos] <= '9' {
			pos++
		}
	}

	if pos != width {
		return fmt.Errorf("invalid character %q at position %v: %w", num[pos], pos, ErrSyntax)
	}
	return nil
}
