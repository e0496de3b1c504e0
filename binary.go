package safenum

import "math"

// binary64 layout.
const (
	mantBits = 52
	expBits  = 11
	expBias  = -1023
)

// powtab maps a count of decimal digits to a binary shift that brings
// a value with that many integer digits below 1.
var powtab = []int{1, 3, 6, 9, 13, 16, 19, 23, 26}

// float64pow10 is a cache of exact powers of 10, where float64pow10[x] = 10^x.
// 10^22 is the largest power of ten representable exactly in binary64.
var float64pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// float64 returns the binary64 value nearest to the exact value of x,
// breaking exact ties towards the significand with an even low bit.
func (x *exact) float64() float64 {
	if f, ok := x.float64Fast(); ok {
		return f
	}
	return x.float64Slow()
}

// float64Fast converts x entirely in floating-point arithmetic, when
// the conversion is exact: an integer coefficient below 2^53 multiplied
// or divided by an exact power of ten incurs a single IEEE rounding,
// which is the correctly rounded result.
func (x *exact) float64Fast() (f float64, ok bool) {
	coef, exp, ok := x.coefficient()
	if !ok {
		return 0, false
	}
	if coef>>mantBits != 0 {
		return 0, false
	}
	f = float64(coef)
	if x.neg {
		f = -f
	}
	switch {
	case exp == 0:
		// an integer
		return f, true
	case exp > 0 && exp <= 15+22: // int * 10^k
		// If the exponent is big but the number of digits is not,
		// a few zeros can move into the integer part first.
		if exp > 22 {
			f *= float64pow10[exp-22]
			exp = 22
		}
		if f > 1e15 || f < -1e15 {
			// the integer part is no longer exact
			return 0, false
		}
		return f * float64pow10[exp], true
	case exp < 0 && exp >= -22: // int / 10^k
		return f / float64pow10[-exp], true
	}
	return 0, false
}

// float64Slow converts x with multiprecision decimal arithmetic:
//
//  1. Scale x by powers of two until it is in [0.5, 1).
//  2. Multiply by 2^53 and round half to even to obtain the significand.
//
// The digit buffer together with the clipped marker keeps every rounding
// decision exact for arbitrarily long digit sequences.
func (x *exact) float64Slow() float64 {
	if x.nd == 0 {
		return signedZero(x.neg)
	}

	// Obvious over- and underflow. The predicate bounds magnitude before
	// converting, so these are defensive.
	if x.point > 310 {
		return signedInf(x.neg)
	}
	if x.point < -330 {
		return signedZero(x.neg)
	}

	// Scaling mutates the digits, so work on a copy.
	d := *x

	exp := 0
	for d.point > 0 {
		var n int
		if d.point >= len(powtab) {
			n = maxShift
		} else {
			n = powtab[d.point]
		}
		d.shift(-n)
		exp += n
	}
	for d.point < 0 || d.point == 0 && d.dig[0] < '5' {
		var n int
		if -d.point >= len(powtab) {
			n = maxShift
		} else {
			n = powtab[-d.point]
		}
		d.shift(n)
		exp -= n
	}

	// The value is in [0.5, 1) but the binary64 significand range is [1, 2).
	exp--

	// The minimum representable exponent is expBias+1. If the exponent
	// is smaller, move it up and shift the digits down accordingly
	// (the value becomes subnormal).
	if exp < expBias+1 {
		n := expBias + 1 - exp
		d.shift(-n)
		exp += n
	}

	if exp-expBias >= 1<<expBits-1 {
		return signedInf(x.neg)
	}

	// Extract 1+mantBits bits of significand, rounding half to even.
	d.shift(1 + mantBits)
	mant := d.roundedSignificand()

	// Rounding may have added a bit; shift down.
	if mant == 2<<mantBits {
		mant >>= 1
		exp++
		if exp-expBias >= 1<<expBits-1 {
			return signedInf(x.neg)
		}
	}

	// Subnormal values have no implicit leading bit.
	if mant&(1<<mantBits) == 0 {
		exp = expBias
	}

	bits := mant & (1<<mantBits - 1)
	bits |= uint64((exp-expBias)&(1<<expBits-1)) << mantBits
	if x.neg {
		bits |= 1 << (mantBits + expBits)
	}
	return math.Float64frombits(bits)
}

func signedZero(neg bool) float64 {
	if neg {
		return math.Copysign(0, -1)
	}
	return 0
}

func signedInf(neg bool) float64 {
	if neg {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
