package safenum

import "math"

// shortestDecimal returns the exact value of the shortest decimal digit
// sequence that converts back to exactly f under round-to-nearest-even.
// Among candidates of the minimal length it picks the one closest to
// the true binary value, choosing the even digit on exact ties. This
// reproduces the digits of ECMAScript's Number::toString.
//
// Infinities and NaN are outside the domain and map to 0.
func shortestDecimal(f float64) exact {
	bits := math.Float64bits(f)
	neg := bits>>(mantBits+expBits) != 0
	exp := int(bits>>mantBits) & (1<<expBits - 1)
	mant := bits & (uint64(1)<<mantBits - 1)

	var d exact
	switch exp {
	case 1<<expBits - 1:
		// infinity or NaN
		return d
	case 0:
		// subnormal: no implicit leading bit
		exp++
	default:
		mant |= uint64(1) << mantBits
	}
	exp += expBias

	if mant == 0 {
		return d
	}
	d.assign(mant)
	d.shift(exp - mantBits)
	roundShortest(&d, mant, exp)
	if d.nd > 0 {
		d.neg = neg
	}
	return d
}

// roundShortest rounds d (= mant * 2^(exp-mantBits)) to the shortest
// number of digits that still converts back to exactly the same
// binary64 value.
func roundShortest(d *exact, mant uint64, exp int) {
	if mant == 0 {
		d.nd = 0
		return
	}

	// Any decimal strictly between the midpoints towards the two
	// neighbouring binary64 values (inclusive when the significand is
	// even) rounds back to the original value.
	//
	// The number may already be shortest: provided d is not subnormal,
	// 2^exp <= d < 10^point, the nearest shorter decimal is at least
	// 10^(point-nd) away, and the midpoints computed below are at
	// distance 2^(exp-mantBits-1). So when
	// 10^(point-nd) > 2^(exp-mantBits), equivalently
	// 332*(point-nd) >= 100*(exp-mantBits) (using log2(10) < 3.32),
	// no digit can be dropped.
	minexp := expBias + 1
	if exp > minexp && 332*(d.point-d.nd) >= 100*(exp-mantBits) {
		return
	}

	// d = mant << (exp - mantBits).
	// The next higher binary64 value is mant+1 << exp-mantBits,
	// so the upper midpoint is mant*2+1 << exp-mantBits-1.
	var upper exact
	upper.assign(mant*2 + 1)
	upper.shift(exp - mantBits - 1)

	// The next lower binary64 value is mant-1 << exp-mantBits, unless
	// mant-1 drops the leading significand bit and exp is not minimal,
	// in which case it is mant*2-1 << exp-mantBits-1. Either way, call
	// it mantlo << explo-mantBits; the lower midpoint is then
	// mantlo*2+1 << explo-mantBits-1.
	var mantlo uint64
	var explo int
	if mant > 1<<mantBits || exp == minexp {
		mantlo = mant - 1
		explo = exp
	} else {
		mantlo = mant*2 - 1
		explo = exp - 1
	}
	var lower exact
	lower.assign(mantlo*2 + 1)
	lower.shift(explo - mantBits - 1)

	// The midpoints themselves convert back to mant only if mant is
	// even, so that round-half-to-even resolves the tie towards mant
	// rather than towards a neighbour.
	inclusive := mant%2 == 0

	// Track whether rounding up stays within the upper midpoint:
	//
	//   upperdelta == 0: the digits of d and upper agree so far.
	//   upperdelta == 1: a difference of one was seen, followed only by
	//     9s in d and 0s in upper, so rounding up hits the midpoint
	//     exactly and is allowed only if inclusive.
	//   upperdelta == 2: the gap is wider; rounding up is safely inside.
	var upperdelta uint8

	// Walk the digits until d distinguishes itself from both midpoints,
	// then round to the shortest form. The three values may place their
	// decimal points differently; upper is the longest, so iterate on
	// its digit index and derive the other two.
	for ui := 0; ; ui++ {
		mi := ui - upper.point + d.point
		if mi >= d.nd {
			break
		}
		li := ui - upper.point + lower.point
		l := byte('0') // lower digit
		if li >= 0 && li < lower.nd {
			l = lower.dig[li]
		}
		m := byte('0') // middle digit
		if mi >= 0 {
			m = d.dig[mi]
		}
		u := byte('0') // upper digit
		if ui < upper.nd {
			u = upper.dig[ui]
		}

		// Rounding down (truncating) is possible if lower has a
		// different digit, or if lower is inclusive and truncation
		// lands exactly on it (its final digit has been reached).
		okdown := l != m || inclusive && li+1 == lower.nd

		switch {
		case upperdelta == 0 && m+1 < u:
			upperdelta = 2
		case upperdelta == 0 && m != u:
			upperdelta = 1
		case upperdelta == 1 && (m != '9' || u != '0'):
			upperdelta = 2
		}
		// Rounding up is possible if upper has differed and either it
		// is inclusive or the rounded value stays strictly below it.
		okup := upperdelta > 0 && (inclusive || upperdelta > 1 || ui+1 < upper.nd)

		// If both directions work, round to the nearest; otherwise take
		// whichever one is allowed.
		switch {
		case okdown && okup:
			d.round(mi + 1)
			return
		case okdown:
			d.roundDown(mi + 1)
			return
		case okup:
			d.roundUp(mi + 1)
			return
		}
	}
}
