package safenum

// exact is a multiprecision decimal number.
// It represents the mathematical value
//
//	±0.d1 d2 ... dn × 10^point
//
// with no rounding, where d1..dn are the significant digits.
// The digit buffer never stores leading or trailing zeros, so two exact
// values denote the same mathematical value if and only if their
// canonical fields are identical.
//
// Only assignment and binary shifts are supported. Binary floating
// point can be carried in a multiprecision decimal precisely because
// 2 divides 10; the reverse is not true.
type exact struct {
	dig     [digitCap]byte // significant digits, '0' through '9'
	nd      int            // number of digits used
	point   int            // decimal point position
	neg     bool           // indicates whether the value is negative
	clipped bool           // nonzero digits were discarded beyond dig[:nd]
}

// digitCap is large enough to hold the exact decimal expansion of any
// binary64 value: the smallest subnormal has 767 significant digits.
const digitCap = 800

// parse extracts the exact value of a numeric string that has already
// passed the lexical check: an optional minus sign, decimal digits, and
// at most one decimal point.
// It returns false only if the string violates that shape, which means
// the lexical check was bypassed.
func (x *exact) parse(num string) bool {
	x.nd = 0
	x.point = 0
	x.neg = false
	x.clipped = false

	pos := 0
	if pos < len(num) && num[pos] == '-' {
		x.neg = true
		pos++
	}

	sawdot := false
	sawdigits := false
	for ; pos < len(num); pos++ {
		switch {
		case num[pos] == '.':
			if sawdot {
				return false
			}
			sawdot = true
			x.point = x.nd
			continue
		case '0' <= num[pos] && num[pos] <= '9':
			sawdigits = true
			if num[pos] == '0' && x.nd == 0 { // ignore leading zeros
				x.point--
				continue
			}
			if x.nd < len(x.dig) {
				x.dig[x.nd] = num[pos]
				x.nd++
			} else if num[pos] != '0' {
				x.clipped = true
			}
			continue
		}
		return false
	}
	if !sawdigits {
		return false
	}
	if !sawdot {
		x.point = x.nd
	}
	x.trim()
	return true
}

// assign sets x to the integer v.
func (x *exact) assign(v uint64) {
	var buf [24]byte

	// Write reversed decimal in buf.
	n := 0
	for v > 0 {
		v1 := v / 10
		v -= 10 * v1
		buf[n] = byte(v + '0')
		n++
		v = v1
	}

	// Reverse again to produce forward decimal in x.dig.
	x.nd = 0
	for n--; n >= 0; n-- {
		x.dig[x.nd] = buf[n]
		x.nd++
	}
	x.point = x.nd
	x.neg = false
	x.clipped = false
	x.trim()
}

// trim removes trailing zeros. They carry no value: the decimal point
// is tracked independently of the number of digits.
// The sign is kept even when no digits remain, so a negative zero
// still converts to the binary64 value -0.
func (x *exact) trim() {
	for x.nd > 0 && x.dig[x.nd-1] == '0' {
		x.nd--
	}
	if x.nd == 0 {
		x.point = 0
	}
}

// isZero reports whether x is 0.
func (x *exact) isZero() bool {
	return x.nd == 0
}

// equal reports whether x and y denote the identical mathematical value.
// Both values are canonical after parse, assign, shifts, and rounding,
// so the comparison is structural. A clipped value no longer carries its
// full mathematical value, so equality can never be affirmed for it.
func (x *exact) equal(y *exact) bool {
	if x.clipped || y.clipped {
		return false
	}
	if x.nd == 0 && y.nd == 0 {
		// 0 and -0 denote the same mathematical value.
		return true
	}
	if x.nd != y.nd || x.point != y.point || x.neg != y.neg {
		return false
	}
	for i := 0; i < x.nd; i++ {
		if x.dig[i] != y.dig[i] {
			return false
		}
	}
	return true
}

// coefficient returns the significant digits of x as a single uint64
// coefficient c and a decimal exponent e such that |x| = c × 10^e.
// It returns false when the digits do not fit or were clipped.
func (x *exact) coefficient() (coef fint, exp int, ok bool) {
	if x.clipped || x.nd > 19 {
		return 0, 0, false
	}
	for i := 0; i < x.nd; i++ {
		coef, ok = coef.fsa(1, x.dig[i]-'0')
		if !ok {
			return 0, 0, false
		}
	}
	return coef, x.point - x.nd, true
}

// String implements the [fmt.Stringer] interface.
// It renders the exact value in plain positional notation and is used
// for canonical output and diagnostics.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x *exact) String() string {
	if x.nd == 0 {
		return "0"
	}

	n := 10 + x.nd
	if x.point > 0 {
		n += x.point
	} else {
		n += -x.point
	}

	buf := make([]byte, n)
	w := 0
	if x.neg {
		buf[w] = '-'
		w++
	}
	switch {
	case x.point <= 0:
		// zeros fill space between decimal point and digits
		buf[w] = '0'
		w++
		buf[w] = '.'
		w++
		w += digitZero(buf[w : w+-x.point])
		w += copy(buf[w:], x.dig[0:x.nd])
	case x.point < x.nd:
		// decimal point in middle of digits
		w += copy(buf[w:], x.dig[0:x.point])
		buf[w] = '.'
		w++
		w += copy(buf[w:], x.dig[x.point:x.nd])
	default:
		// zeros fill space between digits and decimal point
		w += copy(buf[w:], x.dig[0:x.nd])
		w += digitZero(buf[w : w+x.point-x.nd])
	}
	return string(buf[0:w])
}

func digitZero(dst []byte) int {
	for i := range dst {
		dst[i] = '0'
	}
	return len(dst)
}

// maxShift is the maximum binary shift in one pass without overflowing
// the int accumulator, which has to accommodate 9 << shift.
const maxShift = 27

// shiftRight divides x by 2^s, with s <= maxShift.
func (x *exact) shiftRight(s uint) {
	r := 0 // read pointer
	w := 0 // write pointer

	// Pick up enough leading digits to cover first shift.
	n := 0
	for ; n>>s == 0; r++ {
		if r >= x.nd {
			if n == 0 {
				// x == 0; shouldn't get here, but handle anyway.
				x.nd = 0
				return
			}
			for n>>s == 0 {
				n = n * 10
				r++
			}
			break
		}
		c := int(x.dig[r])
		n = n*10 + c - '0'
	}
	x.point -= r - 1

	// Pick up a digit, put down a digit.
	for ; r < x.nd; r++ {
		c := int(x.dig[r])
		dig := n >> s
		n -= dig << s
		x.dig[w] = byte(dig + '0')
		w++
		n = n*10 + c - '0'
	}

	// Put down extra digits.
	for n > 0 {
		dig := n >> s
		n -= dig << s
		if w < len(x.dig) {
			x.dig[w] = byte(dig + '0')
			w++
		} else if dig > 0 {
			x.clipped = true
		}
		n = n * 10
	}

	x.nd = w
	x.trim()
}

// shiftCheat is a table entry for shiftLeft, giving the number of new
// digits introduced by a given shift. Shifting left by s introduces
// delta digits when the digit prefix is at least the leading digits of
// 5^s, and one fewer digit otherwise.
type shiftCheat struct {
	delta  int    // number of new digits
	cutoff string // minus one digit if digits are lexicographically smaller
}

var shiftCheats = []shiftCheat{
	// Leading digits of 1/2^i = 5^i.
	{0, ""},
	{1, "5"},                   // * 2
	{1, "25"},                  // * 4
	{1, "125"},                 // * 8
	{2, "625"},                 // * 16
	{2, "3125"},                // * 32
	{2, "15625"},               // * 64
	{3, "78125"},               // * 128
	{3, "390625"},              // * 256
	{3, "1953125"},             // * 512
	{4, "9765625"},             // * 1024
	{4, "48828125"},            // * 2048
	{4, "244140625"},           // * 4096
	{4, "1220703125"},          // * 8192
	{5, "6103515625"},          // * 16384
	{5, "30517578125"},         // * 32768
	{5, "152587890625"},        // * 65536
	{6, "762939453125"},        // * 131072
	{6, "3814697265625"},       // * 262144
	{6, "19073486328125"},      // * 524288
	{7, "95367431640625"},      // * 1048576
	{7, "476837158203125"},     // * 2097152
	{7, "2384185791015625"},    // * 4194304
	{7, "11920928955078125"},   // * 8388608
	{8, "59604644775390625"},   // * 16777216
	{8, "298023223876953125"},  // * 33554432
	{8, "1490116119384765625"}, // * 67108864
	{9, "7450580596923828125"}, // * 134217728
}

// prefixLess reports whether the leading digits of b are
// lexicographically smaller than s.
func prefixLess(b []byte, s string) bool {
	for i := 0; i < len(s); i++ {
		if i >= len(b) {
			return true
		}
		if b[i] != s[i] {
			return b[i] < s[i]
		}
	}
	return false
}

// shiftLeft multiplies x by 2^s, with s <= maxShift.
func (x *exact) shiftLeft(s uint) {
	delta := shiftCheats[s].delta
	if prefixLess(x.dig[0:x.nd], shiftCheats[s].cutoff) {
		delta--
	}

	r := x.nd         // read index
	w := x.nd + delta // write index
	n := 0

	// Pick up a digit, put down a digit.
	for r--; r >= 0; r-- {
		n += (int(x.dig[r]) - '0') << s
		quo := n / 10
		rem := n - 10*quo
		w--
		if w < len(x.dig) {
			x.dig[w] = byte(rem + '0')
		} else if rem != 0 {
			x.clipped = true
		}
		n = quo
	}

	// Put down extra digits.
	for n > 0 {
		quo := n / 10
		rem := n - 10*quo
		w--
		if w < len(x.dig) {
			x.dig[w] = byte(rem + '0')
		} else if rem != 0 {
			x.clipped = true
		}
		n = quo
	}

	x.nd += delta
	if x.nd >= len(x.dig) {
		x.nd = len(x.dig)
	}
	x.point += delta
	x.trim()
}

// shift multiplies x by 2^s (s > 0) or divides it by 2^-s (s < 0).
func (x *exact) shift(s int) {
	switch {
	case x.nd == 0:
		// nothing to do: x == 0
	case s > 0:
		for s > maxShift {
			x.shiftLeft(maxShift)
			s -= maxShift
		}
		x.shiftLeft(uint(s))
	case s < 0:
		for s < -maxShift {
			x.shiftRight(maxShift)
			s += maxShift
		}
		x.shiftRight(uint(-s))
	}
}

// shouldRoundUp reports whether chopping x after nd digits rounds up
// under the round-half-to-even rule.
func (x *exact) shouldRoundUp(nd int) bool {
	if nd < 0 || nd >= x.nd {
		return false
	}
	if x.dig[nd] == '5' && nd+1 == x.nd { // exactly halfway: round to even
		// Clipped digits mean the true value is a little higher than
		// recorded, so it is above the halfway point.
		if x.clipped {
			return true
		}
		return nd > 0 && (x.dig[nd-1]-'0')%2 != 0
	}
	// not halfway: the next digit decides
	return x.dig[nd] >= '5'
}

// round keeps nd digits (or fewer), rounding half to even.
// If nd is zero, rounding happens just to the left of the digits,
// as in 0.09 -> 0.1.
func (x *exact) round(nd int) {
	if nd < 0 || nd >= x.nd {
		return
	}
	if x.shouldRoundUp(nd) {
		x.roundUp(nd)
	} else {
		x.roundDown(nd)
	}
}

// roundDown keeps nd digits (or fewer), rounding towards zero.
func (x *exact) roundDown(nd int) {
	if nd < 0 || nd >= x.nd {
		return
	}
	x.nd = nd
	x.trim()
}

// roundUp keeps nd digits (or fewer), rounding away from zero.
func (x *exact) roundUp(nd int) {
	if nd < 0 || nd >= x.nd {
		return
	}

	for i := nd - 1; i >= 0; i-- {
		if x.dig[i] < '9' { // can stop after this digit
			x.dig[i]++
			x.nd = i + 1
			return
		}
	}

	// Number is all 9s. Becomes a single 1 with adjusted decimal point.
	x.dig[0] = '1'
	x.nd = 1
	x.point++
}

// roundedSignificand extracts the integer part of x, rounded half to
// even. There are no guarantees about overflow.
func (x *exact) roundedSignificand() uint64 {
	if x.point > 20 {
		return 0xFFFFFFFFFFFFFFFF
	}
	var i int
	n := uint64(0)
	for i = 0; i < x.point && i < x.nd; i++ {
		n = n*10 + uint64(x.dig[i]-'0')
	}
	for ; i < x.point; i++ {
		n *= 10
	}
	if x.shouldRoundUp(x.point) {
		n++
	}
	return n
}
