package safenum

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortestDecimal(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{0.1, "0.1"},
		{0.3, "0.3"},
		{-0.123, "-0.123"},
		{1024, "1024"},
		{123.456, "123.456"},
		{1234.5678, "1234.5678"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1.0 / 3.0, "0.3333333333333333"},
		{math.Pi, "3.141592653589793"},
		{9007199254740991, "9007199254740991"},
		{9007199254740993, "9007199254740992"},
		{1e21, "1000000000000000000000"},
		{5e-324, shortestSubnormal},
	}
	for _, tt := range tests {
		got := shortestDecimal(tt.f)
		if s := got.String(); s != tt.want {
			t.Errorf("shortestDecimal(%v) = %q, want %q", tt.f, s, tt.want)
		}
	}
}

// shortestSubnormal is the shortest decimal form of the smallest
// positive subnormal, 2^-1074: a 5 preceded by 323 zeros.
var shortestSubnormal = "0." + strings.Repeat("0", 323) + "5"

func TestShortestDecimal_SpecialValues(t *testing.T) {
	// Out-of-domain values map to zero rather than panicking.
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		got := shortestDecimal(f)
		if !got.isZero() {
			t.Errorf("shortestDecimal(%v) = %q, want 0", f, got.String())
		}
	}
	// Negative zero formats as plain zero.
	got := shortestDecimal(math.Copysign(0, -1))
	if s := got.String(); s != "0" {
		t.Errorf("shortestDecimal(-0) = %q, want %q", s, "0")
	}
}

func TestShortestDecimal_RoundTrips(t *testing.T) {
	// The defining property: converting the shortest form back yields
	// the exact same binary64 value.
	tests := []float64{
		0, 1, 0.1, 0.3, 2.0 / 3.0, math.Pi, math.E, math.Sqrt2,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		5e-324, 1e-300, 1e300, 123456789.987654321,
	}
	for _, tt := range tests {
		d := shortestDecimal(tt)
		got := d.float64()
		require.Equal(t, math.Float64bits(tt), math.Float64bits(got),
			"shortestDecimal(%v) = %q, which converts back to %v", tt, d.String(), got)
	}
}

func FuzzShortestDecimal(f *testing.F) {
	corpus := []uint64{
		0,
		math.Float64bits(0.1),
		math.Float64bits(1.0 / 3.0),
		math.Float64bits(math.Pi),
		math.Float64bits(5e-324),
		math.Float64bits(math.MaxFloat64),
		math.Float64bits(9007199254740993),
	}
	for _, bits := range corpus {
		f.Add(bits)
	}

	f.Fuzz(
		func(t *testing.T, bits uint64) {
			val := math.Float64frombits(bits)
			if math.IsNaN(val) || math.IsInf(val, 0) {
				t.Skip()
				return
			}
			d := shortestDecimal(val)

			// Shortest digits must match the reference formatter.
			want := strconv.FormatFloat(val, 'f', -1, 64)
			if val == 0 {
				// String(-0) is "0": the mathematical value has no sign.
				want = "0"
			}
			require.Equal(t, want, d.String(), "shortestDecimal(%v)", val)

			// And must convert back to the identical value.
			if val != 0 {
				require.Equal(t, math.Float64bits(val), math.Float64bits(d.float64()),
					"shortestDecimal(%v) = %q does not round-trip", val, d.String())
			}
		},
	)
}
