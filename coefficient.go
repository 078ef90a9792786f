package decimal

import "strings"

// MaxCoef is the maximum coefficient of a decimal, equal to math.MaxInt32.
const MaxCoef = 1<<31 - 1

// maxCoefDigits is MaxCoef written in decimal digits.
const maxCoefDigits = "2147483647"

// fint (Fast INTeger) is a wrapper around uint64.
// It is wide enough to hold any sum of two aligned coefficients.
type fint uint64

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// isCoef returns true if x fits into the coefficient range [0, MaxCoef].
func (x fint) isCoef() bool {
	return x <= MaxCoef
}

// add calculates x + y and checks that the sum is still a valid coefficient.
func (x fint) add(y fint) (z fint, ok bool) {
	if !x.isCoef() || !y.isCoef() {
		return 0, false
	}
	z = x + y // cannot wrap, both operands are below 2^31
	if !z.isCoef() {
		return 0, false
	}
	return z, true
}

// mul calculates x * y and checks uint64 overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks uint64 overflow.
// A false result means that the shifted value is greater than any uint64.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0 || x == 0:
		return x, true
	case shift == 1 && x < MaxCoef: // to speed up common case
		return x * 10, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	return x.mul(pow10[shift])
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks
// that the result is a valid coefficient.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// align rescales the coefficients of d and e to the larger of their scales.
// It returns false if either aligned coefficient exceeds [MaxCoef].
func align(d, e *Decimal) (dcoef, ecoef fint, scale int, ok bool) {
	dcoef = fint(d.coef)
	ecoef = fint(e.coef)

	switch {
	case d.scale == e.scale:
		scale = d.scale
	case e.scale < d.scale:
		scale = d.scale
		ecoef, ok = ecoef.lsh(d.scale - e.scale)
		if !ok {
			return 0, 0, scale, false
		}
	case d.scale < e.scale:
		scale = e.scale
		dcoef, ok = dcoef.lsh(e.scale - d.scale)
		if !ok {
			return 0, 0, scale, false
		}
	}

	if !dcoef.isCoef() || !ecoef.isCoef() {
		return 0, 0, scale, false
	}
	return dcoef, ecoef, scale, true
}

// exceedsMaxCoef reports whether a string of decimal digits represents
// a number greater than [MaxCoef].
// Leading zeros are ignored; longer strings are larger, strings of equal
// length are compared digit by digit.
func exceedsMaxCoef(digits string) bool {
	digits = strings.TrimLeft(digits, "0")
	if len(digits) != len(maxCoefDigits) {
		return len(digits) > len(maxCoefDigits)
	}
	return digits > maxCoefDigits
}
