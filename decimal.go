package decimal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Decimal is a non-negative fixed-point decimal number.
// Decimals are immutable and interned: for a given coefficient and scale a
// [Cache] holds exactly one *Decimal, so two decimals obtained from the same
// cache with the same parameters are the same pointer.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal consists of two parameters:
//
//   - Coefficient: an integer value of the decimal without the decimal point.
//   - Scale: the number of digits after the decimal point.
//
// For example, a decimal with a coefficient of 501 and a scale of 2 represents
// the value 5.01.
// The same numerical value can be represented with different scales:
// 5,01 and 5,010 are equal according to [Decimal.Equal], but they are
// distinct instances.
//
// The zero value is the numeric value of 0 with a scale of 0.
// It is not interned; prefer [New] or [Parse] to obtain decimals.
type Decimal struct {
	coef  int32  // the coefficient of the decimal
	scale int    // the number of digits after the decimal separator
	cache *Cache // the cache the decimal is interned in
}

// Separator is the fractional separator used by [Decimal.String].
// [Parse] accepts both ',' and '.'.
const Separator = ','

var (
	// ErrInvalidArgument is returned when a scale or coefficient is out of range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFormat is returned when a text is not a valid decimal for the given scale.
	ErrFormat = errors.New("invalid decimal format")
	// ErrOverflow is returned when a coefficient would exceed [MaxCoef].
	ErrOverflow = errors.New("coefficient overflow")

	errScaleRange = fmt.Errorf("scale out of range: %w", ErrInvalidArgument)
	errCoefRange  = fmt.Errorf("coefficient out of range: %w", ErrInvalidArgument)
	errNilOperand = fmt.Errorf("nil operand: %w", ErrInvalidArgument)
)

// New returns the decimal equal to coef / 10^scale from the [Default] cache.
// New returns an error if scale is negative or if coef is negative or
// greater than [MaxCoef].
func New(coef int64, scale int) (*Decimal, error) {
	return defaultCache.New(coef, scale)
}

// Parse converts a string to a decimal with the given scale, using the
// [Default] cache.
// See [IsValidInput] for the accepted format.
// Parse returns a [*ParseError] wrapping [ErrFormat] if s is not valid.
func Parse(s string, scale int) (*Decimal, error) {
	return defaultCache.Parse(s, scale)
}

// Coef returns the coefficient of the decimal.
// For example, the coefficient of 5,01 is 501.
func (d *Decimal) Coef() int32 {
	return d.coef
}

// Scale returns the number of digits after the decimal separator.
func (d *Decimal) Scale() int {
	return d.scale
}

// IsZero returns true if the decimal is equal to 0.
func (d *Decimal) IsZero() bool {
	return d.coef == 0
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of the decimal.
// The coefficient is padded with leading zeros to at least scale+1 digits and
// the [Separator] is placed before the last scale digits:
//
//	New(501, 2) -> "5,01"
//	New(7, 3)   -> "0,007"
//	New(42, 0)  -> "42"
//
// Parse(d.String(), d.Scale()) returns d itself.
func (d *Decimal) String() string {
	if d == nil {
		return "<nil>"
	}

	digs := strconv.FormatInt(int64(d.coef), 10)
	if d.scale == 0 {
		return digs
	}

	// Leading zeros
	if len(digs) <= d.scale {
		digs = "0" + strings.Repeat("0", d.scale-len(digs)) + digs
	}

	// Separator
	pos := len(digs) - d.scale
	return digs[:pos] + string(Separator) + digs[pos:]
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d *Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 5,01
//	%q:    "5,01"
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d *Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = state.Write([]byte(d.String()))
	case 'q':
		_, _ = state.Write([]byte(strconv.Quote(d.String())))
	default:
		fmt.Fprintf(state, "%%!%c(*decimal.Decimal=%s)", verb, d.String())
	}
}

// Hash returns a hash of the numeric value of the decimal.
// Decimals that are equal according to [Decimal.Equal] have equal hashes,
// regardless of their scales.
func (d *Decimal) Hash() uint64 {
	coef, scale := d.coef, d.scale
	for scale > 0 && coef%10 == 0 {
		coef /= 10
		scale--
	}
	r := Decimal{coef: coef, scale: scale}
	return xxhash.Sum64String(r.String())
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Cmp defines a total order over decimals of any scale.
// e must not be nil.
func (d *Decimal) Cmp(e *Decimal) int {
	// Special case: same instance
	if d == e {
		return 0
	}

	var (
		dcoef fint
		ecoef fint
		ok    bool
	)

	dcoef = fint(d.coef)
	ecoef = fint(e.coef)

	// Alignment.
	// If the alignment overflows uint64, the shifted coefficient is larger
	// than any coefficient on the other side.
	switch {
	case e.scale < d.scale:
		ecoef, ok = ecoef.lsh(d.scale - e.scale)
		if !ok {
			return -1
		}
	case d.scale < e.scale:
		dcoef, ok = dcoef.lsh(e.scale - d.scale)
		if !ok {
			return 1
		}
	}

	// Comparison
	switch {
	case ecoef < dcoef:
		return 1
	case dcoef < ecoef:
		return -1
	default:
		return 0
	}
}

// Equal returns true if d and e represent the same numeric value.
// Equal returns false if e is nil.
func (d *Decimal) Equal(e *Decimal) bool {
	if e == nil {
		return false
	}
	return d.Cmp(e) == 0
}

// Max returns the larger of d and e.
// If they are equal, Max returns d.
// e must not be nil.
func (d *Decimal) Max(e *Decimal) *Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller of d and e.
// If they are equal, Min returns d.
// e must not be nil.
func (d *Decimal) Min(e *Decimal) *Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// CanAdd reports whether e can be added to d without overflow.
// The operand with fewer digits after the decimal point is rescaled first,
// and the result is false if the rescaled coefficient already exceeds
// [MaxCoef] or if the sum of the aligned coefficients exceeds [MaxCoef].
// CanAdd returns false if e is nil.
func (d *Decimal) CanAdd(e *Decimal) bool {
	if e == nil {
		return false
	}
	dcoef, ecoef, _, ok := align(d, e)
	if !ok {
		return false
	}
	_, ok = dcoef.add(ecoef)
	return ok
}

// Add returns the sum of d and e.
// The scale of the result is the larger of the scales of d and e, and the
// result is interned in the same cache as d, so it may be a pre-existing
// instance.
//
// Add returns an error wrapping [ErrOverflow] when [Decimal.CanAdd] is false.
func (d *Decimal) Add(e *Decimal) (*Decimal, error) {
	if e == nil {
		return nil, fmt.Errorf("adding to %v: %w", d, errNilOperand)
	}
	dcoef, ecoef, scale, ok := align(d, e)
	if !ok {
		return nil, fmt.Errorf("aligning %v and %v to scale %v: %w", d, e, scale, ErrOverflow)
	}
	coef, ok := dcoef.add(ecoef)
	if !ok {
		return nil, fmt.Errorf("adding %v and %v: %w", d, e, ErrOverflow)
	}
	return d.owner().get(int32(coef), scale), nil
}

// Sum returns the sum of all given decimals.
// The result is interned in the cache of the first decimal; the sum of
// no decimals is 0 with a scale of 0 from the [Default] cache.
// Sum returns an error wrapping [ErrOverflow] as soon as a partial sum
// overflows, and an error wrapping [ErrInvalidArgument] for nil operands.
func Sum(ds ...*Decimal) (*Decimal, error) {
	if len(ds) == 0 {
		return defaultCache.get(0, 0), nil
	}
	if ds[0] == nil {
		return nil, fmt.Errorf("summand 0: %w", errNilOperand)
	}
	total := ds[0]
	for i := 1; i < len(ds); i++ {
		if ds[i] == nil {
			return nil, fmt.Errorf("summand %v: %w", i, errNilOperand)
		}
		var err error
		total, err = total.Add(ds[i])
		if err != nil {
			return nil, fmt.Errorf("summand %v: %w", i, err)
		}
	}
	return total, nil
}

// owner returns the cache the decimal is interned in.
// Decimals created outside of a cache belong to the [Default] cache.
func (d *Decimal) owner() *Cache {
	if d.cache == nil {
		return defaultCache
	}
	return d.cache
}
