package decimal

import "fmt"

// MustNew is like [New] but panics if the coefficient or scale is out of range.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) *Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string, scale int) *Decimal {
	d, err := Parse(s, scale)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q, %v) failed: %v", s, scale, err))
	}
	return d
}

// MustAdd is like [Decimal.Add] but panics if the sum overflows.
// Call it only after [Decimal.CanAdd] returned true.
func (d *Decimal) MustAdd(e *Decimal) *Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}
