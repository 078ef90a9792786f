package decimal

import (
	"fmt"
	"strings"
)

// ParseError describes a text that could not be parsed as a decimal
// with the given scale.
type ParseError struct {
	Input string
	Scale int
	Err   error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("decimal: parse %q with scale %v: %v", p.Input, p.Scale, p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

// IsValidInput reports whether s can be parsed as a decimal with the given scale.
// The whole string must match the following grammar, where at most scale
// digits may follow the separator:
//
//	digits    ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	separator ::= ',' | '.'
//	input     ::= digits [separator] digits
//
// Signs, spaces, grouping separators and exponents are rejected.
// Missing digit groups count as zero, so "", ".", "5." and ",5" are all valid.
// The coefficient of the parsed value must not exceed [MaxCoef].
//
// IsValidInput never panics; it returns false for a negative scale.
func IsValidInput(s string, scale int) bool {
	_, err := parseInput(s, scale)
	return err == nil
}

// parseInput converts s to the coefficient of a decimal with the given scale.
// The integer part defaults to "0" and the fractional part is padded with
// trailing zeros up to scale digits before both parts are joined.
func parseInput(s string, scale int) (int32, error) {
	intdigs, fracdigs, err := scanInput(s, scale)
	if err != nil {
		return 0, err
	}

	digits := strings.TrimLeft(intdigs+fracdigs, "0")
	if digits == "" {
		return 0, nil
	}

	// Padding is only materialized once it is known to fit.
	pad := scale - len(fracdigs)
	if pad > len(maxCoefDigits)-len(digits) {
		return 0, fmt.Errorf("%w: %w", ErrFormat, ErrOverflow)
	}
	digits += strings.Repeat("0", pad)
	if exceedsMaxCoef(digits) {
		return 0, fmt.Errorf("%w: %w", ErrFormat, ErrOverflow)
	}

	var (
		coef fint
		ok   bool
	)
	for i := 0; i < len(digits); i++ {
		coef, ok = coef.fsa(1, digits[i]-'0')
		if !ok {
			return 0, fmt.Errorf("%w: %w", ErrFormat, ErrOverflow)
		}
	}
	return int32(coef), nil
}

// scanInput splits s into its integer and fractional digits.
func scanInput(s string, scale int) (intdigs, fracdigs string, err error) {
	if scale < 0 {
		return "", "", fmt.Errorf("%w: %w", ErrFormat, errScaleRange)
	}

	var (
		pos   int
		width int
		start int
	)

	width = len(s)

	// Integer
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intdigs = s[:pos]

	// Separator
	if pos < width && isSeparator(s[pos]) {
		pos++
	}

	// Fraction
	start = pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	fracdigs = s[start:pos]

	if pos != width {
		return "", "", fmt.Errorf("invalid character %q at position %v: %w", s[pos], pos, ErrFormat)
	}
	if len(fracdigs) > scale {
		return "", "", fmt.Errorf("%v fractional digit(s), but at most %v allowed: %w", len(fracdigs), scale, ErrFormat)
	}
	return intdigs, fracdigs, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSeparator(c byte) bool {
	return c == ',' || c == '.'
}
