/*
Package decimal implements immutable, non-negative fixed-point decimal numbers.
It is designed for monetary values and weights in inventory editors, where
user input has to be validated keystroke by keystroke and sums must never
silently wrap around.

# Representation

[Decimal] is a struct with two fields:

  - Coefficient: a non-negative 32-bit integer representing the numeric value
    of the decimal without the decimal separator.
  - Scale: a non-negative integer indicating how many digits of the
    coefficient follow the decimal separator.
    For example, a decimal with a coefficient of 501 and a scale of 2
    represents the value 5.01.

The numerical value of a decimal is Coefficient / 10^Scale.

Decimals are interned: a [Cache] holds at most one *Decimal for every
coefficient and scale, so decimals obtained with equal parameters are the
same pointer.
The process-wide [Default] cache backs [New] and [Parse]; entries are never
removed.

# Constraints

The coefficient ranges from 0 to [MaxCoef] (2,147,483,647), so the range of
a decimal is determined by its scale:

	| Example      | Scale | Minimum | Maximum        |
	| ------------ | ----- | ------- | -------------- |
	| Nuyen        | 0     | 0       | 2147483647     |
	| Euro         | 2     | 0,00    | 21474836,47    |
	| Kilogram     | 3     | 0,000   | 2147483,647    |

Negative numbers, multiplication and division are not supported.

# Conversions

  - from string: [Parse], validated by [IsValidInput].
  - from integer: [New].
  - to string: [Decimal.String], [Decimal.MarshalText], [Decimal.Format].

[Decimal.String] always uses ',' as the decimal separator.
[Parse] accepts ',' and '.' interchangeably and fills missing digits with
zeros, so "5.", ",5" and "" are valid inputs.

# Operations

[Decimal.Add] aligns both operands to the larger scale by multiplying the
coefficient of the other one by a power of ten.
Both aligned coefficients and their sum must fit into [MaxCoef].
[Decimal.CanAdd] reports in advance whether this holds; callers are expected
to check it before adding.

[Decimal.Cmp] compares decimals numerically regardless of scale and defines
a total order. [Decimal.Equal] and [Decimal.Hash] are consistent with it.

# Errors

Predicates ([IsValidInput], [Decimal.CanAdd]) never fail.
Factories and arithmetic return errors that wrap one of:

  - [ErrInvalidArgument]: negative scale, coefficient out of range or nil operand.
  - [ErrFormat]: text that does not satisfy [IsValidInput], reported as [*ParseError].
  - [ErrOverflow]: a sum or a parsed value greater than [MaxCoef].
*/
package decimal
