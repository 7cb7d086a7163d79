package rational

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNegativeExponent indicates Pow was asked for a negative power.
	ErrNegativeExponent = errors.New("rational: exponent must be non-negative")

	// ErrNegativeFactorial indicates a factorial of a negative integer was requested.
	ErrNegativeFactorial = errors.New("rational: factorial of negative number")
)

// Zero returns a fresh rational 0.
func Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh rational 1.
func One() *big.Rat { return big.NewRat(1, 1) }

// FromInt returns n as a rational.
func FromInt(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// Sum returns x1 + x2 + ... + xn. The empty sum is 0.
// Nil entries are treated as 0.
func Sum(xs ...*big.Rat) *big.Rat {
	acc := Zero()
	for _, x := range xs {
		if x != nil {
			acc.Add(acc, x)
		}
	}

	return acc
}

// Product returns x1 * x2 * ... * xn. The empty product is 1.
// A nil entry is treated as 0, which makes the whole product 0.
func Product(xs ...*big.Rat) *big.Rat {
	acc := One()
	for _, x := range xs {
		if x == nil || x.Sign() == 0 {
			return Zero() // short-circuit: nothing can lift a zero factor
		}
		acc.Mul(acc, x)
	}

	return acc
}

// Pow returns x^k for k >= 0. x^0 is 1 for every x, including 0.
//
// Numerator and denominator are raised separately with big.Int.Exp, which is
// exact and keeps the result in lowest terms because gcd(a^k, b^k) == 1
// whenever gcd(a, b) == 1.
func Pow(x *big.Rat, k int) (*big.Rat, error) {
	if k < 0 {
		return nil, fmt.Errorf("Pow(%s, %d): %w", x, k, ErrNegativeExponent)
	}
	if k == 0 {
		return One(), nil
	}
	if x == nil || x.Sign() == 0 {
		return Zero(), nil
	}

	exp := big.NewInt(int64(k))
	num := new(big.Int).Exp(x.Num(), exp, nil)
	den := new(big.Int).Exp(x.Denom(), exp, nil)

	return new(big.Rat).SetFrac(num, den), nil
}

// Factorial returns n! as a *big.Int. 0! == 1.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Factorial(%d): %w", n, ErrNegativeFactorial)
	}
	if n < 2 {
		return big.NewInt(1), nil
	}

	return new(big.Int).MulRange(1, int64(n)), nil
}

// Multinomial returns the multinomial coefficient (k1+...+km)! / (k1! * ... * km!),
// i.e. the number of distinct arrangements of a multiset with the given counts.
func Multinomial(counts ...int) (*big.Int, error) {
	total := 0
	for _, k := range counts {
		if k < 0 {
			return nil, fmt.Errorf("Multinomial(%v): %w", counts, ErrNegativeFactorial)
		}
		total += k
	}

	num, err := Factorial(total)
	if err != nil {
		return nil, err
	}

	den := big.NewInt(1)
	var f *big.Int
	for _, k := range counts {
		if f, err = Factorial(k); err != nil {
			return nil, err
		}
		den.Mul(den, f)
	}

	// exact: the multinomial coefficient is always an integer
	return num.Quo(num, den), nil
}

// Equal reports whether a and b denote the same rational. Nil equals nil only.
func Equal(a, b *big.Rat) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Cmp(b) == 0
}

// IsZero reports whether x is nil or 0.
func IsZero(x *big.Rat) bool { return x == nil || x.Sign() == 0 }

// IsOne reports whether x is exactly 1.
func IsOne(x *big.Rat) bool { return x != nil && x.Cmp(one) == 0 }

var one = big.NewRat(1, 1) // read-only
