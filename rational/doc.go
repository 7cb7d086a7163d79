// Package rational provides exact arithmetic helpers over math/big rationals.
//
// What:
//
//   - Sum, Product: n-ary addition and multiplication of *big.Rat values.
//   - Pow: non-negative integer powers (x^0 == 1, including 0^0).
//   - Factorial, Multinomial: integer coefficients as *big.Int.
//   - Zero, One, FromInt: constructors for fresh values.
//
// Why:
//
//   - Probabilities over finite combinatorial spaces are ratios of integers;
//     keeping them as *big.Rat means results compare exactly and never drift.
//
// Every helper returns a freshly allocated value and never mutates its
// arguments, so results may be shared or retained by callers.
//
// Complexity:
//
//   - Sum, Product:  O(n) big-number operations
//   - Pow:           O(log k) multiplications (square-and-multiply via big.Int.Exp)
//   - Factorial:     O(n) multiplications
//   - Multinomial:   O(Σk) multiplications
//
// Errors:
//
//   - ErrNegativeExponent   Pow called with k < 0
//   - ErrNegativeFactorial  Factorial/Multinomial called with a negative argument
package rational
