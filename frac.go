// Package frac provides a rational number type kept in lowest terms.
//
// A Frac has an int64 numerator and a non-negative int64 denominator with no
// common factor. Every rational value has exactly one representation, so two
// Frac values are equal exactly when their fields are equal, and == can be
// used directly.
//
// A denominator of zero is allowed only as a signed infinity: n/0 with n != 0
// normalizes to 1/0 or -1/0. 0/0 is rejected with ErrDivisionByZero.
package frac

import (
	"fmt"
	"math"
	"math/big"
)

// Frac is a rational number in canonical form.
//
// The zero value is 0/1. Frac has value semantics and may be freely copied.
type Frac struct {
	num int64
	den int64 // denominator - 1, so the zero value is 0/1 and infinities store -1
}

// Operands below this magnitude can be combined in int64 without overflow:
// products stay under 2^62 and sums of two products under 2^63.
const small = math.MaxInt32

// floatScale is the resolution used by FromFloat.
const floatScale = 1e10

var (
	posInf = Frac{num: 1, den: -1}
	negInf = Frac{num: -1, den: -1}
)

// New returns num/den in lowest terms with the sign on the numerator.
//
// New(n, 0) returns 1/0 for n > 0 and -1/0 for n < 0. New(0, 0) returns
// ErrDivisionByZero. If the normalized value does not fit in int64, for
// example New(math.MinInt64, -1), New returns an *OverflowError.
func New(num, den int64) (Frac, error) {
	if num == math.MinInt64 || den == math.MinInt64 {
		return fromBig("new", big.NewInt(num), big.NewInt(den))
	}
	return normalize(num, den)
}

// MustNew is like New but panics on error.
func MustNew(num, den int64) Frac {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// FromFloat approximates x to the nearest multiple of 1e-10.
// ±Inf become ±1/0 and NaN returns ErrDivisionByZero.
func FromFloat(x float64) (Frac, error) {
	switch {
	case math.IsNaN(x):
		return Frac{}, ErrDivisionByZero
	case math.IsInf(x, 1):
		return posInf, nil
	case math.IsInf(x, -1):
		return negInf, nil
	}

	scaled := math.Round(x * floatScale)
	if scaled >= math.MaxInt64 || scaled < math.MinInt64 {
		return Frac{}, &OverflowError{Op: "float", Part: "numerator"}
	}
	return New(int64(scaled), floatScale)
}

// Num returns the numerator of f.
func (f Frac) Num() int64 {
	return f.num
}

// Den returns the denominator of f. It is zero only for infinities.
func (f Frac) Den() int64 {
	return f.den + 1
}

// IsInf reports whether f is 1/0 or -1/0.
func (f Frac) IsInf() bool {
	return f.den == -1
}

// Add returns f + g computed as (f.num*g.den + f.den*g.num) / (f.den*g.den).
//
// Adding infinities of opposite sign, or two infinities of the same sign,
// yields 0/0 and returns ErrDivisionByZero.
func (f Frac) Add(g Frac) (Frac, error) {
	fn, fd := f.Num(), f.Den()
	gn, gd := g.Num(), g.Den()

	if fits(fn, fd, gn, gd) {
		return normalize(fn*gd+fd*gn, fd*gd)
	}

	top := new(big.Int).Mul(big.NewInt(fn), big.NewInt(gd))
	top.Add(top, new(big.Int).Mul(big.NewInt(fd), big.NewInt(gn)))

	bottom := new(big.Int).Mul(big.NewInt(fd), big.NewInt(gd))
	return fromBig("add", top, bottom)
}

// Mul returns f * g computed as (f.num*g.num) / (f.den*g.den).
//
// Multiplying an infinity by zero yields 0/0 and returns ErrDivisionByZero.
func (f Frac) Mul(g Frac) (Frac, error) {
	fn, fd := f.Num(), f.Den()
	gn, gd := g.Num(), g.Den()

	if fits(fn, fd, gn, gd) {
		return normalize(fn*gn, fd*gd)
	}

	top := new(big.Int).Mul(big.NewInt(fn), big.NewInt(gn))
	bottom := new(big.Int).Mul(big.NewInt(fd), big.NewInt(gd))
	return fromBig("mul", top, bottom)
}

// Equal reports whether f and g are the same rational value.
// Neither operand is modified.
func (f Frac) Equal(g Frac) bool {
	return f.num == g.num && f.den == g.den
}

// String returns f as "num/den".
func (f Frac) String() string {
	return fmt.Sprintf("%d/%d", f.Num(), f.Den())
}

// Float returns f as a float64. Infinities map to ±Inf.
func (f Frac) Float() float64 {
	return float64(f.Num()) / float64(f.Den())
}

func fits(xs ...int64) bool {
	for _, x := range xs {
		if x <= -small || x >= small {
			return false
		}
	}
	return true
}

// normalize reduces num/den. Neither argument may be math.MinInt64.
func normalize(num, den int64) (Frac, error) {
	switch {
	case den < 0:
		num, den = -num, -den
	case den == 0:
		return infinity(num)
	}

	g := gcd(num, den)
	return Frac{num: num / g, den: den/g - 1}, nil
}

// fromBig is normalize for values that may not fit in int64.
// It takes ownership of num and den.
func fromBig(op string, num, den *big.Int) (Frac, error) {
	switch den.Sign() {
	case -1:
		num.Neg(num)
		den.Neg(den)
	case 0:
		return infinity(int64(num.Sign()))
	}

	// 約分
	g := new(big.Int).GCD(nil, nil, num, den)
	if g.Cmp(big.NewInt(1)) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	if !num.IsInt64() {
		return Frac{}, &OverflowError{Op: op, Part: "numerator"}
	}
	if !den.IsInt64() {
		return Frac{}, &OverflowError{Op: op, Part: "denominator"}
	}
	return Frac{num: num.Int64(), den: den.Int64() - 1}, nil
}

func infinity(sign int64) (Frac, error) {
	switch {
	case sign > 0:
		return posInf, nil
	case sign < 0:
		return negInf, nil
	}
	return Frac{}, ErrDivisionByZero
}
