package frac

import "golang.org/x/exp/constraints"

// gcd returns the greatest common divisor of |a| and |b|.
// gcd(n, 0) == |n|, so gcd(0, 0) == 0.
// Neither argument may be the minimum value of T.
func gcd[T constraints.Signed](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
