// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Divisors returns the divisors of n that lie in [lo, hi], ascending.
func Divisors(n, lo, hi int) []int {
	if n == 0 {
		return nil
	}
	n = Abs(n)
	if lo < 1 {
		lo = 1
	}
	var out []int
	for d := lo; d <= hi && d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}
