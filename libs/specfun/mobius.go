// Package specfun implements the number-theoretic special functions behind
// the Riemann prime-counting approximation: the Möbius function, the
// logarithmic integral, and R(x) with its derivative.
package specfun

// Values of the Möbius function for k = 1..15. Index 0 is a placeholder.
var mobiusTable = [16]int{0, 1, -1, -1, 0, -1, 1, -1, 0, 0, 1, -1, 0, -1, 1, 1}

// Mobius returns μ(k): 0 if k has a squared prime factor, otherwise
// (-1)^(number of distinct prime factors), with μ(1) = 1. Values up to 15
// come from a precomputed table, larger arguments are factored by trial
// division and short-circuit to 0 on the first squared factor.
func Mobius(k int) int {
	if k < 1 {
		return 0
	}
	if k <= 15 {
		return mobiusTable[k]
	}

	factors := 0
	rest := k
	for i := 2; i*i <= rest; i++ {
		if rest%i == 0 {
			factors++
			rest /= i
			if rest%i == 0 {
				return 0
			}
		}
	}
	if rest > 1 {
		factors++
	}
	if factors%2 != 0 {
		return -1
	}
	return 1
}
