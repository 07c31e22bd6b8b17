package predictor

import (
	"math"
	"math/big"

	"github.com/z5dlabs/z5d-go/types/xerrors"
)

// Small primes 2..97 used for presieving candidates.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// Miller-Rabin witness set proven deterministic below 3.3e24.
var mrWitnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

var (
	intOne = big.NewInt(1)
	intTwo = big.NewInt(2)
	intSix = big.NewInt(6)
)

// refined carries the probable prime plus search metadata.
type refined struct {
	prime  *big.Int
	tested int
	offset *big.Int
}

// refiner snaps a continuous estimate to a verified probable prime: round,
// force odd, snap to 6k±1, presieve, Miller-Rabin, then an expanding
// symmetric window and a bounded forward scan.
type refiner struct {
	windowOverride int
	maxScanSteps   int
}

// snapSixk moves n to the nearest residue ≡ ±1 (mod 6) in the given
// direction. Residues 1 and 5 stay put.
func snapSixk(n *big.Int, dir int) *big.Int {
	r := new(big.Int).Mod(n, intSix).Int64()
	var delta int64
	if dir < 0 {
		switch r {
		case 0, 2:
			delta = 1
		case 3:
			delta = 2
		case 4:
			delta = 3
		}
		return new(big.Int).Sub(n, big.NewInt(delta))
	}
	switch r {
	case 0:
		delta = 1
	case 2:
		delta = 3
	case 3:
		delta = 2
	case 4:
		delta = 1
	}
	return new(big.Int).Add(n, big.NewInt(delta))
}

// passesSieve reports whether n survives trial division by the small-prime
// table. Equality with a table prime passes.
func passesSieve(n *big.Int) bool {
	rem := new(big.Int)
	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if n.Cmp(bp) == 0 {
			return true
		}
		if rem.Mod(n, bp).Sign() == 0 {
			return false
		}
	}
	return true
}

// millerRabin runs the deterministic Miller-Rabin test over the fixed
// witness set. n must be odd and >= 5.
func millerRabin(n *big.Int) bool {
	nm1 := new(big.Int).Sub(n, intOne)

	// n-1 = d * 2^r with d odd
	d := new(big.Int).Set(nm1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	x := new(big.Int)
	for _, w := range mrWitnesses {
		a := big.NewInt(w)
		if a.Cmp(nm1) >= 0 {
			continue
		}
		x.Exp(a, d, n)
		if x.Cmp(intOne) == 0 || x.Cmp(nm1) == 0 {
			continue
		}
		witness := true
		for i := 0; i < r-1; i++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nm1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

func isProbablePrime(n *big.Int) bool {
	if n.Cmp(intTwo) < 0 {
		return false
	}
	if !passesSieve(n) {
		return false
	}
	return millerRabin(n)
}

// windowSize derives the symmetric search window max(256, ceil(4·ln n)).
func windowSize(n *big.Int) int64 {
	f, _ := new(big.Float).SetInt(n).Float64()
	var ln float64
	if math.IsInf(f, 0) {
		ln = float64(n.BitLen()) * math.Ln2
	} else {
		ln = math.Log(f)
	}
	w := int64(math.Ceil(4 * ln))
	if w < 256 {
		w = 256
	}
	return w
}

func (rfn *refiner) refine(x *big.Float) (*refined, xerrors.XError) {
	orig := roundHalfUp(x)
	cand := new(big.Int).Set(orig)

	if cand.Cmp(intTwo) < 0 {
		cand.Set(intTwo)
	}
	// 2 and 3 precede the 6k±1 wheel
	if cand.Cmp(big.NewInt(3)) <= 0 {
		return &refined{prime: cand, tested: 1, offset: new(big.Int).Sub(cand, orig)}, nil
	}

	if cand.Bit(0) == 0 {
		cand.Add(cand, intOne)
	}
	cand = snapSixk(cand, +1)

	tested := 1
	if isProbablePrime(cand) {
		return &refined{prime: cand, tested: tested, offset: new(big.Int).Sub(cand, orig)}, nil
	}

	window := windowSize(cand)
	if rfn.windowOverride > 0 {
		window = int64(rfn.windowOverride)
	}

	for step := int64(2); step <= window; step += 2 {
		up := snapSixk(new(big.Int).Add(cand, big.NewInt(step)), +1)
		tested++
		if isProbablePrime(up) {
			return &refined{prime: up, tested: tested, offset: new(big.Int).Sub(up, orig)}, nil
		}

		down := snapSixk(new(big.Int).Sub(cand, big.NewInt(step)), -1)
		if down.Cmp(intTwo) >= 0 {
			tested++
			if isProbablePrime(down) {
				return &refined{prime: down, tested: tested, offset: new(big.Int).Sub(down, orig)}, nil
			}
		}
	}

	// bounded forward scan past the window
	scan := snapSixk(new(big.Int).Add(cand, big.NewInt(window)), +1)
	for i := 0; i < rfn.maxScanSteps; i++ {
		tested++
		if isProbablePrime(scan) {
			return &refined{prime: scan, tested: tested, offset: new(big.Int).Sub(scan, orig)}, nil
		}
		scan = snapSixk(scan.Add(scan, intTwo), +1)
	}

	return nil, xerrors.ErrRefinementExhausted.Wrapf(
		"window %d and %d scan steps around %s", window, rfn.maxScanSteps, orig)
}
