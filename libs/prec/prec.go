// Package prec derives the arbitrary precision required for a given input
// magnitude and scopes it to a single prediction call. Every arithmetic
// helper takes its precision from a Context value so that concurrent calls
// never share rounding state.
package prec

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/z5dlabs/z5d-go/types/xerrors"
)

const (
	// FloorBits is the minimum working precision. 320 bits (~96 decimal
	// digits) is comfortable for indices up to 1e14.
	FloorBits = 320

	// CapBits is the maximum supported working precision.
	CapBits = 2048

	// floorBand is the largest decimal digit count of n covered by FloorBits.
	floorBand = 14

	// stepBits is added per decimal digit of n beyond floorBand.
	stepBits = 64
)

// Euler-Mascheroni constant to 700 decimal digits, more than CapBits can
// represent.
const gammaDigits = "0.5772156649015328606065120900824024310421593359399235988057672348848677267776646709369470632917467495146314472498070824809605040144865428362241739976449235362535003337429373377376739427925952582470949160087352039481656708532331517766115286211995015079847937450857057400299213547861466940296043254215190587755352673313992540129674205137541395491116851028079842348775872050384310939973613725530608893312676001724795378367592713515772261027349291394079843010341777177808815495706610750101619166334015227893586796549725203621287922655595366962817638879272680132431010476505963703947394957638906572967929601009015125195950922243501409349871228247949747195646976318506676129063811051824197444867836380861749"

type Context struct {
	bits   uint
	digits int
}

// New returns a context with an explicit precision in bits, raised to
// FloorBits when below the floor and capped at CapBits.
func New(bits uint) Context {
	if bits < FloorBits {
		bits = FloorBits
	}
	if bits > CapBits {
		bits = CapBits
	}
	return Context{bits: bits, digits: decimalDigits(bits)}
}

// ForMagnitude maps the decimal digit count of n to a precision band. The
// band table is monotone: a larger n never yields a smaller precision. When
// the derived precision exceeds CapBits the context is clamped if allowClamp
// is set, otherwise ErrPrecision is returned.
func ForMagnitude(n *big.Int, allowClamp bool) (Context, xerrors.XError) {
	if n == nil || n.Sign() <= 0 {
		return Context{}, xerrors.ErrInvalidIndex.Wrapf("magnitude requires positive n")
	}

	d := len(n.String())
	bits := uint(FloorBits)
	if d > floorBand {
		bits += stepBits * uint(d-floorBand)
	}
	if bits > CapBits {
		if !allowClamp {
			return Context{}, xerrors.ErrPrecision.Wrapf("%d digit magnitude needs %d bits, cap is %d", d, bits, CapBits)
		}
		bits = CapBits
	}
	return Context{bits: bits, digits: decimalDigits(bits)}, nil
}

func decimalDigits(bits uint) int {
	// log10(2) = 0.30102999...
	return int(float64(bits) * 0.30102999566398)
}

func (c Context) Bits() uint {
	return c.bits
}

func (c Context) Digits() int {
	return c.digits
}

func (c Context) NewFloat() *big.Float {
	return new(big.Float).SetPrec(c.bits)
}

func (c Context) FromInt(n *big.Int) *big.Float {
	return c.NewFloat().SetInt(n)
}

func (c Context) FromInt64(v int64) *big.Float {
	return c.NewFloat().SetInt64(v)
}

func (c Context) Parse(s string) (*big.Float, xerrors.XError) {
	f, _, err := big.ParseFloat(s, 10, c.bits, big.ToNearestEven)
	if err != nil {
		return nil, xerrors.ErrInvalidConfig.Wrapf("unparsable number %q: %v", s, err)
	}
	return f, nil
}

func (c Context) at(x *big.Float) *big.Float {
	if x.Prec() == c.bits {
		return x
	}
	return new(big.Float).SetPrec(c.bits).Set(x)
}

// Log returns the natural logarithm of x at context precision. x must be > 0.
func (c Context) Log(x *big.Float) *big.Float {
	return bigfloat.Log(c.at(x))
}

// Exp returns e**x at context precision.
func (c Context) Exp(x *big.Float) *big.Float {
	return bigfloat.Exp(c.at(x))
}

// Pow returns x**y at context precision. x must be > 0.
func (c Context) Pow(x, y *big.Float) *big.Float {
	return bigfloat.Pow(c.at(x), c.at(y))
}

// Sqrt returns the square root of x at context precision.
func (c Context) Sqrt(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(c.bits).Sqrt(x)
}

// Gamma returns the Euler-Mascheroni constant at context precision.
func (c Context) Gamma() *big.Float {
	f, _, err := big.ParseFloat(gammaDigits, 10, c.bits, big.ToNearestEven)
	if err != nil {
		panic(fmt.Errorf("corrupt gamma constant: %v", err))
	}
	return f
}

// Tolerance returns the series truncation bound 10^-(digits-5).
func (c Context) Tolerance() *big.Float {
	f, _, err := big.ParseFloat(fmt.Sprintf("1e-%d", c.digits-5), 10, c.bits, big.ToNearestEven)
	if err != nil {
		panic(fmt.Errorf("bad tolerance exponent: %v", err))
	}
	return f
}
