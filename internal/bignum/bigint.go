// Package bignum implements arbitrary-precision signed integers stored as
// base-2^32 little-endian limbs with a separate sign flag.
//
// Scalar operations come in two flavours: the *InPlace methods mutate the
// receiver and return it, while the plain methods leave the receiver alone and
// return a fresh value. Bignum multiplication always allocates its result.
//
// Mutators never write into existing limb storage: every *InPlace method
// installs a freshly built magnitude. A copy made by plain assignment
// therefore keeps its value when either side is later mutated.
package bignum

import (
	"github.com/cockroachdb/errors"
)

// BigInt is a signed arbitrary-precision integer.
//
// The magnitude is never empty once a BigInt has been mutated: canonical zero
// is a single zero limb. The zero value reads as zero.
type BigInt struct {
	neg bool
	// mag is base-2^32 little-endian (mag[0] is least significant).
	mag []Limb
}

// zeroMag is the read-only view of an unmaterialised zero magnitude.
var zeroMag = []Limb{0}

// Zero returns the canonical zero.
func Zero() BigInt { return BigInt{mag: []Limb{0}} }

// One returns the value 1.
func One() BigInt { return BigInt{mag: []Limb{1}} }

// FromUint32 creates a BigInt from a single limb.
func FromUint32(v uint32) BigInt { return BigInt{mag: []Limb{v}} }

// FromUint64 creates a BigInt from a uint64.
func FromUint64(v uint64) BigInt {
	hi, lo := Split(v)
	if hi == 0 {
		return BigInt{mag: []Limb{lo}}
	}
	return BigInt{mag: []Limb{lo, hi}}
}

// FromInt64 creates a BigInt from an int64.
func FromInt64(v int64) BigInt {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	// -(v+1) stays in range for math.MinInt64.
	u := uint64(-(v + 1)) + 1
	x := FromUint64(u)
	x.neg = true
	return x
}

// FromLimbs builds a value from little-endian limbs. The slice is copied and
// normalized; an empty slice yields zero.
func FromLimbs(neg bool, limbs []Limb) BigInt {
	return BigInt{neg: neg, mag: trimLimbs(append([]Limb(nil), limbs...))}
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) BigInt {
	x, err := Parse(s)
	if err != nil {
		panic(errors.Wrap(err, "bignum.MustParse"))
	}
	return x
}

// magnitude returns the limbs, substituting canonical zero for an empty slice.
// The result must not be modified.
func (x BigInt) magnitude() []Limb {
	if len(x.mag) == 0 {
		return zeroMag
	}
	return x.mag
}

func trimLimbs(limbs []Limb) []Limb {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []Limb{0}
	}
	return limbs[:n]
}

// IsZero reports whether the magnitude is zero, whatever the sign flag says.
func (x BigInt) IsZero() bool {
	return isZeroLimbs(x.magnitude())
}

// IsNeg reports whether x is strictly negative.
func (x BigInt) IsNeg() bool {
	return x.neg && !x.IsZero()
}

// Sign returns -1, 0 or +1.
func (x BigInt) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Len returns the number of limbs in the magnitude.
func (x BigInt) Len() int {
	return len(x.magnitude())
}

// Limbs returns a copy of the magnitude, least significant limb first.
func (x BigInt) Limbs() []Limb {
	m := x.magnitude()
	out := make([]Limb, len(m))
	copy(out, m)
	return out
}

// Clone returns a deep copy of x.
func (x BigInt) Clone() BigInt {
	return BigInt{neg: x.neg, mag: x.Limbs()}
}

// Neg returns a copy of x with the sign flag flipped.
func (x BigInt) Neg() BigInt {
	c := x.Clone()
	c.neg = !c.neg
	return c
}

// Uint64 converts the magnitude to uint64 if it fits. The sign is ignored.
func (x BigInt) Uint64() (uint64, bool) {
	m := x.magnitude()
	switch len(m) {
	case 1:
		return uint64(m[0]), true
	case 2:
		return Combine(m[1], m[0]), true
	default:
		return 0, false
	}
}
