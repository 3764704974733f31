package bignum

import (
	"fortio.org/safecast"
	"github.com/cockroachdb/errors"
)

// MulAddInPlace sets x = x*base + carry on the magnitude and returns x.
// The sign flag is left untouched. The magnitude grows by at most one limb.
// The result is written to fresh storage, so copies of x are unaffected.
func (x *BigInt) MulAddInPlace(base, carry Limb) *BigInt {
	m := x.magnitude()
	x.mag = trimLimbs(mulAddLimbs(make([]Limb, len(m), len(m)+1), m, base, carry))
	return x
}

// mulAddLimbs writes src*base + carry into dst and returns it, appending a
// final carry limb if there is one. dst must have len(src) and may alias src.
func mulAddLimbs(dst, src []Limb, base, carry Limb) []Limb {
	for i, limb := range src {
		carry, dst[i] = Split(Combine(0, limb)*DoubleLimb(base) + DoubleLimb(carry))
	}
	if carry != 0 {
		dst = append(dst, carry)
	}
	return dst
}

// AddUint32InPlace adds v to the magnitude.
func (x *BigInt) AddUint32InPlace(v Limb) *BigInt {
	return x.MulAddInPlace(1, v)
}

// MulUint32InPlace multiplies the magnitude by v.
func (x *BigInt) MulUint32InPlace(v Limb) *BigInt {
	return x.MulAddInPlace(v, 0)
}

// AddUint32 returns a fresh BigInt holding x's magnitude plus v.
func (x BigInt) AddUint32(v Limb) BigInt {
	c := x.Clone()
	c.AddUint32InPlace(v)
	return c
}

// MulUint32 returns a fresh BigInt holding x's magnitude times v.
func (x BigInt) MulUint32(v Limb) BigInt {
	c := x.Clone()
	c.MulUint32InPlace(v)
	return c
}

// PushDigit appends one decimal digit: x = x*10 + d.
// A digit above 9 is a programming error; x is left unchanged.
func (x *BigInt) PushDigit(d Limb) error {
	if d > 9 {
		return errors.Mark(errors.AssertionFailedf("digit %d outside [0, 9]", d), ErrInvalidDigit)
	}
	x.MulAddInPlace(10, d)
	return nil
}

// MulIntInPlace multiplies x by a signed machine integer. A negative v flips
// the sign flag.
func (x *BigInt) MulIntInPlace(v int) error {
	m, neg, err := scalarMagnitude(v)
	if err != nil {
		return err
	}
	if neg {
		x.neg = !x.neg
	}
	x.MulUint32InPlace(m)
	return nil
}

// MulInt is the value-returning form of MulIntInPlace.
func (x BigInt) MulInt(v int) (BigInt, error) {
	c := x.Clone()
	if err := c.MulIntInPlace(v); err != nil {
		return BigInt{}, err
	}
	return c, nil
}

// scalarMagnitude splits v into a limb magnitude and a sign.
func scalarMagnitude(v int) (Limb, bool, error) {
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-(int64(v) + 1)) + 1
	} else {
		u = uint64(v)
	}
	m, err := safecast.Conv[Limb](u)
	if err != nil {
		return 0, false, errors.Mark(errors.Wrapf(err, "scalar %d", v), ErrScalarRange)
	}
	return m, neg, nil
}
