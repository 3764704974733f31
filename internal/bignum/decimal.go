package bignum

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Parse reads a decimal integer of the form [+-]?[0-9]+. Leading zeros are
// accepted; whitespace, separators and exponents are not.
func Parse(s string) (BigInt, error) {
	neg := false
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	if i == len(s) {
		return BigInt{}, errors.Wrapf(ErrInvalidFormat, "%q: no digits", s)
	}
	mag := []Limb{0}
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return BigInt{}, errors.Wrapf(ErrInvalidFormat, "%q: unexpected byte %q at offset %d", s, c, i)
		}
		// mag is owned here, so digits fold in place.
		mag = mulAddLimbs(mag, mag, 10, Limb(c-'0'))
	}
	return BigInt{neg: neg, mag: trimLimbs(mag)}, nil
}

// String renders x in decimal. Each call returns a freshly allocated string.
func (x BigInt) String() string {
	return string(x.AppendDecimal(nil))
}

// AppendDecimal appends the decimal form of x to dst and returns the extended
// buffer. Zero renders as "0" whatever its sign flag.
func (x BigInt) AppendDecimal(dst []byte) []byte {
	if x.IsZero() {
		return append(dst, '0')
	}
	if x.neg {
		dst = append(dst, '-')
	}
	start := len(dst)
	// Division is destructive, so work on a copy.
	tmp := x.Limbs()
	for !isZeroLimbs(tmp) {
		var d Limb
		tmp, d = divLimbs(tmp, tmp, 10)
		dst = append(dst, byte('0'+d))
	}
	slices.Reverse(dst[start:])
	return dst
}

// DecimalDigits returns the number of digits in the decimal form of |x|.
func (x BigInt) DecimalDigits() int {
	if x.IsZero() {
		return 1
	}
	n := 0
	tmp := x.Limbs()
	for !isZeroLimbs(tmp) {
		tmp, _ = divLimbs(tmp, tmp, 10)
		n++
	}
	return n
}

func isZeroLimbs(m []Limb) bool {
	return len(m) == 1 && m[0] == 0
}

// MarshalText implements encoding.TextMarshaler using the decimal form.
func (x BigInt) MarshalText() ([]byte, error) {
	return x.AppendDecimal(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *BigInt) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
