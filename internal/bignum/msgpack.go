package bignum

import (
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = BigInt{}
	_ msgpack.CustomDecoder = (*BigInt)(nil)
)

// EncodeMsgpack writes x as the two-element array [neg, limbs].
func (x BigInt) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.neg); err != nil {
		return err
	}
	return enc.Encode(x.magnitude())
}

// DecodeMsgpack reads the form written by EncodeMsgpack. The decoded
// magnitude is normalized, so trailing zero limbs are accepted.
func (x *BigInt) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return errors.Newf("bignum: msgpack array of length %d, want 2", n)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	var limbs []Limb
	if err := dec.Decode(&limbs); err != nil {
		return errors.Wrap(err, "bignum: decoding limbs")
	}
	*x = BigInt{neg: neg, mag: trimLimbs(limbs)}
	return nil
}
