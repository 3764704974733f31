package bignum_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"bigint/internal/bignum"
)

// oracle rebuilds x from its limbs with apd, independently of the decimal codec.
func oracle(x bignum.BigInt) *apd.BigInt {
	r := new(apd.BigInt)
	limbs := x.Limbs()
	for i := len(limbs) - 1; i >= 0; i-- {
		r.Lsh(r, bignum.LimbBits)
		r.Add(r, new(apd.BigInt).SetUint64(uint64(limbs[i])))
	}
	if x.IsNeg() {
		r.Neg(r)
	}
	return r
}

func properties(t *testing.T) *gopter.Properties {
	t.Helper()
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	params.MaxSize = 12
	return gopter.NewProperties(params)
}

func genLimbs() gopter.Gen {
	return gen.SliceOf(gen.UInt32())
}

func canonicalDecimal(neg bool, digits string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	if neg {
		return "-" + digits
	}
	return digits
}

func TestPropertyDecimalRoundTrip(t *testing.T) {
	props := properties(t)
	props.Property("format(parse(s)) == canonical(s)", prop.ForAll(
		func(neg bool, digits string) bool {
			if digits == "" {
				digits = "0"
			}
			s := digits
			if neg {
				s = "-" + digits
			}
			x, err := bignum.Parse(s)
			if err != nil {
				return false
			}
			want := canonicalDecimal(neg, digits)
			if x.String() != want {
				return false
			}
			o, ok := new(apd.BigInt).SetString(s, 10)
			return ok && o.Cmp(oracle(x)) == 0
		},
		gen.Bool(),
		gen.NumString(),
	))
	props.TestingRun(t)
}

func TestPropertyScalarMulAdd(t *testing.T) {
	props := properties(t)
	props.Property("MulAdd(1, v) is +v and MulAdd(v, 0) is *v", prop.ForAll(
		func(limbs []uint32, v uint32) bool {
			x := bignum.FromLimbs(false, limbs)

			added := x.Clone()
			added.MulAddInPlace(1, v)
			wantAdd := new(apd.BigInt).Add(oracle(x), new(apd.BigInt).SetUint64(uint64(v)))
			if oracle(added).Cmp(wantAdd) != 0 || !added.Equal(x.AddUint32(v)) {
				return false
			}

			scaled := x.Clone()
			scaled.MulAddInPlace(v, 0)
			wantMul := new(apd.BigInt).Mul(oracle(x), new(apd.BigInt).SetUint64(uint64(v)))
			if oracle(scaled).Cmp(wantMul) != 0 || !scaled.Equal(x.MulUint32(v)) {
				return false
			}
			return added.Len() <= x.Len()+1 && scaled.Len() <= x.Len()+1
		},
		genLimbs(),
		gen.UInt32(),
	))
	props.TestingRun(t)
}

func TestPropertyDivisionRemainder(t *testing.T) {
	props := properties(t)
	props.Property("q*d + r == x", prop.ForAll(
		func(limbs []uint32, d uint32) bool {
			x := bignum.FromLimbs(false, limbs)
			q, r, err := x.DivUint32(d)
			if err != nil || r >= d {
				return false
			}
			back := q.MulUint32(d)
			back.AddUint32InPlace(r)
			top := q.Limbs()[q.Len()-1]
			return back.Equal(x) && (q.IsZero() || top != 0)
		},
		genLimbs(),
		gen.UInt32Range(1, ^uint32(0)),
	))
	props.TestingRun(t)
}

func TestPropertyMultiply(t *testing.T) {
	props := properties(t)
	props.Property("product matches oracle with xor sign", prop.ForAll(
		func(al []uint32, an bool, bl []uint32, bn bool) bool {
			a := bignum.FromLimbs(an, al)
			b := bignum.FromLimbs(bn, bl)
			p := bignum.Mul(a, b)
			want := new(apd.BigInt).Mul(oracle(a), oracle(b))
			if oracle(p).Cmp(want) != 0 {
				return false
			}
			if !p.Equal(bignum.Mul(b, a)) {
				return false
			}
			return p.IsZero() || p.IsNeg() == (an != bn)
		},
		genLimbs(), gen.Bool(), genLimbs(), gen.Bool(),
	))
	props.Property("x*1 == x and x*0 == 0", prop.ForAll(
		func(limbs []uint32, neg bool) bool {
			x := bignum.FromLimbs(neg, limbs)
			return bignum.Mul(x, bignum.One()).Equal(x) && bignum.Mul(x, bignum.Zero()).IsZero()
		},
		genLimbs(), gen.Bool(),
	))
	props.TestingRun(t)
}

func TestPropertyOrdering(t *testing.T) {
	props := properties(t)
	props.Property("Cmp agrees with the numeric order", prop.ForAll(
		func(al []uint32, an bool, bl []uint32, bn bool) bool {
			a := bignum.FromLimbs(an, al)
			b := bignum.FromLimbs(bn, bl)
			return bignum.Cmp(a, b) == oracle(a).Cmp(oracle(b)) &&
				bignum.Cmp(a, b) == -bignum.Cmp(b, a)
		},
		genLimbs(), gen.Bool(), genLimbs(), gen.Bool(),
	))
	props.Property("-a < 0 < a for non-zero a", prop.ForAll(
		func(limbs []uint32) bool {
			a := bignum.FromLimbs(false, limbs)
			if a.IsZero() {
				return a.Equal(a.Neg())
			}
			zero := bignum.Zero()
			return a.Neg().Less(zero) && zero.Less(a) && a.Neg().Less(a)
		},
		genLimbs(),
	))
	props.TestingRun(t)
}
