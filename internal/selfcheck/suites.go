package selfcheck

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"

	"bigint/internal/bignum"
	"bigint/internal/check"
)

// Suite is a named group of checks.
type Suite struct {
	Name string
	Run  func(*Env, *check.Result)
}

// Suites returns every suite in run order.
func Suites() []Suite {
	return []Suite{
		{Name: "roundtrip", Run: checkRoundTrip},
		{Name: "scalar", Run: checkScalar},
		{Name: "division", Run: checkDivision},
		{Name: "ordering", Run: checkOrdering},
		{Name: "multiply", Run: checkMultiply},
		{Name: "scenarios", Run: checkScenarios},
		{Name: "pow2", Run: checkPow2},
	}
}

func agrees(r *check.Result, got bignum.BigInt, want *apd.BigInt, what string) bool {
	o := Oracle(got)
	return r.Recordf(o.Cmp(want) == 0, "%s: got %s, want %s", what, o.String(), want.String())
}

// randomDecimal returns a decimal literal with an optional sign and leading
// zeros, plus its canonical form.
func randomDecimal(e *Env) (string, string) {
	rng := e.Rand()
	var b strings.Builder
	sign := [...]string{"", "+", "-"}[rng.IntN(3)]
	b.WriteString(sign)
	for range rng.IntN(4) {
		b.WriteByte('0')
	}
	digits := make([]byte, 1+rng.IntN(10*e.maxLimbs))
	for i := range digits {
		digits[i] = byte('0' + rng.IntN(10))
	}
	b.Write(digits)

	canon := strings.TrimLeft(string(digits), "0")
	switch {
	case canon == "":
		canon = "0"
	case sign == "-":
		canon = "-" + canon
	}
	return b.String(), canon
}

func checkRoundTrip(e *Env, r *check.Result) {
	check.Equal(r, bignum.MustParse("-0").String(), "0", "format(-0)")
	e.Loop(func(int) {
		in, canon := randomDecimal(e)
		x, err := bignum.Parse(in)
		if !check.NoError(r, err, "parse "+in) {
			return
		}
		check.Equal(r, x.String(), canon, "format(parse("+in+"))")
		digits := strings.TrimPrefix(canon, "-")
		check.Equal(r, x.DecimalDigits(), len(digits), "digit count of "+canon)
		if want, ok := new(apd.BigInt).SetString(in, 10); check.True(r, ok, "oracle parse "+in) {
			agrees(r, x, want, "parse "+in)
		}

		y := e.Signed()
		back, err := bignum.Parse(y.String())
		if check.NoError(r, err, "reparse "+y.String()) {
			check.True(r, back.Equal(y), "parse(format(x)) == x for "+y.String())
		}

		raw, err := msgpack.Marshal(y)
		if !check.NoError(r, err, "msgpack encode") {
			return
		}
		var decoded bignum.BigInt
		if check.NoError(r, msgpack.Unmarshal(raw, &decoded), "msgpack decode") {
			check.True(r, decoded.Equal(y) && decoded.Len() == y.Len(), "msgpack round trip of "+y.String())
		}
	})
	for _, bad := range []string{"", "-", "+", "1 2", "12a", "0x10", "--1", "1e3"} {
		_, err := bignum.Parse(bad)
		check.ErrorIs(r, err, bignum.ErrInvalidFormat, "parse "+strconv.Quote(bad))
	}
}

func checkScalar(e *Env, r *check.Result) {
	e.Loop(func(int) {
		x := e.Magnitude()
		v := e.Limb()
		base := Oracle(x)
		wantV := new(apd.BigInt).SetUint64(uint64(v))

		added := x.Clone()
		added.MulAddInPlace(1, v)
		agrees(r, added, new(apd.BigInt).Add(base, wantV), "MulAdd(1, v)")

		span := e.Op("muladd")
		scaled := x.Clone()
		scaled.MulAddInPlace(v, 0)
		span.End("")
		agrees(r, scaled, new(apd.BigInt).Mul(base, wantV), "MulAdd(v, 0)")

		same := x.Clone()
		same.MulAddInPlace(1, 0)
		check.True(r, slices.Equal(same.Limbs(), x.Limbs()), "MulAdd(1, 0) is a no-op")

		c := e.Limb()
		fused := x.Clone()
		fused.MulAddInPlace(v, c)
		want := new(apd.BigInt).Mul(base, wantV)
		want.Add(want, new(apd.BigInt).SetUint64(uint64(c)))
		agrees(r, fused, want, "MulAdd(v, c)")
		check.True(r, fused.Len() <= x.Len()+1, "MulAdd grows by at most one limb")
	})

	check.Equal(r, bignum.FromUint32(^uint32(0)).AddUint32(1).Len(), 2, "carry into a new limb")
	_, err := bignum.One().MulInt(-1 << 40)
	check.ErrorIs(r, err, bignum.ErrScalarRange, "MulInt out of limb range")
	neg, err := bignum.FromUint32(6).MulInt(-7)
	if check.NoError(r, err, "MulInt(-7)") {
		check.Equal(r, neg.String(), "-42", "6 * -7")
	}
}

func checkDivision(e *Env, r *check.Result) {
	e.Loop(func(i int) {
		x := e.Magnitude()
		d := e.Limb()
		if i%4 == 0 {
			d = bignum.Limb(1 + e.Rand().IntN(10))
		}
		if d == 0 {
			d = 1
		}
		span := e.Op("div")
		q, rem, err := x.DivUint32(d)
		span.End("")
		if !check.NoError(r, err, "DivUint32") {
			return
		}
		check.True(r, rem < d, "remainder below divisor")
		want := new(apd.BigInt).Mul(Oracle(q), new(apd.BigInt).SetUint64(uint64(d)))
		want.Add(want, new(apd.BigInt).SetUint64(uint64(rem)))
		check.True(r, want.Cmp(Oracle(x)) == 0, "q*d + r == x for "+x.String())
		limbs := q.Limbs()
		check.True(r, len(limbs) == 1 || limbs[len(limbs)-1] != 0, "quotient is normalized")
	})

	x := e.NonZero()
	before := x.Limbs()
	_, err := x.DivUint32InPlace(0)
	check.ErrorIs(r, err, bignum.ErrDivisionByZero, "divide by zero")
	check.True(r, slices.Equal(before, x.Limbs()), "divide by zero leaves the dividend untouched")
}

func checkOrdering(e *Env, r *check.Result) {
	zero := bignum.Zero()
	check.Equal(r, bignum.Cmp(zero, zero.Neg()), 0, "zero == -zero")
	check.Equal(r, bignum.Cmp(bignum.FromLimbs(false, []bignum.Limb{0, 1}), bignum.FromUint32(^uint32(0))), 1,
		"more limbs compare greater")
	check.Equal(r, bignum.Cmp(bignum.FromLimbs(false, []bignum.Limb{9, 2}), bignum.FromLimbs(false, []bignum.Limb{0, 3})), -1,
		"top limb decides")

	e.Loop(func(int) {
		a := e.NonZero()
		check.True(r, a.Neg().Less(zero) && zero.Less(a), "-a < 0 < a for "+a.String())

		x, y, z := e.Signed(), e.Signed(), e.Signed()
		xy := bignum.Cmp(x, y)
		check.Equal(r, xy, Oracle(x).Cmp(Oracle(y)), "Cmp("+x.String()+", "+y.String()+")")
		check.Equal(r, bignum.Cmp(y, x), -xy, "antisymmetry")
		if x.LessOrEqual(y) && y.LessOrEqual(z) {
			check.True(r, x.LessOrEqual(z), "transitivity")
		}
	})
}

func checkMultiply(e *Env, r *check.Result) {
	e.Loop(func(int) {
		a, b := e.Signed(), e.Signed()
		span := e.Op("mul").WithExtra("limbs", strconv.Itoa(a.Len()+b.Len()))
		p := bignum.Mul(a, b)
		span.End("")
		agrees(r, p, new(apd.BigInt).Mul(Oracle(a), Oracle(b)), a.String()+" * "+b.String())
		check.True(r, p.Equal(bignum.Mul(b, a)), "commutativity")
		if !p.IsZero() {
			check.Equal(r, p.IsNeg(), a.IsNeg() != b.IsNeg(), "sign is the XOR of operand signs")
		}
		check.True(r, bignum.Mul(a, bignum.One()).Equal(a), "x*1 == x")
		check.True(r, bignum.Mul(a, bignum.Zero()).IsZero(), "x*0 == 0")
	})
}

func checkScenarios(_ *Env, r *check.Result) {
	check.Equal(r, bignum.Pow2(32).String(), "4294967296", "2^32")
	check.Equal(r, bignum.Pow2(128).String(), "340282366920938463463374607431768211456", "2^128")

	x := bignum.MustParse("64424509677")
	check.True(r, slices.Equal(x.Limbs(), []bignum.Limb{237, 15}) && !x.IsNeg(), "limbs of 64424509677")

	a := bignum.MustParse("92837508234109812317501984209810928409182094187192")
	b := bignum.MustParse("19874891279817498172489713987498173849713897489171")
	check.Equal(r, bignum.Mul(a, b).String(),
		"1845135382842094292477330511000308347437097594612006265189858865520503519713569495483976002866897832",
		"50-digit product")

	before := x.Limbs()
	_, err := x.DivUint32InPlace(0)
	check.True(r, errors.Is(err, bignum.ErrDivisionByZero) && slices.Equal(before, x.Limbs()),
		"division by zero is rejected without mutation")
}

func checkPow2(e *Env, r *check.Result) {
	check.Equal(r, bignum.Pow2(32).DecimalDigits(), 10, "digits of 2^32")
	check.Equal(r, bignum.Pow2(128).DecimalDigits(), 39, "digits of 2^128")
	check.Equal(r, bignum.Pow2(0).String(), "1", "2^0")
	e.Loop(func(int) {
		n := uint(e.Rand().IntN(bignum.LimbBits*e.maxLimbs + 1))
		got := bignum.Pow2(n)
		agrees(r, got, new(apd.BigInt).Lsh(apd.NewBigInt(1), n), "2^"+strconv.FormatUint(uint64(n), 10))
		check.Equal(r, got.Len(), int(n)/bignum.LimbBits+1, "limb count of 2^"+strconv.FormatUint(uint64(n), 10))
	})
}
