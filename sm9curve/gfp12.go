package sm9curve

import "math/big"

// gfP12 is an element of Fp12 = Fp6[w]/(w^2-v), stored as x*w + y.
type gfP12 struct {
	x, y *gfP6
}

func newGFp12() *gfP12 {
	return &gfP12{newGFp6(), newGFp6()}
}

func (e *gfP12) String() string {
	return "(" + e.x.String() + "," + e.y.String() + ")"
}

func (e *gfP12) Set(a *gfP12) *gfP12 {
	e.x.Set(a.x)
	e.y.Set(a.y)
	return e
}

func (e *gfP12) SetZero() *gfP12 {
	e.x.SetZero()
	e.y.SetZero()
	return e
}

func (e *gfP12) SetOne() *gfP12 {
	e.x.SetZero()
	e.y.SetOne()
	return e
}

func (e *gfP12) IsZero() bool {
	return e.x.IsZero() && e.y.IsZero()
}

func (e *gfP12) IsOne() bool {
	return e.x.IsZero() && e.y.IsOne()
}

func (e *gfP12) Equal(a *gfP12) bool {
	return e.x.Equal(a.x) && e.y.Equal(a.y)
}

func (e *gfP12) Conjugate(a *gfP12) *gfP12 {
	e.x.Neg(a.x)
	e.y.Set(a.y)
	return e
}

func (e *gfP12) Neg(a *gfP12) *gfP12 {
	e.x.Neg(a.x)
	e.y.Neg(a.y)
	return e
}

func (e *gfP12) Add(a, b *gfP12) *gfP12 {
	e.x.Add(a.x, b.x)
	e.y.Add(a.y, b.y)
	return e
}

func (e *gfP12) Sub(a, b *gfP12) *gfP12 {
	e.x.Sub(a.x, b.x)
	e.y.Sub(a.y, b.y)
	return e
}

// Mul implements (ax*w+ay)(bx*w+by) = ax*bx*v + (ax*by+ay*bx)*w + ay*by,
// using the w^2=v relation via gfP6.MulV.
func (e *gfP12) Mul(a, b *gfP12) *gfP12 {
	v0 := newGFp6().Mul(a.y, b.y)
	v1 := newGFp6().Mul(a.x, b.x)

	t0 := newGFp6().Add(a.x, a.y)
	t1 := newGFp6().Add(b.x, b.y)
	tx := newGFp6().Mul(t0, t1)
	tx.Sub(tx, v0)
	tx.Sub(tx, v1)

	ty := newGFp6().MulV(v1)
	ty.Add(ty, v0)

	e.x.Set(tx)
	e.y.Set(ty)
	return e
}

func (e *gfP12) Square(a *gfP12) *gfP12 {
	return e.Mul(a, a)
}

// Exp sets e = a^k by square-and-multiply; used for scalar exponentiation
// in GT, for Invert, and for the pairing's final exponentiation.
func (e *gfP12) Exp(a *gfP12, k *big.Int) *gfP12 {
	if k.Sign() < 0 {
		inv := newGFp12().Invert(a)
		return e.Exp(inv, new(big.Int).Neg(k))
	}
	sum := newGFp12().SetOne()
	t := newGFp12()
	for i := k.BitLen() - 1; i >= 0; i-- {
		t.Square(sum)
		if k.Bit(i) != 0 {
			sum.Mul(t, a)
		} else {
			sum.Set(t)
		}
	}
	e.Set(sum)
	return e
}

var fp12Order = new(big.Int).Sub(new(big.Int).Exp(P, big.NewInt(12), nil), bigOne)

// Invert computes a^-1 by Fermat's little theorem (a^(|Fp12*|-1) = a^-1),
// which only needs Mul/Square and is correct for any non-zero field
// element regardless of tower representation.
func (e *gfP12) Invert(a *gfP12) *gfP12 {
	exp := new(big.Int).Sub(fp12Order, bigOne)
	return e.Exp(a, exp)
}

func (e *gfP12) Minimal() {
	e.x.x.Minimal()
	e.x.y.Minimal()
	e.x.z.Minimal()
	e.y.x.Minimal()
	e.y.y.Minimal()
	e.y.z.Minimal()
}

const gfP12EncodedLength = 32 * 12

// Marshal produces the 384-byte fixed-length big-endian encoding of e,
// laid out x.x, x.y, x.z, y.x, y.y, y.z (each a 64-byte Fp2 pair, itself
// two 32-byte Fp coordinates).
func (e *gfP12) Marshal() []byte {
	e.Minimal()
	out := make([]byte, gfP12EncodedLength)
	parts := []*big.Int{e.x.x.x, e.x.x.y, e.x.y.x, e.x.y.y, e.x.z.x, e.x.z.y,
		e.y.x.x, e.y.x.y, e.y.y.x, e.y.y.y, e.y.z.x, e.y.z.y}
	for i, v := range parts {
		b := v.Bytes()
		copy(out[i*32+32-len(b):(i+1)*32], b)
	}
	return out
}

func (e *gfP12) Unmarshal(in []byte) error {
	if len(in) != gfP12EncodedLength {
		return errShortBuffer
	}
	parts := []**big.Int{&e.x.x.x, &e.x.x.y, &e.x.y.x, &e.x.y.y, &e.x.z.x, &e.x.z.y,
		&e.y.x.x, &e.y.x.y, &e.y.y.x, &e.y.y.y, &e.y.z.x, &e.y.z.y}
	for i, p := range parts {
		*p = new(big.Int).SetBytes(in[i*32 : (i+1)*32])
	}
	return nil
}
