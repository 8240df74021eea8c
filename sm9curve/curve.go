package sm9curve

import (
	"crypto/rand"
	"io"
	"math/big"
)

// curvePoint is an affine point on E(Fp): y^2 = x^3 + b. The zero value
// represents the point at infinity.
type curvePoint struct {
	x, y     *big.Int
	infinity bool
}

func newCurvePoint() *curvePoint {
	return &curvePoint{x: new(big.Int), y: new(big.Int), infinity: true}
}

func (c *curvePoint) Set(a *curvePoint) *curvePoint {
	c.x.Set(a.x)
	c.y.Set(a.y)
	c.infinity = a.infinity
	return c
}

func (c *curvePoint) String() string {
	if c.infinity {
		return "curvePoint(inf)"
	}
	return "curvePoint(" + c.x.String() + "," + c.y.String() + ")"
}

// IsOnCurve reports whether c satisfies y^2 = x^3 + b (mod P).
func (c *curvePoint) IsOnCurve() bool {
	if c.infinity {
		return true
	}
	if c.x.Sign() < 0 || c.x.Cmp(P) >= 0 || c.y.Sign() < 0 || c.y.Cmp(P) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(c.y, c.y)
	y2.Mod(y2, P)

	x3 := new(big.Int).Mul(c.x, c.x)
	x3.Mul(x3, c.x)
	x3.Add(x3, curveB)
	x3.Mod(x3, P)

	return y2.Cmp(x3) == 0
}

func (c *curvePoint) Double(a *curvePoint) *curvePoint {
	if a.infinity || a.y.Sign() == 0 {
		c.infinity = true
		return c
	}
	// lambda = 3x^2 / 2y
	num := new(big.Int).Mul(a.x, a.x)
	num.Mul(num, big.NewInt(3))
	den := new(big.Int).Lsh(a.y, 1)
	den.ModInverse(den, P)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, P)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, new(big.Int).Lsh(a.x, 1))
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(a.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, a.y)
	y3.Mod(y3, P)

	c.x = x3
	c.y = y3
	c.infinity = false
	return c
}

func (c *curvePoint) Add(a, b *curvePoint) *curvePoint {
	if a.infinity {
		return c.Set(b)
	}
	if b.infinity {
		return c.Set(a)
	}
	if a.x.Cmp(b.x) == 0 {
		if a.y.Cmp(b.y) != 0 || a.y.Sign() == 0 {
			c.infinity = true
			return c
		}
		return c.Double(a)
	}

	num := new(big.Int).Sub(b.y, a.y)
	den := new(big.Int).Sub(b.x, a.x)
	den.Mod(den, P)
	den.ModInverse(den, P)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, P)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, a.x)
	x3.Sub(x3, b.x)
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(a.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, a.y)
	y3.Mod(y3, P)

	c.x = x3
	c.y = y3
	c.infinity = false
	return c
}

func (c *curvePoint) Neg(a *curvePoint) *curvePoint {
	c.x.Set(a.x)
	if a.infinity || a.y.Sign() == 0 {
		c.y.SetInt64(0)
	} else {
		c.y.Sub(P, a.y)
	}
	c.infinity = a.infinity
	return c
}

// Mul sets c = k*a by double-and-add and returns c.
func (c *curvePoint) Mul(a *curvePoint, k *big.Int) *curvePoint {
	sum := newCurvePoint()
	t := newCurvePoint()
	for i := k.BitLen() - 1; i >= 0; i-- {
		t.Double(sum)
		if k.Bit(i) != 0 {
			t.Add(t, a)
		}
		sum.Set(t)
	}
	c.Set(sum)
	return c
}

// G1 is the 65-byte-uncompressed-encodable prime-order subgroup of E(Fp).
type G1 struct {
	p *curvePoint
}

func NewG1() *G1 {
	return &G1{p: newCurvePoint()}
}

func (g *G1) String() string {
	return "sm9curve.G1" + g.p.String()
}

func (g *G1) Set(a *G1) *G1 {
	if g.p == nil {
		g.p = newCurvePoint()
	}
	g.p.Set(a.p)
	return g
}

// ScalarBaseMult sets g = k*P1.
func (g *G1) ScalarBaseMult(k *Scalar) *G1 {
	if g.p == nil {
		g.p = newCurvePoint()
	}
	g.p.Mul(g1Generator(), k.Int())
	return g
}

// ScalarMult sets g = k*a.
func (g *G1) ScalarMult(a *G1, k *Scalar) *G1 {
	if g.p == nil {
		g.p = newCurvePoint()
	}
	g.p.Mul(a.p, k.Int())
	return g
}

// Add sets g = a+b.
func (g *G1) Add(a, b *G1) *G1 {
	if g.p == nil {
		g.p = newCurvePoint()
	}
	g.p.Add(a.p, b.p)
	return g
}

func (g *G1) IsOnCurve() bool {
	return g.p != nil && g.p.IsOnCurve() && !g.p.infinity
}

func (g *G1) IsInfinity() bool {
	return g.p == nil || g.p.infinity
}

const g1UncompressedLength = 1 + 32 + 32

// Marshal encodes g as the uncompressed octet string 0x04 || X || Y.
func (g *G1) Marshal() []byte {
	out := make([]byte, g1UncompressedLength)
	out[0] = 0x04
	xb := g.p.x.Bytes()
	yb := g.p.y.Bytes()
	copy(out[1+32-len(xb):1+32], xb)
	copy(out[1+64-len(yb):1+64], yb)
	return out
}

// Unmarshal parses the uncompressed octet string 0x04 || X || Y, checking
// that the result is a valid on-curve point.
func (g *G1) Unmarshal(in []byte) error {
	if len(in) != g1UncompressedLength {
		return errShortBuffer
	}
	if in[0] != 0x04 {
		return errBadPointForm
	}
	if g.p == nil {
		g.p = newCurvePoint()
	}
	x := new(big.Int).SetBytes(in[1:33])
	y := new(big.Int).SetBytes(in[33:65])
	if x.Cmp(P) >= 0 || y.Cmp(P) >= 0 {
		return errCoordTooBig
	}
	g.p.x = x
	g.p.y = y
	g.p.infinity = x.Sign() == 0 && y.Sign() == 0
	if !g.p.IsOnCurve() {
		return errNotOnCurve
	}
	return nil
}

// RandomG1 returns a random non-zero scalar k and k*P1.
func RandomG1(r io.Reader) (*Scalar, *G1, error) {
	if r == nil {
		r = rand.Reader
	}
	k, err := RandomScalar(r)
	if err != nil {
		return nil, nil, err
	}
	return k, NewG1().ScalarBaseMult(k), nil
}

func g1Generator() *curvePoint {
	return &curvePoint{x: new(big.Int).Set(p1x), y: new(big.Int).Set(p1y)}
}
