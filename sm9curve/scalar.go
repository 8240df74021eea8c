package sm9curve

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Scalar is an element of Z/NZ, where N is the order of G1, G2 and GT.
// It wraps math/big the way the teacher's sm2 helpers do, but is kept
// self-contained here since it is part of the new curve substrate.
type Scalar struct {
	v *big.Int
}

func NewScalar() *Scalar {
	return &Scalar{v: new(big.Int)}
}

// NewScalarFromInt builds a Scalar from n, reducing it mod Order.
func NewScalarFromInt(n *big.Int) *Scalar {
	s := &Scalar{v: new(big.Int).Mod(n, Order)}
	return s
}

// Int returns the underlying value, in [0, Order).
func (s *Scalar) Int() *big.Int {
	return s.v
}

func (s *Scalar) Set(a *Scalar) *Scalar {
	s.v = new(big.Int).Set(a.v)
	return s
}

func (s *Scalar) SetBytes(b []byte) *Scalar {
	s.v = new(big.Int).Mod(new(big.Int).SetBytes(b), Order)
	return s
}

// Bytes returns the big-endian, 32-byte fixed-length encoding of s.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, 32)
	b := s.v.Bytes()
	copy(out[32-len(b):], b)
	return out
}

func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

func (s *Scalar) Equal(a *Scalar) bool {
	return s.v.Cmp(a.v) == 0
}

func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v = new(big.Int).Add(a.v, b.v)
	s.v.Mod(s.v, Order)
	return s
}

func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.v = new(big.Int).Sub(a.v, b.v)
	s.v.Mod(s.v, Order)
	return s
}

func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.v = new(big.Int).Mul(a.v, b.v)
	s.v.Mod(s.v, Order)
	return s
}

// Inverse sets s = a^-1 mod Order; a must be non-zero.
func (s *Scalar) Inverse(a *Scalar) *Scalar {
	s.v = new(big.Int).ModInverse(a.v, Order)
	return s
}

// RandomScalar draws a uniformly random scalar in [1, Order-1] from r: it
// draws a value in [0, Order-2] with crypto/rand.Int (which rejects
// out-of-range draws by rejection sampling) and adds 1.
func RandomScalar(r io.Reader) (*Scalar, error) {
	if r == nil {
		r = rand.Reader
	}
	one := big.NewInt(1)
	max := new(big.Int).Sub(Order, one)
	for {
		k, err := rand.Int(r, max)
		if err != nil {
			return nil, err
		}
		k.Add(k, one)
		if k.Sign() != 0 {
			return &Scalar{v: k}, nil
		}
	}
}

// FromHash reduces a wide hash digest (as produced by H1/H2, GM/T 0044
// Annex B.4) into a scalar in [1, Order-1], following the
// expand-and-reduce construction: h = (digest mod (Order-1)) + 1.
func FromHash(digest []byte) *Scalar {
	h := new(big.Int).SetBytes(digest)
	order1 := new(big.Int).Sub(Order, big.NewInt(1))
	h.Mod(h, order1)
	h.Add(h, big.NewInt(1))
	return &Scalar{v: h}
}
