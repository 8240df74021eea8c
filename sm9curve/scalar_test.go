package sm9curve

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestScalarAddSubRoundTrip(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	sum := NewScalar().Add(a, b)
	back := NewScalar().Sub(sum, b)
	if !back.Equal(a) {
		t.Error("(a+b)-b != a")
	}
}

func TestScalarMulInverse(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	inv := NewScalar().Inverse(a)
	prod := NewScalar().Mul(a, inv)
	one := NewScalarFromInt(big.NewInt(1))
	if !prod.Equal(one) {
		t.Error("a * a^-1 != 1")
	}
}

func TestRandomScalarInRange(t *testing.T) {
	for i := 0; i < 32; i++ {
		s, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		if s.IsZero() {
			t.Error("RandomScalar produced zero")
		}
		if s.Int().Cmp(Order) >= 0 {
			t.Error("RandomScalar produced a value >= Order")
		}
	}
}

func TestFromHashInRange(t *testing.T) {
	digest := make([]byte, 64)
	for i := range digest {
		digest[i] = 0xff
	}
	s := FromHash(digest)
	if s.IsZero() {
		t.Error("FromHash produced zero")
	}
	if s.Int().Cmp(Order) >= 0 {
		t.Error("FromHash produced a value >= Order")
	}

	zero := make([]byte, 64)
	s = FromHash(zero)
	if !s.Equal(NewScalarFromInt(big.NewInt(1))) {
		t.Error("FromHash(0) should map to 1")
	}
}

func TestScalarBytesRoundTrip(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	b := NewScalar().SetBytes(a.Bytes())
	if !b.Equal(a) {
		t.Error("Bytes/SetBytes round trip mismatch")
	}
	if len(a.Bytes()) != 32 {
		t.Errorf("Bytes length = %d, want 32", len(a.Bytes()))
	}
}
