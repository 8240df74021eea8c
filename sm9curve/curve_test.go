package sm9curve

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestG1ScalarBaseMultOnCurve(t *testing.T) {
	k, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	g := NewG1().ScalarBaseMult(k)
	if !g.IsOnCurve() {
		t.Error("k*P1 is not on curve")
	}
}

func TestG1MarshalUnmarshalRoundTrip(t *testing.T) {
	k, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	g := NewG1().ScalarBaseMult(k)
	enc := g.Marshal()
	if len(enc) != g1UncompressedLength {
		t.Fatalf("encoded length = %d, want %d", len(enc), g1UncompressedLength)
	}

	back := NewG1()
	if err := back.Unmarshal(enc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Marshal()[0] != enc[0] {
		t.Error("round-tripped point has wrong form byte")
	}
	for i := range enc {
		if back.Marshal()[i] != enc[i] {
			t.Fatal("round-tripped point does not match original encoding")
		}
	}
}

func TestG1UnmarshalRejectsBadLength(t *testing.T) {
	if err := NewG1().Unmarshal(make([]byte, 10)); err == nil {
		t.Error("expected error on short buffer")
	}
}

func TestG1UnmarshalRejectsBadForm(t *testing.T) {
	enc := NewG1().ScalarBaseMult(mustScalar(t, 2)).Marshal()
	enc[0] = 0x02
	if err := NewG1().Unmarshal(enc); err == nil {
		t.Error("expected error on bad point form byte")
	}
}

func TestG1UnmarshalRejectsOffCurvePoint(t *testing.T) {
	enc := NewG1().ScalarBaseMult(mustScalar(t, 2)).Marshal()
	enc[len(enc)-1] ^= 0x01
	if err := NewG1().Unmarshal(enc); err == nil {
		t.Error("expected error on tampered, off-curve coordinate")
	}
}

func TestG1AddMatchesDoubleScalarMult(t *testing.T) {
	k := mustScalar(t, 7)
	p := NewG1().ScalarBaseMult(k)

	sum := NewG1().Add(p, p)
	two := mustScalar(t, 2)
	twiceK := NewScalar().Mul(k, two)
	viaScalar := NewG1().ScalarBaseMult(twiceK)

	if sum.String() != viaScalar.String() {
		t.Error("P+P != 2*P")
	}
}

func mustScalar(t *testing.T, v int64) *Scalar {
	t.Helper()
	return NewScalarFromInt(big.NewInt(v))
}
