package sm9curve

import (
	"crypto/rand"
	"testing"
)

func TestG2ScalarBaseMultOnCurve(t *testing.T) {
	k, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	g := NewG2().ScalarBaseMult(k)
	if !g.IsOnCurve() {
		t.Error("k*P2 is not on curve")
	}
}

func TestG2MarshalUnmarshalRoundTrip(t *testing.T) {
	k, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	g := NewG2().ScalarBaseMult(k)
	enc := g.Marshal()
	if len(enc) != g2UncompressedLength {
		t.Fatalf("encoded length = %d, want %d", len(enc), g2UncompressedLength)
	}

	back := NewG2()
	if err := back.Unmarshal(enc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for i := range enc {
		if back.Marshal()[i] != enc[i] {
			t.Fatal("round-tripped point does not match original encoding")
		}
	}
}

func TestG2UnmarshalRejectsBadLength(t *testing.T) {
	if err := NewG2().Unmarshal(make([]byte, 10)); err == nil {
		t.Error("expected error on short buffer")
	}
}

func TestG2GeneratorIsOnCurve(t *testing.T) {
	if !P2().IsOnCurve() {
		t.Error("fixed generator P2 fails its own curve equation")
	}
}

func TestG2AddMatchesDoubleScalarMult(t *testing.T) {
	k := mustScalar(t, 11)
	p := NewG2().ScalarBaseMult(k)

	sum := NewG2().Add(p, p)
	two := mustScalar(t, 2)
	twiceK := NewScalar().Mul(k, two)
	viaScalar := NewG2().ScalarBaseMult(twiceK)

	if sum.String() != viaScalar.String() {
		t.Error("P+P != 2*P")
	}
}
