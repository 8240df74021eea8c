package sm9

import (
	"crypto/rand"
	"testing"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	id := []byte("alice@example.com")
	pub, priv := testSignKeyPair(id)

	msg := []byte("transfer 100 units to bob")

	ctx := NewSignContext()
	ctx.Write(msg)
	sig, err := Sign(rand.Reader, priv, ctx)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	vctx := NewVerifyContext()
	vctx.Write(msg)
	ok, err := Verify(pub, id, vctx, sig)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Error("valid signature rejected")
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	id := []byte("alice@example.com")
	pub, priv := testSignKeyPair(id)

	ctx := NewSignContext()
	ctx.Write([]byte("original message"))
	sig, err := Sign(rand.Reader, priv, ctx)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	vctx := NewVerifyContext()
	vctx.Write([]byte("tampered message"))
	ok, err := Verify(pub, id, vctx, sig)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ok {
		t.Error("signature over a different message should not verify")
	}
}

func TestVerifyRejectsWrongIdentity(t *testing.T) {
	signerID := []byte("alice@example.com")
	pub, priv := testSignKeyPair(signerID)

	msg := []byte("authorize payment")
	ctx := NewSignContext()
	ctx.Write(msg)
	sig, err := Sign(rand.Reader, priv, ctx)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	vctx := NewVerifyContext()
	vctx.Write(msg)
	ok, err := Verify(pub, []byte("mallory@example.com"), vctx, sig)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ok {
		t.Error("signature should not verify under the wrong identity")
	}
}

func TestSignatureMarshalUnmarshalRoundTrip(t *testing.T) {
	id := []byte("alice@example.com")
	pub, priv := testSignKeyPair(id)

	msg := []byte("hello SM9")
	ctx := NewSignContext()
	ctx.Write(msg)
	sig, err := Sign(rand.Reader, priv, ctx)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	der, err := sig.MarshalASN1()
	if err != nil {
		t.Fatalf("MarshalASN1 failed: %v", err)
	}

	decoded, err := UnmarshalSignature(der)
	if err != nil {
		t.Fatalf("UnmarshalSignature failed: %v", err)
	}

	vctx := NewVerifyContext()
	vctx.Write(msg)
	ok, err := Verify(pub, id, vctx, decoded)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Error("round-tripped signature did not verify")
	}
}

func TestUnmarshalSignatureRejectsTrailingBytes(t *testing.T) {
	id := []byte("alice@example.com")
	_, priv := testSignKeyPair(id)

	ctx := NewSignContext()
	ctx.Write([]byte("msg"))
	sig, err := Sign(rand.Reader, priv, ctx)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	der, err := sig.MarshalASN1()
	if err != nil {
		t.Fatalf("MarshalASN1 failed: %v", err)
	}
	der = append(der, 0x00)
	if _, err := UnmarshalSignature(der); err == nil {
		t.Error("expected error decoding signature with trailing garbage")
	}
}

func TestUnmarshalSignatureRejectsWrongSLength(t *testing.T) {
	id := []byte("alice@example.com")
	_, priv := testSignKeyPair(id)

	ctx := NewSignContext()
	ctx.Write([]byte("msg"))
	sig, err := Sign(rand.Reader, priv, ctx)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	sBytes := sig.S.Marshal()

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1OctetString(sig.H.Bytes())
		b.AddASN1BitString(sBytes[:64]) // short S, 64 octets instead of 65
	})
	der, err := b.Bytes()
	if err != nil {
		t.Fatalf("building malformed DER failed: %v", err)
	}
	if _, err := UnmarshalSignature(der); err == nil {
		t.Error("expected an error decoding a signature with a short S")
	}
}
