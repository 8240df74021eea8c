package sm9

import (
	"bytes"
	"crypto/rand"
	"testing"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

func TestCiphertextMarshalUnmarshalRoundTrip(t *testing.T) {
	id := []byte("bob@example.com")
	pub, _ := testEncryptKeyPair(id)

	ct, err := doEncrypt(rand.Reader, pub, id, []byte("round trip me"))
	if err != nil {
		t.Fatalf("doEncrypt failed: %v", err)
	}

	der, err := ct.MarshalASN1()
	if err != nil {
		t.Fatalf("MarshalASN1 failed: %v", err)
	}

	decoded, err := UnmarshalCiphertext(der)
	if err != nil {
		t.Fatalf("UnmarshalCiphertext failed: %v", err)
	}
	if decoded.EnType != ct.EnType {
		t.Errorf("EnType = %v, want %v", decoded.EnType, ct.EnType)
	}
	if decoded.C3 != ct.C3 {
		t.Error("C3 mismatch after round trip")
	}
	if !bytes.Equal(decoded.C2, ct.C2) {
		t.Error("C2 mismatch after round trip")
	}
}

func TestUnmarshalCiphertextRejectsUnsupportedEnType(t *testing.T) {
	id := []byte("bob@example.com")
	pub, _ := testEncryptKeyPair(id)

	ct, err := doEncrypt(rand.Reader, pub, id, []byte("payload"))
	if err != nil {
		t.Fatalf("doEncrypt failed: %v", err)
	}
	ct.EnType = enTypeCBC
	der, err := ct.MarshalASN1()
	if err != nil {
		t.Fatalf("MarshalASN1 failed: %v", err)
	}
	if _, err := UnmarshalCiphertext(der); err == nil {
		t.Error("expected an error decoding an unsupported en_type")
	}
}

func TestUnmarshalCiphertextRejectsTrailingBytes(t *testing.T) {
	id := []byte("bob@example.com")
	pub, _ := testEncryptKeyPair(id)

	ct, err := doEncrypt(rand.Reader, pub, id, []byte("payload"))
	if err != nil {
		t.Fatalf("doEncrypt failed: %v", err)
	}
	der, err := ct.MarshalASN1()
	if err != nil {
		t.Fatalf("MarshalASN1 failed: %v", err)
	}
	der = append(der, 0xFF)
	if _, err := UnmarshalCiphertext(der); err == nil {
		t.Error("expected an error decoding ciphertext with trailing garbage")
	}
}

func TestUnmarshalCiphertextRejectsWrongC3Length(t *testing.T) {
	id := []byte("bob@example.com")
	pub, _ := testEncryptKeyPair(id)

	ct, err := doEncrypt(rand.Reader, pub, id, []byte("payload"))
	if err != nil {
		t.Fatalf("doEncrypt failed: %v", err)
	}

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(int64(ct.EnType))
		b.AddASN1BitString(ct.C1.Marshal())
		b.AddASN1OctetString(ct.C3[:16]) // short C3
		b.AddASN1OctetString(ct.C2)
	})
	der, err := b.Bytes()
	if err != nil {
		t.Fatalf("building malformed DER failed: %v", err)
	}
	if _, err := UnmarshalCiphertext(der); err == nil {
		t.Error("expected an error decoding a ciphertext with a short C3")
	}
}
