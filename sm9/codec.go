package sm9

import (
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/paul-lee-attorney/sm9/sm9curve"
)

// Signature is the (h, S) pair produced by Sign and consumed by Verify.
type Signature struct {
	H *sm9curve.Scalar
	S *sm9curve.G1
}

// MarshalASN1 encodes sig as SEQUENCE { h OCTET STRING(32), S BIT STRING
// (520 bits, 0 unused, content = uncompressed 0x04||X||Y) }.
func (sig *Signature) MarshalASN1() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1OctetString(sig.H.Bytes())
		b.AddASN1BitString(sig.S.Marshal())
	})
	return b.Bytes()
}

// UnmarshalSignature strictly decodes the signature envelope: it rejects
// an h of any length other than 32 bytes, an S of any length other than
// 65 bytes, trailing bytes after the SEQUENCE, and a point that does not
// decode to an on-curve value.
func UnmarshalSignature(der []byte) (*Signature, error) {
	var (
		hBytes []byte
		sBytes []byte
		inner  cryptobyte.String
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Bytes(&hBytes, asn1.OCTET_STRING) ||
		!inner.ReadASN1BitStringAsBytes(&sBytes) ||
		!inner.Empty() {
		return nil, errInvalidASN1
	}
	if len(hBytes) != 32 || len(sBytes) != g1UncompressedLen {
		return nil, errInvalidASN1
	}
	hInt := bytesToBig(hBytes)
	if hInt.Sign() == 0 || hInt.Cmp(sm9curve.Order) >= 0 {
		return nil, errScalarOutOfRange
	}
	s := sm9curve.NewG1()
	if err := s.Unmarshal(sBytes); err != nil {
		return nil, err
	}
	return &Signature{H: sm9curve.NewScalarFromInt(hInt), S: s}, nil
}

const g1UncompressedLen = 65

// EnType identifies the stream construction used to build C2 in a
// Ciphertext. GmSSL's header sketches ECB/CBC/OFB/CFB tags without
// implementing them; this package keeps the tag space named for wire
// compatibility but only EnTypeXOR has an implementation.
type EnType int

const (
	EnTypeXOR EnType = 0
	enTypeECB EnType = 1
	enTypeCBC EnType = 2
	enTypeOFB EnType = 4
	enTypeCFB EnType = 8
)

// Ciphertext is the KEM/PKE envelope (en_type, C1, C3, C2).
type Ciphertext struct {
	EnType EnType
	C1     *sm9curve.G1
	C3     [32]byte
	C2     []byte
}

// MarshalASN1 encodes c as SEQUENCE { en_type INTEGER, C1 BIT STRING(520
// bits), C3 OCTET STRING(32), C2 OCTET STRING(L) }.
func (c *Ciphertext) MarshalASN1() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(int64(c.EnType))
		b.AddASN1BitString(c.C1.Marshal())
		b.AddASN1OctetString(c.C3[:])
		b.AddASN1OctetString(c.C2)
	})
	return b.Bytes()
}

// UnmarshalCiphertext strictly decodes the ciphertext envelope, rejecting
// any en_type other than EnTypeXOR, a C1 of any length other than 65
// bytes, a C3 of any length other than 32 bytes, and trailing bytes
// after the SEQUENCE.
func UnmarshalCiphertext(der []byte) (*Ciphertext, error) {
	var (
		enType  int
		c1Bytes []byte
		c3Bytes []byte
		c2Bytes []byte
		inner   cryptobyte.String
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&enType) ||
		!inner.ReadASN1BitStringAsBytes(&c1Bytes) ||
		!inner.ReadASN1Bytes(&c3Bytes, asn1.OCTET_STRING) ||
		!inner.ReadASN1Bytes(&c2Bytes, asn1.OCTET_STRING) ||
		!inner.Empty() {
		return nil, errInvalidASN1
	}
	if EnType(enType) != EnTypeXOR {
		return nil, errInvalidEnType
	}
	if len(c1Bytes) != g1UncompressedLen {
		return nil, errInvalidASN1
	}
	if len(c3Bytes) != 32 {
		return nil, errInvalidASN1
	}
	c1 := sm9curve.NewG1()
	if err := c1.Unmarshal(c1Bytes); err != nil {
		return nil, err
	}
	ct := &Ciphertext{EnType: EnTypeXOR, C1: c1, C2: c2Bytes}
	copy(ct.C3[:], c3Bytes)
	return ct, nil
}
