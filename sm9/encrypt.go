package sm9

import (
	"crypto/subtle"
	"io"

	"github.com/paul-lee-attorney/sm9/sm3"
	"github.com/paul-lee-attorney/sm9/sm9curve"
)

// MaxPlaintextSize is the implementation ceiling enforced on plaintext
// (and therefore on a decoded C2) length. GM/T 0044 does not mandate a
// specific bound; GmSSL's reference implementation hard-codes a similar
// fixed ceiling (SM9_MAX_PLAINTEXT_SIZE) rather than leaving KDF output
// length unbounded, and this module follows that choice.
const MaxPlaintextSize = 1 << 20

func doEncrypt(rnd io.Reader, pub *EncryptMasterPublicKey, id, plaintext []byte) (*Ciphertext, error) {
	if len(plaintext) == 0 || len(plaintext) > MaxPlaintextSize {
		return nil, errPlaintextTooBig
	}
	klen := len(plaintext) + sm3.Size
	k, c1, err := Encapsulate(rnd, pub, id, klen)
	if err != nil {
		return nil, err
	}
	defer sm9curve.Zeroize(k)

	key, macKey := k[:len(plaintext)], k[len(plaintext):]

	c2 := make([]byte, len(plaintext))
	for i := range plaintext {
		c2[i] = plaintext[i] ^ key[i]
	}

	mac := sm3.NewHMAC(macKey)
	mac.Write(c2)
	var c3 [32]byte
	copy(c3[:], mac.Sum(nil))

	return &Ciphertext{EnType: EnTypeXOR, C1: c1, C3: c3, C2: c2}, nil
}

func doDecrypt(priv *EncryptPrivateKey, id []byte, ct *Ciphertext) ([]byte, error) {
	if ct.EnType != EnTypeXOR {
		return nil, errInvalidEnType
	}
	if len(ct.C2) == 0 || len(ct.C2) > MaxPlaintextSize {
		return nil, errPlaintextTooBig
	}
	klen := len(ct.C2) + sm3.Size
	k, err := Decapsulate(priv, id, ct.C1, klen)
	if err != nil {
		return nil, ErrDecryption
	}
	defer sm9curve.Zeroize(k)

	key, macKey := k[:len(ct.C2)], k[len(ct.C2):]

	mac := sm3.NewHMAC(macKey)
	mac.Write(ct.C2)
	tag := mac.Sum(nil)

	if subtle.ConstantTimeCompare(tag, ct.C3[:]) != 1 {
		return nil, ErrDecryption
	}

	out := make([]byte, len(ct.C2))
	for i := range ct.C2 {
		out[i] = ct.C2[i] ^ key[i]
	}
	return out, nil
}

// Encrypt runs the public-key encryption of GM/T 0044 4.4.1 (KEM, XOR
// stream, HMAC-SM3 tag) and DER-encodes the resulting envelope.
func Encrypt(rnd io.Reader, pub *EncryptMasterPublicKey, id, plaintext []byte) ([]byte, error) {
	ct, err := doEncrypt(rnd, pub, id, plaintext)
	if err != nil {
		return nil, err
	}
	return ct.MarshalASN1()
}

// Decrypt parses a DER-encoded envelope and runs the public-key
// decryption of GM/T 0044 4.4.2. A MAC mismatch and a KEM derivation
// failure are both reported as the opaque ErrDecryption so a caller
// cannot distinguish which check failed.
func Decrypt(priv *EncryptPrivateKey, id, ciphertext []byte) ([]byte, error) {
	ct, err := UnmarshalCiphertext(ciphertext)
	if err != nil {
		return nil, err
	}
	return doDecrypt(priv, id, ct)
}
