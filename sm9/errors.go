package sm9

import "errors"

var (
	// ErrDecryption is returned by Decrypt and KEM decapsulation for any
	// authentication or derivation failure. It never distinguishes a MAC
	// mismatch from a derived-key-is-zero failure, so a caller cannot
	// learn which check failed.
	ErrDecryption = errors.New("sm9: decryption error")

	errInvalidASN1      = errors.New("sm9: invalid ASN.1 encoding")
	errInvalidEnType    = errors.New("sm9: unsupported ciphertext encryption type")
	errPlaintextTooBig  = errors.New("sm9: plaintext is empty or exceeds MaxPlaintextSize")
	errScalarOutOfRange = errors.New("sm9: scalar out of range [1, N-1]")
	errNotOnCurve       = errors.New("sm9: point is not on the curve")
)
