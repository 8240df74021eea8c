package sm3

import (
	"crypto/hmac"
	"hash"
)

// NewHMAC returns an HMAC-SM3 hash.Hash keyed with key, built on the
// standard library's generic crypto/hmac construction the same way
// GmSSL's sm3_hmac_* family and other SM3 bindings key HMAC with SM3
// rather than hand-rolling the inner/outer pad logic.
func NewHMAC(key []byte) hash.Hash {
	return hmac.New(New, key)
}
