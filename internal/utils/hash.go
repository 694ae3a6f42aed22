package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader carries the HMAC-SHA256 of an outbound webhook body.
const SignatureHeader = "X-Signature-SHA256"

// HashString computes an HMAC-SHA256 signature over the given bytes
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString(body, "my-secret-key")
func HashString(data []byte, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// VerifyHashString reports whether signature is the hex HMAC-SHA256 of data
// under hashKey. The comparison is constant-time.
func VerifyHashString(data []byte, hashKey, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hmac.Equal(hasher.Sum(nil), expected)
}
