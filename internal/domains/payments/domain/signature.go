package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// VerifySignature checks that a payment callback was signed by the
// gateway: signature must equal hex(HMAC-SHA256(secret, orderID + "|" +
// paymentID)). The comparison is constant time and a length mismatch
// yields false rather than an error, so malformed input can neither
// crash the caller nor leak timing.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
