package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureVerifier checks the callback signature Razorpay attaches after
// a payment completes. The signature is HMAC-SHA256 over
// "order_id|payment_id", hex encoded, keyed by the shared secret.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) SignatureVerifier {
	return SignatureVerifier{secret: []byte(secret)}
}

// Expected computes the signature this service expects for the pair.
func (v SignatureVerifier) Expected(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the supplied signature matches the expected one.
// The comparison is constant time.
func (v SignatureVerifier) Verify(orderID, paymentID, signature string) bool {
	expected := v.Expected(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
