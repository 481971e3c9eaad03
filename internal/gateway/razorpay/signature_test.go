package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestSignatureVerifier_Expected(t *testing.T) {
	t.Parallel()

	v := NewSignatureVerifier("s3cret")

	t.Run("matches independent hmac over order|payment", func(t *testing.T) {
		mac := hmac.New(sha256.New, []byte("s3cret"))
		mac.Write([]byte("order_1|pay_1"))
		want := hex.EncodeToString(mac.Sum(nil))

		if got := v.Expected("order_1", "pay_1"); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		if v.Expected("order_1", "pay_1") != v.Expected("order_1", "pay_1") {
			t.Fatalf("expected identical signatures for identical input")
		}
	})

	t.Run("changes when any input changes", func(t *testing.T) {
		base := v.Expected("order_1", "pay_1")
		if v.Expected("order_2", "pay_1") == base {
			t.Fatalf("expected different signature for different order id")
		}
		if v.Expected("order_1", "pay_2") == base {
			t.Fatalf("expected different signature for different payment id")
		}
		if NewSignatureVerifier("other").Expected("order_1", "pay_1") == base {
			t.Fatalf("expected different signature for different secret")
		}
	})
}

func TestSignatureVerifier_Verify(t *testing.T) {
	t.Parallel()

	v := NewSignatureVerifier("s3cret")

	if !v.Verify("order_1", "pay_1", v.Expected("order_1", "pay_1")) {
		t.Fatalf("expected valid signature to verify")
	}
	if v.Verify("order_1", "pay_1", "deadbeef") {
		t.Fatalf("expected bogus signature to fail")
	}
	if v.Verify("order_1", "pay_1", "") {
		t.Fatalf("expected empty signature to fail")
	}
}
