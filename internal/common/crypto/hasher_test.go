package crypto

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := &BcryptHasher{}

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "password123" {
		t.Fatal("digest must not equal the plaintext password")
	}

	if err := hasher.Compare(hash, "password123"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}
	if err := hasher.Compare(hash, "wrong-password"); err == nil {
		t.Error("expected mismatched password to fail")
	}
}
