package service

import (
	"testing"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if err := CheckPasswordHash(hash, "secret1"); err != nil {
		t.Errorf("CheckPasswordHash rejected the correct password: %v", err)
	}
	if err := CheckPasswordHash(hash, "secret2"); err == nil {
		t.Error("CheckPasswordHash accepted a wrong password")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (salt)")
	}
}
