package utils

import (
	"testing"
)

func TestPasswordHashing(t *testing.T) {
	pwd := "super-secret"
	hash, err := HashPassword(pwd)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == pwd {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash(pwd, hash) {
		t.Fatal("check failed for correct password")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("expected failure for wrong password")
	}
}
