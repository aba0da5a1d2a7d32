package services

import (
	"errors"
	"strings"
	"testing"

	accountdomain "github.com/daouest/factureme/services/account/domain"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := CheckPassword(hash, "correct horse"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := CheckPassword(hash, "wrong horse"); !errors.Is(err, accountdomain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestHashPassword_RejectsWeak(t *testing.T) {
	for _, plain := range []string{"", "short", strings.Repeat("a", 73)} {
		if _, err := HashPassword(plain); !errors.Is(err, accountdomain.ErrWeakPassword) {
			t.Errorf("HashPassword(%q): expected ErrWeakPassword, got %v", plain, err)
		}
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "whatever1")
	if err == nil || errors.Is(err, accountdomain.ErrInvalidCredentials) {
		t.Fatalf("expected a wrapped bcrypt error, got %v", err)
	}
}
