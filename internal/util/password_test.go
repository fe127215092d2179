package util

import (
	"strings"
	"testing"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Abcd1234", true},
		{"valid long", "Xy9" + strings.Repeat("a", 70), true},
		{"too short", "Ab1", false},
		{"too long", "Ab1" + strings.Repeat("a", 73), false},
		{"no upper", "abcd1234", false},
		{"no lower", "ABCD1234", false},
		{"no digit", "Abcdefgh", false},
		{"has space", "Abcd 1234", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPassword(tt.password); got != tt.want {
				t.Errorf("ValidPassword(%q) = %t, want %t", tt.password, got, tt.want)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Abcd1234")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "Abcd1234" {
		t.Fatal("hash equals plain password")
	}
	if err := CheckPassword(hashed, "Abcd1234"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := CheckPassword(hashed, "Wrong1234"); err == nil {
		t.Error("CheckPassword with wrong password succeeded")
	}
}
