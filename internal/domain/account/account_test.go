package account

import "testing"

func TestValidateUsername(t *testing.T) {
	ok := []string{"ash01", "misty_k", "brock-1", "prof.oak"}
	for _, v := range ok {
		if err := ValidateUsername(v); err != nil {
			t.Fatalf("expected valid username %q: %v", v, err)
		}
	}
	bad := []string{"", "1ash", "a", "ab", "a_", "a..", "a*", "toolongusername_over_32_chars_abc"}
	for _, v := range bad {
		if err := ValidateUsername(v); err == nil {
			t.Fatalf("expected invalid username %q", v)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("pikachu-rules"); err != nil {
		t.Fatalf("expected valid password: %v", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pikachu-rules")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "pikachu-rules") {
		t.Fatal("expected matching password to verify")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Fatal("expected mismatching password to fail")
	}
	if VerifyPassword("", "pikachu-rules") || VerifyPassword(hash, "") {
		t.Fatal("empty hash or password must never verify")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ash@Example.COM "); got != "ash@example.com" {
		t.Fatalf("unexpected normalized email %q", got)
	}
}
