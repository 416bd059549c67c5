package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("unit-secret", AudienceUser, time.Hour)

	raw, exp, err := iss.Issue("user-1", "marie@example.ht", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(exp) < 59*time.Minute {
		t.Fatalf("expiry too soon: %v", exp)
	}

	claims, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "marie@example.ht" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("subject: %q", claims.Subject)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	iss := NewIssuer("secret-a", AudienceUser, time.Hour)
	raw, _, err := iss.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewIssuer("secret-b", AudienceUser, time.Hour)
	if _, err := other.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestVerify_AudienceMismatch(t *testing.T) {
	// a user token must not pass admin verification even with a shared secret
	userIss := NewIssuer("shared", AudienceUser, time.Hour)
	adminIss := NewIssuer("shared", AudienceAdmin, time.Hour)

	raw, _, err := userIss.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := adminIss.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for swapped audience, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	iss := NewIssuer("unit-secret", AudienceAdmin, -time.Minute)
	raw, _, err := iss.Issue("adm-1", "admin@kredinou.ht", "superadmin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := iss.Verify(raw); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("want ErrExpiredToken, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	iss := NewIssuer("unit-secret", AudienceUser, time.Hour)
	for _, raw := range []string{"", "abc", "a.b.c"} {
		if _, err := iss.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("want ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestRoleCarriedThrough(t *testing.T) {
	iss := NewIssuer("unit-secret", AudienceAdmin, time.Hour)
	raw, _, err := iss.Issue("adm-1", "admin@kredinou.ht", "superadmin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Role != "superadmin" {
		t.Fatalf("role: %q", claims.Role)
	}
}
