// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testTokenSecret = "test-token-secret-32-bytes-long!"

func TestTokenSignAndParse(t *testing.T) {
	ti := NewTokenIssuer(testTokenSecret)

	signed, err := ti.Sign(7, "PUSAT")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := ti.Parse(signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Role != "PUSAT" {
		t.Errorf("Role = %q, want %q", claims.Role, "PUSAT")
	}
}

func TestTokenParse_WrongSecret(t *testing.T) {
	signed, err := NewTokenIssuer(testTokenSecret).Sign(1, "SYUBIYAH")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := NewTokenIssuer("another-token-secret-32-bytes!!!").Parse(signed); err == nil {
		t.Error("Parse with wrong secret should fail")
	}
}

func TestTokenParse_Expired(t *testing.T) {
	ti := NewTokenIssuer(testTokenSecret)
	ti.ttl = -time.Minute

	signed, err := ti.Sign(1, "PUSAT")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := ti.Parse(signed); err == nil {
		t.Error("Parse of expired token should fail")
	}
}

func TestTokenParse_WrongAlgorithm(t *testing.T) {
	// Token signed with "none" must be rejected
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: "PUSAT"})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := NewTokenIssuer(testTokenSecret).Parse(signed); err == nil {
		t.Error("Parse of unsigned token should fail")
	}
}

func TestTokenParse_Garbage(t *testing.T) {
	if _, err := NewTokenIssuer(testTokenSecret).Parse("not.a.token"); err == nil {
		t.Error("Parse of garbage should fail")
	}
}
