package token

import (
	"testing"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret"

	signed, err := GenerateJWT(7, "treasurer", secret, 5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateJWT(signed, secret)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 || claims.Role != "treasurer" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	signed, err := GenerateJWT(7, "admin", "secret-a", 5)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ValidateJWT(signed, "secret-b"); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestValidateJWT_Empty(t *testing.T) {
	if _, err := ValidateJWT("", "secret"); err == nil {
		t.Fatal("expected error for empty token")
	}
}
