package utilities

import (
	"testing"

	"pathfinder-backend-V1.0/internal/model"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	user := &model.User{ID: 42, Email: "student@example.com"}

	access, refresh, err := GenerateTokens(user)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	claims, err := ValidateToken(access, false)
	if err != nil {
		t.Fatalf("access token validation failed: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "student@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	if _, err := ValidateToken(refresh, true); err != nil {
		t.Errorf("refresh token validation failed: %v", err)
	}

	// Tokens are signed with different secrets.
	if _, err := ValidateToken(access, true); err == nil {
		t.Error("access token must not validate as a refresh token")
	}
}

func TestRefreshTokensRoundTrip(t *testing.T) {
	user := &model.User{ID: 7, Email: "other@example.com"}
	_, refresh, err := GenerateTokens(user)
	if err != nil {
		t.Fatal(err)
	}

	newAccess, newRefresh, err := RefreshTokens(refresh)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	claims, err := ValidateToken(newAccess, false)
	if err != nil {
		t.Fatalf("new access token invalid: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("claims lost across refresh: %+v", claims)
	}
	if _, err := ValidateToken(newRefresh, true); err != nil {
		t.Errorf("new refresh token invalid: %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", false); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
