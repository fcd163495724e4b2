package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"bytequiz_backend/internals/configs"
	model "bytequiz_backend/internals/features/users/auth/model"
)

func testUser() *model.UserModel {
	return &model.UserModel{
		ID:        42,
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@x.com",
		Role:      "Student",
	}
}

func TestCreateToken_Claims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	token, err := CreateToken(testUser())
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("CreateToken returned an empty token")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken rejected a freshly issued token: %v", err)
	}

	if claims["email"] != "alice@x.com" {
		t.Errorf("email claim = %v, want alice@x.com", claims["email"])
	}
	if claims["role"] != "Student" {
		t.Errorf("role claim = %v, want Student", claims["role"])
	}
	if id, ok := claims["user_id"].(float64); !ok || uint(id) != 42 {
		t.Errorf("user_id claim = %v, want 42", claims["user_id"])
	}

	// exp harus ~24 jam dari sekarang
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim has unexpected type %T", claims["exp"])
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("token TTL = %s, want ~24h", ttl)
	}
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "test-secret"
	token, err := CreateToken(testUser())
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	configs.JWTSecret = "other-secret"
	if _, err := ParseToken(token); err == nil {
		t.Error("ParseToken accepted a token signed with a different secret")
	}
}

func TestParseToken_RejectsExpired(t *testing.T) {
	configs.JWTSecret = "test-secret"

	claims := jwt.MapClaims{
		"email":   "alice@x.com",
		"role":    "Student",
		"user_id": 42,
		"iat":     time.Now().Add(-48 * time.Hour).Unix(),
		"exp":     time.Now().Add(-24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token failed: %v", err)
	}

	if _, err := ParseToken(expired); err == nil {
		t.Error("ParseToken accepted an expired token")
	}
}
