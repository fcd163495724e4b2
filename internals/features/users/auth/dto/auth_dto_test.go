package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName:       "Alice",
		LastName:        "Smith",
		Email:           "alice@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            "Student",
	}
}

func TestRegisterRequest_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr bool
	}{
		{"valid", func(r *RegisterRequest) {}, false},
		{"valid teacher", func(r *RegisterRequest) { r.Role = "Teacher" }, false},
		{"password mismatch", func(r *RegisterRequest) { r.ConfirmPassword = "secret2" }, true},
		{"short password", func(r *RegisterRequest) { r.Password = "abc"; r.ConfirmPassword = "abc" }, true},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, true},
		{"unknown role", func(r *RegisterRequest) { r.Role = "Admin" }, true},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)
			err := validate.Struct(req)
			if tc.wantErr && err == nil {
				t.Errorf("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoginRequest_Validation(t *testing.T) {
	if err := validate.Struct(LoginRequest{Email: "alice@x.com", Password: "secret1"}); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}
	if err := validate.Struct(LoginRequest{Email: "alice@x.com", Password: "abc"}); err == nil {
		t.Error("short password accepted")
	}
	if err := validate.Struct(LoginRequest{Email: "", Password: "secret1"}); err == nil {
		t.Error("missing email accepted")
	}
}
