package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"bytequiz_backend/internals/configs"
	"bytequiz_backend/internals/constants"
)

const testSecret = "test-secret"

func signToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"email":   "alice@x.com",
		"role":    role,
		"user_id": 42,
		"exp":     exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing test token failed: %v", err)
	}
	return token
}

func newTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/p", AuthMiddleware())
	protected.Get("/any", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("user_id"),
			"role":    c.Locals("userRole"),
		})
	})
	protected.Get("/teacher",
		OnlyRoles("", constants.TeacherOnly...),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	protected.Get("/student",
		OnlyRoles("", constants.StudentOnly...),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	return resp
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp()

	resp := doRequest(t, app, "/p/any", "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp()

	token := signToken(t, constants.RoleStudent, time.Now().Add(time.Hour))
	resp := doRequest(t, app, "/p/any", token)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp()

	token := signToken(t, constants.RoleStudent, time.Now().Add(-time.Hour))
	resp := doRequest(t, app, "/p/any", token)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	configs.JWTSecret = "another-secret"
	app := newTestApp()

	token := signToken(t, constants.RoleStudent, time.Now().Add(time.Hour))
	resp := doRequest(t, app, "/p/any", token)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRoleMiddleware_Gating(t *testing.T) {
	configs.JWTSecret = testSecret
	app := newTestApp()

	studentToken := signToken(t, constants.RoleStudent, time.Now().Add(time.Hour))
	teacherToken := signToken(t, constants.RoleTeacher, time.Now().Add(time.Hour))

	cases := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{"student hits student route", "/p/student", studentToken, fiber.StatusOK},
		{"student hits teacher route", "/p/teacher", studentToken, fiber.StatusForbidden},
		{"teacher hits teacher route", "/p/teacher", teacherToken, fiber.StatusOK},
		{"teacher hits student route", "/p/student", teacherToken, fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, tc.path, tc.token)
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}
