package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func signedToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "0c9f6a3e-9f5e-4a34-93dd-1f54cf9a1b10",
		"role":    "staff",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func newGuardedApp(opts AuthJWTOpts) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", AuthJWT(opts), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func request(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/guarded", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAuthJWTValidToken(t *testing.T) {
	app := newGuardedApp(AuthJWTOpts{Secret: testSecret})
	if got := request(t, app, signedToken(t)); got != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", got)
	}
}

func TestAuthJWTMissingToken(t *testing.T) {
	app := newGuardedApp(AuthJWTOpts{Secret: testSecret})
	if got := request(t, app, ""); got != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", got)
	}
}

func TestAuthJWTRevokedToken(t *testing.T) {
	app := newGuardedApp(AuthJWTOpts{
		Secret: testSecret,
		BlacklistChecker: func(string) (bool, error) {
			return true, nil
		},
	})
	if got := request(t, app, signedToken(t)); got != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", got)
	}
}

func TestAuthJWTBlacklistLookupFailureRejects(t *testing.T) {
	// A token that cannot be checked against the blacklist must not get in.
	app := newGuardedApp(AuthJWTOpts{
		Secret: testSecret,
		BlacklistChecker: func(string) (bool, error) {
			return false, errors.New("db down")
		},
	})
	if got := request(t, app, signedToken(t)); got != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", got)
	}
}
