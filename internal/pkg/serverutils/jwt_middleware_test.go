package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func adminClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"email": "admin@peche.com",
		"role":  "admin",
		"exp":   exp.Unix(),
	}
}

func TestAdminJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-secret")

	app := fiber.New()
	app.Get("/guarded", AdminJwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals("admin_email").(string))
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic abc123",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			authHeader: "Bearer " + signToken(t, "other-secret", adminClaims(time.Now().Add(time.Hour)), jwt.SigningMethodHS256),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + signToken(t, "middleware-secret", adminClaims(time.Now().Add(-time.Hour)), jwt.SigningMethodHS256),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name: "wrong role",
			authHeader: "Bearer " + signToken(t, "middleware-secret", jwt.MapClaims{
				"email": "user@peche.com",
				"role":  "user",
				"exp":   time.Now().Add(time.Hour).Unix(),
			}, jwt.SigningMethodHS256),
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "valid admin token",
			authHeader: "Bearer " + signToken(t, "middleware-secret", adminClaims(time.Now().Add(time.Hour)), jwt.SigningMethodHS256),
			wantStatus: fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/guarded", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
