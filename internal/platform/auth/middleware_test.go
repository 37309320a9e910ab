package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func testClaims() Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "stridecare",
			Audience:  jwt.ClaimStrings{"recovery-portal"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		PatientID: "patient-1",
		Roles:     []string{"patient"},
	}
}

func runJWT(t *testing.T, cfg JWTConfig, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware(cfg)(func(c echo.Context) error {
		ctx := c.Request().Context()
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id":    UserIDFromContext(ctx),
			"patient_id": PatientIDFromContext(ctx),
			"roles":      RolesFromContext(ctx),
		})
	})
	return rec, handler(c)
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	cfg := JWTConfig{Issuer: "stridecare", Audience: "recovery-portal", SigningKey: testKey}
	rec, err := runJWT(t, cfg, "Bearer "+signToken(t, testClaims()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	cfg := JWTConfig{SigningKey: testKey}
	_, err := runJWT(t, cfg, "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_MalformedHeader(t *testing.T) {
	cfg := JWTConfig{SigningKey: testKey}
	_, err := runJWT(t, cfg, "Token abc")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_WrongKey(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, testClaims())
	signed, err := token.SignedString([]byte("other-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	cfg := JWTConfig{SigningKey: testKey}
	_, err = runJWT(t, cfg, "Bearer "+signed)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_Expired(t *testing.T) {
	claims := testClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	cfg := JWTConfig{SigningKey: testKey}
	_, err := runJWT(t, cfg, "Bearer "+signToken(t, claims))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_WrongIssuer(t *testing.T) {
	claims := testClaims()
	claims.Issuer = "someone-else"
	cfg := JWTConfig{Issuer: "stridecare", SigningKey: testKey}
	_, err := runJWT(t, cfg, "Bearer "+signToken(t, claims))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_ContextValues(t *testing.T) {
	cfg := JWTConfig{SigningKey: testKey}
	rec, err := runJWT(t, cfg, "Bearer "+signToken(t, testClaims()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	body := rec.Body.String()
	for _, want := range []string{"user-1", "patient-1", "patient"} {
		if !strings.Contains(body, want) {
			t.Errorf("response %q missing %q", body, want)
		}
	}
}

func TestDevAuthMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := DevAuthMiddleware()(func(c echo.Context) error {
		roles := RolesFromContext(c.Request().Context())
		if len(roles) != 1 || roles[0] != "admin" {
			t.Errorf("expected admin role, got %v", roles)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
