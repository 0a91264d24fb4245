package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func accessClaims(userID int64, username string, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":        userID,
		"username":   username,
		"token_type": "access",
		"iat":        time.Now().Unix(),
		"exp":        exp.Unix(),
	}
}

// ミドルウェアを通した結果のstatusとcontextを返す
func runAuthJWT(t *testing.T, authz string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	mw := middleware.AuthJWT(config.Config{JWTSecret: testSecret})
	require.NoError(t, mw(next)(c))
	return rec, c, called
}

func TestAuthJWT_ValidAccessToken(t *testing.T) {
	tok := signTestToken(t, testSecret, accessClaims(7, "omar", time.Now().Add(time.Hour)))

	rec, c, called := runAuthJWT(t, "Bearer "+tok)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), c.Get(middleware.CtxUserIDKey))
	assert.Equal(t, "omar", c.Get(middleware.CtxUsernameKey))
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _, called := runAuthJWT(t, "")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	tok := signTestToken(t, testSecret, accessClaims(7, "omar", time.Now().Add(time.Hour)))

	rec, _, called := runAuthJWT(t, "Token "+tok)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_BadSignature(t *testing.T) {
	tok := signTestToken(t, "otro_secret", accessClaims(7, "omar", time.Now().Add(time.Hour)))

	rec, _, called := runAuthJWT(t, "Bearer "+tok)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	tok := signTestToken(t, testSecret, accessClaims(7, "omar", time.Now().Add(-time.Hour)))

	rec, _, called := runAuthJWT(t, "Bearer "+tok)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// refresh tokenで保護ルートは叩けない
func TestAuthJWT_RejectsRefreshToken(t *testing.T) {
	claims := accessClaims(7, "omar", time.Now().Add(time.Hour))
	claims["token_type"] = "refresh"
	tok := signTestToken(t, testSecret, claims)

	rec, _, called := runAuthJWT(t, "Bearer "+tok)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_GarbageToken(t *testing.T) {
	rec, _, called := runAuthJWT(t, "Bearer not-a-jwt")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
