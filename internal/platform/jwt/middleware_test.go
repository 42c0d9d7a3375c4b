package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const testSecret = "test-secret-key"

// newContext はヘッダー・Cookieを設定したテスト用gin.Contextを生成します。
func newContext(authHeader, cookie string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/media", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	if cookie != "" {
		c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	return c, w
}

// TestRequireUser_MissingToken はトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestRequireUser_MissingToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(tt.authHeader, "")

			RequireUser(NewVerifier(testSecret))(c)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected request to be aborted")
			}
		})
	}
}

// TestRequireUser_InvalidToken は不正なトークン（改ざん・期限切れ等）で401が返されることを検証します。
func TestRequireUser_InvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"wrong secret", createTokenWithSecret("wrong-secret", 1, time.Hour)},
		{"expired token", createTokenWithSecret(testSecret, 1, -time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext("Bearer "+tt.token, "")

			RequireUser(NewVerifier(testSecret))(c)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"invalid token"}`, w.Body.String())
		})
	}
}

// TestRequireUser_ValidToken は有効なトークンでリクエストが通過し、コンテキストにユーザーIDが設定されることを検証します。
func TestRequireUser_ValidToken(t *testing.T) {
	tests := []struct {
		name   string
		header bool
		userID uint
	}{
		{"bearer header", true, 1},
		{"cookie", false, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := createTokenWithSecret(testSecret, tt.userID, time.Hour)

			var c *gin.Context
			var w *httptest.ResponseRecorder
			if tt.header {
				c, w = newContext("Bearer "+token, "")
			} else {
				c, w = newContext("", token)
			}

			RequireUser(NewVerifier(testSecret))(c)

			if c.IsAborted() {
				t.Fatalf("expected request not to be aborted, response: %s", w.Body.String())
			}
			userID, ok := UserID(c)
			assert.True(t, ok)
			assert.Equal(t, tt.userID, userID)
		})
	}
}

// TestRequireUser_InvalidSigningMethod はnoneアルゴリズム（未署名）のトークンが拒否されることを検証します。
func TestRequireUser_InvalidSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	tokenStr, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	c, w := newContext("Bearer "+tokenStr, "")
	RequireUser(NewVerifier(testSecret))(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestRequireUser_MissingSecret はシークレット未設定時に、トークンがあっても500で拒否されることを検証します。
func TestRequireUser_MissingSecret(t *testing.T) {
	forged := createTokenWithSecret("", 1, time.Hour)

	for name, mw := range map[string]gin.HandlerFunc{
		"require":  RequireUser(NewVerifier("")),
		"optional": OptionalUser(NewVerifier("")),
	} {
		t.Run(name, func(t *testing.T) {
			c, w := newContext("Bearer "+forged, "")
			mw(c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"server misconfigured"}`, w.Body.String())
			_, ok := UserID(c)
			assert.False(t, ok)
		})
	}
}

// TestOptionalUser は匿名・有効・不正トークンそれぞれの挙動を検証します。
func TestOptionalUser(t *testing.T) {
	t.Run("anonymous passes without user", func(t *testing.T) {
		c, _ := newContext("", "")
		OptionalUser(NewVerifier(testSecret))(c)

		assert.False(t, c.IsAborted())
		_, ok := UserID(c)
		assert.False(t, ok)
	})

	t.Run("valid token sets user", func(t *testing.T) {
		c, _ := newContext("", createTokenWithSecret(testSecret, 9, time.Hour))
		OptionalUser(NewVerifier(testSecret))(c)

		assert.False(t, c.IsAborted())
		id, ok := UserID(c)
		assert.True(t, ok)
		assert.Equal(t, uint(9), id)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		c, w := newContext("", "garbage")
		OptionalUser(NewVerifier(testSecret))(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestTokenCookies はCookieの設定と削除が正しい属性で行われることを検証します。
func TestTokenCookies(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		c, w := newContext("", "")
		SetTokenCookie(c, "abc")

		header := w.Header().Get("Set-Cookie")
		assert.True(t, strings.HasPrefix(header, "token=abc"))
		assert.Contains(t, header, "Path=/")
		assert.Contains(t, header, "Max-Age=604800")
		assert.Contains(t, header, "HttpOnly")
	})

	t.Run("clear", func(t *testing.T) {
		c, w := newContext("", "")
		ClearTokenCookie(c)

		header := w.Header().Get("Set-Cookie")
		assert.True(t, strings.HasPrefix(header, "token="))
		assert.Contains(t, header, "Max-Age=0")
	})
}

// createTokenWithSecret はテスト用に指定されたシークレットとユーザーIDで署名済みJWTトークンを生成します。
func createTokenWithSecret(secret string, userID uint, expiration time.Duration) string {
	claims := jwt.MapClaims{
		"sub":   float64(userID),
		"exp":   time.Now().Add(expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": "test@example.com",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(secret))
	return signed
}
