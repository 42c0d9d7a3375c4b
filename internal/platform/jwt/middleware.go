package jwtmw

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ContextUserID = "userID"

// CookieName はセッショントークンを保持するCookie名です。
const CookieName = "token"

// cookieMaxAge はCookieの有効期間（秒）です。7日間。
const cookieMaxAge = 604800

// TokenFromRequest はAuthorizationヘッダー（Bearer）またはtoken Cookieからトークンを取り出します。
// どちらにもない場合は空文字を返します。
func TokenFromRequest(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if tok, err := c.Cookie(CookieName); err == nil {
		return tok
	}
	return ""
}

// RequireUser returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
func RequireUser(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := TokenFromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := v.Verify(tokenStr)
		if err != nil {
			abortVerify(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// OptionalUser はトークンがあれば検証してユーザーIDを設定し、なければ匿名のまま通過させます。
// トークンが存在するが不正な場合は401で中断します。
func OptionalUser(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := TokenFromRequest(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := v.Verify(tokenStr)
		if err != nil {
			abortVerify(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// abortVerify は検証失敗を応答に変換します。シークレット未設定はサーバー側の設定不備として500を返します。
func abortVerify(c *gin.Context, err error) {
	if errors.Is(err, ErrMissingSecret) {
		slog.Error("JWT secret is not configured; rejecting request", "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
		return
	}
	slog.Debug("token verification failed", "error", err, "path", c.FullPath())
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
}

// UserID はミドルウェアが設定したユーザーIDを返します。未認証の場合はfalseです。
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// SetTokenCookie はセッショントークンをCookieに設定します。
func SetTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, cookieMaxAge, "/", "", false, true)
}

// ClearTokenCookie はmax-age 0でトークンCookieを削除します。
func ClearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
