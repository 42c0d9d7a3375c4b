// Package gate はページリクエストの前段で動作する認証ゲートを提供します。
//
// ゲートはリクエスト間で状態を持たず、パスとトークンだけで判定します。
// /api 配下は対象外で、APIルートは各自 jwtmw.RequireUser で検証します。
package gate

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtmw "growth_journal/internal/platform/jwt"
)

// State はゲートの判定結果です。
type State int

const (
	// Unprotected は保護対象外のパスで、そのまま通過します。
	Unprotected State = iota
	// ProtectedNoToken は保護パスでトークンがない状態で、ログインへリダイレクトします。
	ProtectedNoToken
	// ProtectedValidToken は保護パスで有効なトークンがある状態で、通過します。
	ProtectedValidToken
	// ProtectedInvalidToken は保護パスで不正なトークンがある状態で、Cookieを削除してリダイレクトします。
	ProtectedInvalidToken
)

func (s State) String() string {
	switch s {
	case Unprotected:
		return "unprotected"
	case ProtectedNoToken:
		return "protected_no_token"
	case ProtectedValidToken:
		return "protected_valid_token"
	case ProtectedInvalidToken:
		return "protected_invalid_token"
	default:
		return "unknown"
	}
}

// DefaultProtectedPaths はログインが必要なページパスです。
var DefaultProtectedPaths = []string{"/", "/gallery", "/upload", "/messages"}

// LoginPath は未認証時のリダイレクト先です。
const LoginPath = "/login"

const apiPrefix = "/api"

// Gate は保護パスの一覧とトークン検証器を保持します。
type Gate struct {
	verifier  jwtmw.Verifier
	protected []string
}

// New は指定パスを保護するGateを生成します。paths が空の場合は DefaultProtectedPaths を使用します。
func New(v jwtmw.Verifier, paths ...string) *Gate {
	if len(paths) == 0 {
		paths = DefaultProtectedPaths
	}
	return &Gate{verifier: v, protected: paths}
}

// IsProtected はパスが保護対象かを返します。完全一致または「パス + "/"」の前方一致で判定します。
func (g *Gate) IsProtected(path string) bool {
	if path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/") {
		return false
	}
	for _, p := range g.protected {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Decide はパスとトークンからゲートの状態を判定します。
func (g *Gate) Decide(path, token string) State {
	if !g.IsProtected(path) {
		return Unprotected
	}
	if token == "" {
		return ProtectedNoToken
	}
	if _, err := g.verifier.Verify(token); err != nil {
		return ProtectedInvalidToken
	}
	return ProtectedValidToken
}

// Middleware はDecideの結果に従ってリクエストを通過・リダイレクトさせるGinミドルウェアを返します。
// ページ遷移用のため、トークンはCookieからのみ読み取ります。
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(jwtmw.CookieName)
		state := g.Decide(c.Request.URL.Path, token)

		switch state {
		case ProtectedNoToken:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		case ProtectedInvalidToken:
			slog.Info("gate rejected invalid token", "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
			jwtmw.ClearTokenCookie(c)
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
