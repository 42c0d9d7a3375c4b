// Package router はHTTPルーティングとミドルウェアの構成を定義します。
package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "growth_journal/internal/feature/auth/transport/handler"
	guestbookhandler "growth_journal/internal/feature/guestbook/transport/handler"
	mediahandler "growth_journal/internal/feature/media/transport/handler"
	"growth_journal/internal/platform/gate"
	jwtmw "growth_journal/internal/platform/jwt"
	"growth_journal/internal/platform/metrics"
)

// Pages はSPAのindex.htmlを返すページパスです。
var Pages = []string{"/", "/gallery", "/upload", "/messages", gate.LoginPath, "/register"}

// Handlers はルーターに登録するハンドラーです。
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Media     *mediahandler.MediaHandler
	Guestbook *guestbookhandler.GuestbookHandler
	Health    gin.HandlerFunc
}

// Options はルーターの動作設定です。
type Options struct {
	Verifier               jwtmw.Verifier
	CORSOrigins            []string
	WebDir                 string // 空の場合はページを配信しない
	AllowAnonymousComments bool
}

func NewRouter(h Handlers, opt Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())

	// ブラウザから別オリジンで開発する場合のみ。Cookieを送るため AllowCredentials が必要
	if len(opt.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opt.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// ページのみが対象。/api はゲートを素通りし、各ルートで検証する
	r.Use(gate.New(opt.Verifier).Middleware())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.GET("/metrics", metrics.Handler())

	requireUser := jwtmw.RequireUser(opt.Verifier)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", requireUser, h.Auth.Me)
	}

	// 認証必須のルート
	user := api.Group("/")
	user.Use(requireUser)
	{
		user.GET("/media", h.Media.List)
		user.POST("/media", h.Media.Create)
		user.DELETE("/media/:id", h.Media.Delete)
		user.POST("/media/:id/like", h.Media.ToggleLike)

		user.GET("/messages", h.Guestbook.ListMessages)
		user.POST("/messages", h.Guestbook.PostMessage)
		user.POST("/emails", h.Guestbook.SaveEmail)
	}

	if opt.AllowAnonymousComments {
		api.POST("/media/:id/comments", jwtmw.OptionalUser(opt.Verifier), h.Media.AddComment)
	} else {
		user.POST("/media/:id/comments", h.Media.AddComment)
	}

	if opt.WebDir != "" {
		index := filepath.Join(opt.WebDir, "index.html")
		r.Static("/assets", filepath.Join(opt.WebDir, "assets"))
		for _, p := range Pages {
			r.GET(p, func(c *gin.Context) { c.File(index) })
		}
	}

	return r
}
