// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"growth_journal/internal/feature/auth/domain/entity"
	"growth_journal/internal/feature/auth/transport/http/dto"
	jwtmw "growth_journal/internal/platform/jwt"
	"growth_journal/internal/shared/apperr"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、保存したユーザーを返します。
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にJWTトークンとユーザーを返します。
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	// Me は指定されたユーザーIDのプロフィールを返します。
	Me(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - 必須フィールド欠落・メール形式不正は400
// - メール重複は409
// - 成功時は201と userId を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "all fields are required"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(apperr.Status(err), dto.ErrorRes{Error: apperr.PublicMessage(err, "registration failed")})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{Message: "User registered", UserID: user.ID})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400
// - 認証失敗・メール未確認は401
// - 成功時はトークンをJSONとCookieの両方で返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "email and password required"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(apperr.Status(err), dto.ErrorRes{Error: apperr.PublicMessage(err, "login failed")})
		return
	}

	jwtmw.SetTokenCookie(c, token)
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserRes(user),
	})
}

// Logout はトークンCookieを削除します。トークンはステートレスなのでサーバー側の状態は持ちません。
func (h *AuthHandler) Logout(c *gin.Context) {
	jwtmw.ClearTokenCookie(c)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "Logged out"})
}

// Me は認証済みユーザーのプロフィールを返します。RequireUser の後段で使います。
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "missing token"})
		return
	}

	user, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("profile lookup failed", "error", err, "user_id", userID)
		c.JSON(apperr.Status(err), dto.ErrorRes{Error: apperr.PublicMessage(err, "failed to load profile")})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserRes(user))
}
