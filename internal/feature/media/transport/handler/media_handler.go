// Package handler はmediaフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"growth_journal/internal/feature/media/domain/entity"
	"growth_journal/internal/feature/media/transport/http/dto"
	"growth_journal/internal/feature/media/usecase"
	jwtmw "growth_journal/internal/platform/jwt"
	"growth_journal/internal/shared/apperr"
)

// FeedUsecase はフィード取得のユースケースです。
type FeedUsecase interface {
	GetFeed(ctx context.Context, q usecase.FeedQuery) ([]entity.Media, error)
}

// EngagementUsecase はいいね・コメントのユースケースです。
type EngagementUsecase interface {
	ToggleLike(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error)
	AddComment(ctx context.Context, mediaID, content string, userID *uint, name string) (*entity.Comment, error)
}

// UploadUsecase はアップロード済みメディアの登録ユースケースです。
type UploadUsecase interface {
	Register(ctx context.Context, in usecase.UploadInput, userID uint) (*entity.Media, error)
}

// DeleteUsecase はメディア削除のユースケースです。
type DeleteUsecase interface {
	Delete(ctx context.Context, mediaID string) error
}

// MediaHandler はメディアAPIのHTTPリクエストを処理します。
type MediaHandler struct {
	feed       FeedUsecase
	engagement EngagementUsecase
	upload     UploadUsecase
	deleter    DeleteUsecase
}

// NewMediaHandler はMediaHandlerの新しいインスタンスを生成します。
func NewMediaHandler(feed FeedUsecase, engagement EngagementUsecase, upload UploadUsecase, deleter DeleteUsecase) *MediaHandler {
	return &MediaHandler{
		feed:       feed,
		engagement: engagement,
		upload:     upload,
		deleter:    deleter,
	}
}

// fail は分類済みエラーを {success:false, error} 形式で返します。
// 根本原因はログにのみ残します。
func fail(c *gin.Context, msg string, err error, fallback string, attrs ...any) {
	attrs = append(attrs, "error", err, "remote_addr", c.ClientIP())
	if apperr.Status(err) >= http.StatusInternalServerError {
		slog.Error(msg, attrs...)
	} else {
		slog.Warn(msg, attrs...)
	}
	c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.PublicMessage(err, fallback)})
}

// List は GET /api/media を処理します。
// sort=recent|oldest|likes, type=all|images|videos, search, page, pageSize を受け付けます。
func (h *MediaHandler) List(c *gin.Context) {
	var req dto.FeedQueryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Warn("feed query validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid query"})
		return
	}

	items, err := h.feed.GetFeed(c.Request.Context(), req.ToQuery())
	if err != nil {
		fail(c, "failed to load feed", err, "Failed to load media")
		return
	}

	viewer, _ := jwtmw.UserID(c)
	c.JSON(http.StatusOK, dto.ToFeedRes(items, viewer))
}

// Create は POST /api/media を処理し、アップロード済みオブジェクトをメディアとして登録します。
func (h *MediaHandler) Create(c *gin.Context) {
	var req dto.UploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("upload validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "url and type are required"})
		return
	}

	userID, _ := jwtmw.UserID(c)
	m, err := h.upload.Register(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		fail(c, "failed to register upload", err, "Failed to save media", "user_id", userID)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "media": dto.ToMediaRes(*m, userID)})
}

// Delete は DELETE /api/media/:id を処理します。
// 外部ストレージの削除に失敗した場合、レコードは残り502を返します。
func (h *MediaHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.deleter.Delete(c.Request.Context(), id); err != nil {
		fail(c, "failed to delete media", err, "Failed to delete media", "media_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleLike は POST /api/media/:id/like を処理します。
func (h *MediaHandler) ToggleLike(c *gin.Context) {
	id := c.Param("id")
	userID, _ := jwtmw.UserID(c)

	res, err := h.engagement.ToggleLike(c.Request.Context(), id, userID)
	if err != nil {
		fail(c, "failed to toggle like", err, "Failed to like media", "media_id", id, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, dto.LikeToggleRes{Success: true, Likes: res.Likes, IsLiked: res.IsLiked})
}

// AddComment は POST /api/media/:id/comments を処理します。
// 認証済みの場合は投稿者名をユーザーの表示名で上書きします。
func (h *MediaHandler) AddComment(c *gin.Context) {
	id := c.Param("id")

	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("comment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "content is required"})
		return
	}

	var userID *uint
	if uid, ok := jwtmw.UserID(c); ok {
		userID = &uid
	}

	comment, err := h.engagement.AddComment(c.Request.Context(), id, req.Content, userID, req.Name)
	if err != nil {
		fail(c, "failed to add comment", err, "Failed to add comment", "media_id", id)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": dto.ToCommentRes(*comment)})
}
