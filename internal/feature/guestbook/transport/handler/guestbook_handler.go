// Package handler はゲストブックのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"growth_journal/internal/feature/guestbook/domain/entity"
	"growth_journal/internal/feature/guestbook/transport/http/dto"
	jwtmw "growth_journal/internal/platform/jwt"
	"growth_journal/internal/shared/apperr"
)

// GuestbookUsecase はゲストブック操作のユースケースです。
type GuestbookUsecase interface {
	PostMessage(ctx context.Context, content, name string, userID uint) (*entity.Message, error)
	ListMessages(ctx context.Context, limit int) ([]entity.Message, error)
	SaveEmail(ctx context.Context, name, email string) (*entity.Contact, error)
}

// GuestbookHandler はメッセージとメール登録のHTTPリクエストを処理します。
type GuestbookHandler struct {
	guestbook GuestbookUsecase
}

// NewGuestbookHandler はGuestbookHandlerの新しいインスタンスを生成します。
func NewGuestbookHandler(guestbook GuestbookUsecase) *GuestbookHandler {
	return &GuestbookHandler{guestbook: guestbook}
}

func fail(c *gin.Context, msg string, err error, fallback string) {
	if apperr.Status(err) >= http.StatusInternalServerError {
		slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
	} else {
		slog.Warn(msg, "error", err, "remote_addr", c.ClientIP())
	}
	c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.PublicMessage(err, fallback)})
}

// ListMessages は GET /api/messages を処理し、新しい順の配列を返します。
func (h *GuestbookHandler) ListMessages(c *gin.Context) {
	var req dto.ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid limit"})
		return
	}

	items, err := h.guestbook.ListMessages(c.Request.Context(), req.Limit)
	if err != nil {
		fail(c, "failed to list messages", err, "Failed to load messages")
		return
	}
	c.JSON(http.StatusOK, dto.ToMessagesRes(items))
}

// PostMessage は POST /api/messages を処理します。
func (h *GuestbookHandler) PostMessage(c *gin.Context) {
	var req dto.MessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "content is required"})
		return
	}

	userID, _ := jwtmw.UserID(c)
	m, err := h.guestbook.PostMessage(c.Request.Context(), req.Content, req.Name, userID)
	if err != nil {
		fail(c, "failed to save message", err, "Failed to save message")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": dto.ToMessageRes(*m)})
}

// SaveEmail は POST /api/emails を処理します。登録済みのメールアドレスは名前だけ更新します。
func (h *GuestbookHandler) SaveEmail(c *gin.Context) {
	var req dto.EmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name and a valid email are required"})
		return
	}

	saved, err := h.guestbook.SaveEmail(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		fail(c, "failed to save email", err, "Failed to save email")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "email": dto.ToEmailRes(*saved)})
}
