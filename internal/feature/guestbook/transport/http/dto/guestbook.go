// Package dto はゲストブックのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"growth_journal/internal/feature/guestbook/domain/entity"
)

// MessageReq は POST /api/messages のリクエストボディです。name は省略可能です。
type MessageReq struct {
	Content string `json:"content" binding:"required"`
	Name    string `json:"name"`
}

// ListReq は GET /api/messages のクエリです。
type ListReq struct {
	Limit int `form:"limit"`
}

// EmailReq は POST /api/emails のリクエストボディです。
type EmailReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type MessageRes struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type EmailRes struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToMessageRes(m entity.Message) MessageRes {
	return MessageRes{ID: m.ID, Content: m.Content, Name: m.Name, CreatedAt: m.CreatedAt}
}

func ToMessagesRes(items []entity.Message) []MessageRes {
	out := make([]MessageRes, 0, len(items))
	for _, m := range items {
		out = append(out, ToMessageRes(m))
	}
	return out
}

func ToEmailRes(c entity.Contact) EmailRes {
	return EmailRes{ID: c.ID, Email: c.Email, Name: c.Name, CreatedAt: c.CreatedAt}
}
