// Package dto はmediaフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
//
// レスポンスの形はフロントエンドが期待する形式（like / comment / _count）に合わせています。
package dto

import (
	"time"

	"growth_journal/internal/feature/media/domain/entity"
	"growth_journal/internal/feature/media/usecase"
)

// FeedQueryReq は GET /api/media のクエリパラメータです。
type FeedQueryReq struct {
	Sort     string `form:"sort"`
	Type     string `form:"type"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// ToQuery はユースケースのクエリに変換します。範囲外の値はユースケース側で正規化されます。
func (r FeedQueryReq) ToQuery() usecase.FeedQuery {
	return usecase.FeedQuery{
		Sort:     usecase.Sort(r.Sort),
		Type:     usecase.TypeFilter(r.Type),
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

// UploadReq は POST /api/media のリクエストボディです。
// オブジェクト自体はクライアントから外部ストレージへ直接アップロード済みです。
type UploadReq struct {
	URL       string   `json:"url" binding:"required"`
	Key       string   `json:"key"`
	Type      string   `json:"type" binding:"required"`
	FileType  string   `json:"fileType"`
	Size      int64    `json:"size"`
	Thumbnail string   `json:"thumbnail"`
	Duration  *float64 `json:"duration"`
	Name      string   `json:"name"`
}

// ToInput はユースケースの入力に変換します。
func (r UploadReq) ToInput() usecase.UploadInput {
	return usecase.UploadInput{
		URL:       r.URL,
		Key:       r.Key,
		Type:      r.Type,
		FileType:  r.FileType,
		Size:      r.Size,
		Thumbnail: r.Thumbnail,
		Duration:  r.Duration,
		Name:      r.Name,
	}
}

// CommentReq は POST /api/media/:id/comments のリクエストボディです。
// name は匿名コメントの場合のみ使われます。
type CommentReq struct {
	Content string `json:"content"`
	Name    string `json:"name"`
}

type LikeRes struct {
	UserID    uint      `json:"userId"`
	MediaID   string    `json:"mediaId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentRes struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Name      string    `json:"name"`
	UserID    *uint     `json:"userId"`
	MediaID   string    `json:"mediaId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CountRes struct {
	Like    int `json:"like"`
	Comment int `json:"comment"`
}

// MediaRes はフィードの1要素です。isLiked は閲覧ユーザーから見た状態です。
type MediaRes struct {
	ID        string       `json:"id"`
	URL       string       `json:"url"`
	Name      string       `json:"name"`
	Type      string       `json:"type"`
	FileType  string       `json:"fileType,omitempty"`
	Size      int64        `json:"size"`
	Thumbnail string       `json:"thumbnail,omitempty"`
	Duration  *float64     `json:"duration,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	Like      []LikeRes    `json:"like"`
	Comment   []CommentRes `json:"comment"`
	Count     CountRes     `json:"_count"`
	IsLiked   bool         `json:"isLiked"`
}

// LikeToggleRes は POST /api/media/:id/like のレスポンスです。
type LikeToggleRes struct {
	Success bool `json:"success"`
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

// ToCommentRes はコメントエンティティをレスポンス形式に変換します。
func ToCommentRes(c entity.Comment) CommentRes {
	return CommentRes{
		ID:        c.ID,
		Content:   c.Content,
		Name:      c.Name,
		UserID:    c.UserID,
		MediaID:   c.MediaID,
		CreatedAt: c.CreatedAt,
	}
}

// ToMediaRes はメディアエンティティをレスポンス形式に変換します。
// viewer は閲覧ユーザーのIDで、0の場合 isLiked は常に false です。
func ToMediaRes(m entity.Media, viewer uint) MediaRes {
	res := MediaRes{
		ID:        m.ID,
		URL:       m.URL,
		Name:      m.Name,
		Type:      string(m.Type),
		FileType:  m.FileType,
		Size:      m.Size,
		Thumbnail: m.Thumbnail,
		CreatedAt: m.CreatedAt,
		Like:      make([]LikeRes, 0, len(m.Likes)),
		Comment:   make([]CommentRes, 0, len(m.Comments)),
		Count:     CountRes{Like: len(m.Likes), Comment: len(m.Comments)},
		IsLiked:   viewer != 0 && m.LikedBy(viewer),
	}
	if m.Video != nil {
		d := m.Video.Duration
		res.Duration = &d
	}
	for _, l := range m.Likes {
		res.Like = append(res.Like, LikeRes{UserID: l.UserID, MediaID: l.MediaID, CreatedAt: l.CreatedAt})
	}
	for _, c := range m.Comments {
		res.Comment = append(res.Comment, ToCommentRes(c))
	}
	return res
}

// ToFeedRes はフィードの各要素を変換します。空の場合も空配列を返します。
func ToFeedRes(items []entity.Media, viewer uint) []MediaRes {
	out := make([]MediaRes, 0, len(items))
	for _, m := range items {
		out = append(out, ToMediaRes(m, viewer))
	}
	return out
}
