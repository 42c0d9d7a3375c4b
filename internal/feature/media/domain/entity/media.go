// Package entity はメディア（写真・動画）とそのエンゲージメントのドメインモデルを定義します。
package entity

import "time"

// MediaType はメディアの種別を表すタグです。
type MediaType string

const (
	TypeImage MediaType = "image"
	TypeVideo MediaType = "video"
)

// Valid は既知の種別かを返します。
func (t MediaType) Valid() bool {
	return t == TypeImage || t == TypeVideo
}

// VideoDetails は動画にのみ存在する属性です。
type VideoDetails struct {
	Duration float64 // 秒
}

// Media はアップロード済みの写真または動画です。
// Type が TypeVideo のときだけ Video が非nilになります。
type Media struct {
	ID         string
	URL        string
	Name       string // アップロードした人の表示名
	Type       MediaType
	FileType   string
	Size       int64
	Thumbnail  string
	StorageKey string // 外部ストレージのキー。空なら外部オブジェクトなし
	Video      *VideoDetails
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Likes    []Like
	Comments []Comment
}

// IsVideo は動画かどうかを返します。
func (m Media) IsVideo() bool {
	return m.Type == TypeVideo
}

// LikedBy は指定ユーザーがいいね済みかを返します。
func (m Media) LikedBy(userID uint) bool {
	for _, l := range m.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// Like はユーザーとメディアの組です。組ごとに高々1件です。
type Like struct {
	UserID    uint
	MediaID   string
	CreatedAt time.Time
}

// Comment はメディアへのコメントです。UserID がnilの場合は匿名コメントです。
type Comment struct {
	ID        string
	Content   string
	Name      string
	UserID    *uint
	MediaID   string
	CreatedAt time.Time
}

// LikeResult はいいねトグル後の状態です。
type LikeResult struct {
	Likes   int
	IsLiked bool
}
