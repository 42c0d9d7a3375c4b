package adapters

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growth_journal/internal/feature/media/domain/entity"
)

// MediaModel はmediaテーブルのGORMモデルです。
type MediaModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	URL        string    `gorm:"not null"`
	Name       string    `gorm:"size:255;not null;default:''"`
	Type       string    `gorm:"size:16;not null;index"`
	FileType   string    `gorm:"size:128"`
	Size       int64     `gorm:"not null;default:0"`
	Thumbnail  *string   `gorm:"type:text"`
	StorageKey *string   `gorm:"size:255;index"`
	Duration   *float64  // 動画のみ
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time

	Likes    []LikeModel    `gorm:"foreignKey:MediaID"`
	Comments []CommentModel `gorm:"foreignKey:MediaID"`
}

func (MediaModel) TableName() string {
	return "media"
}

// BeforeCreate はIDが未設定の場合にUUIDを採番します。
func (m *MediaModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// LikeModel はlikesテーブルのGORMモデルです。
// 複合主キー (user_id, media_id) により1ユーザー1メディアにつき1件に制限されます。
type LikeModel struct {
	UserID    uint   `gorm:"primaryKey;autoIncrement:false"`
	MediaID   string `gorm:"primaryKey;size:36;index"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}

// CommentModel はcommentsテーブルのGORMモデルです。
type CommentModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Content   string    `gorm:"type:text;not null"`
	Name      string    `gorm:"size:255;not null"`
	UserID    *uint     `gorm:"index"`
	MediaID   string    `gorm:"size:36;not null;index"`
	CreatedAt time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return "comments"
}

// BeforeCreate はIDが未設定の場合にUUIDを採番します。
func (c *CommentModel) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Models はAutoMigrate対象のモデル一覧です。
func Models() []any {
	return []any{&MediaModel{}, &LikeModel{}, &CommentModel{}}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fromEntity(e *entity.Media) MediaModel {
	m := MediaModel{
		ID:         e.ID,
		URL:        e.URL,
		Name:       e.Name,
		Type:       string(e.Type),
		FileType:   e.FileType,
		Size:       e.Size,
		Thumbnail:  strPtr(e.Thumbnail),
		StorageKey: strPtr(e.StorageKey),
		CreatedAt:  e.CreatedAt,
	}
	if e.Video != nil {
		d := e.Video.Duration
		m.Duration = &d
	}
	return m
}

func (m MediaModel) toEntity() entity.Media {
	e := entity.Media{
		ID:         m.ID,
		URL:        m.URL,
		Name:       m.Name,
		Type:       entity.MediaType(m.Type),
		FileType:   m.FileType,
		Size:       m.Size,
		Thumbnail:  deref(m.Thumbnail),
		StorageKey: deref(m.StorageKey),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		Likes:      make([]entity.Like, 0, len(m.Likes)),
		Comments:   make([]entity.Comment, 0, len(m.Comments)),
	}
	if e.Type == entity.TypeVideo {
		d := 0.0
		if m.Duration != nil {
			d = *m.Duration
		}
		e.Video = &entity.VideoDetails{Duration: d}
	}
	for _, l := range m.Likes {
		e.Likes = append(e.Likes, entity.Like{UserID: l.UserID, MediaID: l.MediaID, CreatedAt: l.CreatedAt})
	}
	for _, c := range m.Comments {
		e.Comments = append(e.Comments, c.toEntity())
	}
	return e
}

func (c CommentModel) toEntity() entity.Comment {
	return entity.Comment{
		ID:        c.ID,
		Content:   c.Content,
		Name:      c.Name,
		UserID:    c.UserID,
		MediaID:   c.MediaID,
		CreatedAt: c.CreatedAt,
	}
}
