// Package adapters はゲストブックのGORM実装を提供します。
package adapters

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"growth_journal/internal/feature/guestbook/domain/entity"
)

// MessageModel は messages テーブルの行です。
type MessageModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Content   string    `gorm:"type:text;not null"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (MessageModel) TableName() string { return "messages" }

// BeforeCreate はIDが未設定の場合にUUIDを割り当てます。
func (m *MessageModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ContactModel は emails テーブルの行です。email に一意制約があります。
type ContactModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContactModel) TableName() string { return "emails" }

func (m *ContactModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Models はマイグレーション対象のモデルを返します。
func Models() []any {
	return []any{&MessageModel{}, &ContactModel{}}
}

func (m MessageModel) toEntity() entity.Message {
	return entity.Message{ID: m.ID, Content: m.Content, Name: m.Name, CreatedAt: m.CreatedAt}
}

func (m ContactModel) toEntity() *entity.Contact {
	return &entity.Contact{ID: m.ID, Email: m.Email, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}
