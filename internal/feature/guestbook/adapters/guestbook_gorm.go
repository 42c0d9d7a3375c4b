package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"growth_journal/internal/feature/guestbook/domain/entity"
	"growth_journal/internal/feature/guestbook/usecase"
)

type guestbookGorm struct {
	db *gorm.DB
}

var (
	_ usecase.MessageRepository = (*guestbookGorm)(nil)
	_ usecase.ContactRepository = (*guestbookGorm)(nil)
)

// NewGuestbookRepository はメッセージとメール登録の両方を扱うリポジトリを生成します。
func NewGuestbookRepository(db *gorm.DB) *guestbookGorm {
	return &guestbookGorm{db: db}
}

// Create はメッセージを保存し、割り当てられたIDと作成日時を m に反映します。
func (r *guestbookGorm) Create(ctx context.Context, m *entity.Message) error {
	row := MessageModel{ID: m.ID, Content: m.Content, Name: m.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	m.ID = row.ID
	m.CreatedAt = row.CreatedAt
	return nil
}

// Recent は作成日時の新しい順に最大 limit 件を返します。
func (r *guestbookGorm) Recent(ctx context.Context, limit int) ([]entity.Message, error) {
	var rows []MessageModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Upsert は INSERT ... ON CONFLICT (email) DO UPDATE で名前を更新します。
// 既存行のIDは変わらないため、保存後の行をメールアドレスで読み直して返します。
func (r *guestbookGorm) Upsert(ctx context.Context, c *entity.Contact) (*entity.Contact, error) {
	db := r.db.WithContext(ctx)
	row := ContactModel{Email: c.Email, Name: c.Name}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       c.Name,
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	var saved ContactModel
	if err := db.Where("email = ?", c.Email).First(&saved).Error; err != nil {
		return nil, err
	}
	return saved.toEntity(), nil
}
