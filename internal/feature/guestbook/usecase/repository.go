package usecase

import (
	"context"

	"growth_journal/internal/feature/guestbook/domain/entity"
)

// MessageRepository はメッセージの永続化を抽象化します。
type MessageRepository interface {
	Create(ctx context.Context, m *entity.Message) error
	// Recent は新しい順に最大 limit 件を返します。
	Recent(ctx context.Context, limit int) ([]entity.Message, error)
}

// ContactRepository はメール登録の永続化を抽象化します。
type ContactRepository interface {
	// Upsert はメールアドレスが既に存在する場合は名前を更新し、なければ作成します。
	// 保存後の行を返します。
	Upsert(ctx context.Context, c *entity.Contact) (*entity.Contact, error)
}

// UserDirectory は投稿者名の解決に使うユーザー参照です。
// ユーザーが存在しない場合は apperr.ErrNotFound をラップしたエラーを返します。
type UserDirectory interface {
	DisplayName(ctx context.Context, userID uint) (string, error)
}
