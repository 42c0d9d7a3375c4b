package usecase

import (
	"context"

	"growth_journal/internal/feature/media/domain/entity"
)

// FeedRepository はフィードの読み取りを抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）側で定義します。
type FeedRepository interface {
	// Feed は正規化済みのクエリに一致するメディアを、いいね・コメント付きで返します。
	Feed(ctx context.Context, q FeedQuery) ([]entity.Media, error)
}

// EngagementRepository はいいね・コメントの永続化を抽象化します。
type EngagementRepository interface {
	// ToggleLike は (userID, mediaID) のいいねを作成または削除し、トグル後の件数を返します。
	// メディアが存在しない場合は ErrMediaNotFound を返します。
	ToggleLike(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error)

	// AddComment はコメントを保存します。メディアが存在しない場合は ErrMediaNotFound を返します。
	AddComment(ctx context.Context, comment *entity.Comment) error
}

// MediaRepository はメディアレコードの永続化を抽象化します。
type MediaRepository interface {
	Create(ctx context.Context, m *entity.Media) error

	// FindByID は存在しない場合 ErrMediaNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Media, error)

	// Delete はメディアとそのいいね・コメントを1トランザクションで削除します。
	Delete(ctx context.Context, id string) error

	// ListAll はいいね・コメントを含まない全メディアを返します。
	ListAll(ctx context.Context) ([]entity.Media, error)
}

// UserDirectory は認証済みユーザーの表示名を解決します。
// 見つからない場合は apperr.ErrNotFound をラップしたエラーを返します。
type UserDirectory interface {
	DisplayName(ctx context.Context, userID uint) (string, error)
}

// ObjectStorage は外部ストレージのオブジェクト削除を抽象化します。
type ObjectStorage interface {
	Delete(ctx context.Context, key string) error
}
