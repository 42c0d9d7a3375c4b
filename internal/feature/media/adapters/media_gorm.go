// Package adapters はメディアフィーチャーのGORMによる永続化を実装します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"growth_journal/internal/feature/media/domain/entity"
	"growth_journal/internal/feature/media/usecase"
)

type mediaGorm struct {
	db *gorm.DB
}

var (
	_ usecase.FeedRepository       = (*mediaGorm)(nil)
	_ usecase.EngagementRepository = (*mediaGorm)(nil)
	_ usecase.MediaRepository      = (*mediaGorm)(nil)
)

func NewMediaRepository(db *gorm.DB) *mediaGorm {
	return &mediaGorm{db: db}
}

// likeCountExpr はメディアごとのいいね件数を求める相関サブクエリです。
const likeCountExpr = "(SELECT COUNT(*) FROM likes WHERE likes.media_id = media.id)"

// escapeLike はLIKEパターン中のワイルドカードをエスケープします。
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (r *mediaGorm) Feed(ctx context.Context, q usecase.FeedQuery) ([]entity.Media, error) {
	tx := r.db.WithContext(ctx).
		Model(&MediaModel{}).
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })

	if typ, ok := q.MediaType(); ok {
		tx = tx.Where("media.type = ?", string(typ))
	}
	if q.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(q.Search)) + "%"
		tx = tx.Where(`EXISTS (SELECT 1 FROM comments WHERE comments.media_id = media.id AND LOWER(comments.content) LIKE ? ESCAPE '\')`, pattern)
	}

	switch q.Sort {
	case usecase.SortOldest:
		tx = tx.Order("media.created_at ASC")
	case usecase.SortLikes:
		tx = tx.Order(likeCountExpr + " DESC").Order("media.created_at DESC")
	default:
		tx = tx.Order("media.created_at DESC")
	}
	// ページ間で重複しないよう一意なキーで順序を確定させる
	tx = tx.Order("media.id ASC")

	var rows []MediaModel
	if err := tx.Offset(q.Offset()).Limit(q.PageSize).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Media, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *mediaGorm) Create(ctx context.Context, m *entity.Media) error {
	model := fromEntity(m)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	m.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *mediaGorm) FindByID(ctx context.Context, id string) (*entity.Media, error) {
	var m MediaModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMediaNotFound
		}
		return nil, err
	}
	e := m.toEntity()
	return &e, nil
}

// Delete はいいね・コメント・メディアを1トランザクションで削除します。
// 外部キー制約に依存せず子レコードを明示的に削除します。
func (r *mediaGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("media_id = ?", id).Delete(&LikeModel{}).Error; err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}
		if err := tx.Where("media_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&MediaModel{})
		if res.Error != nil {
			return fmt.Errorf("delete media: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return usecase.ErrMediaNotFound
		}
		return nil
	})
}

func (r *mediaGorm) ListAll(ctx context.Context) ([]entity.Media, error) {
	var rows []MediaModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Media, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

func (r *mediaGorm) exists(ctx context.Context, id string) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&MediaModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return usecase.ErrMediaNotFound
	}
	return nil
}

// ToggleLike は既存のいいねを削除し、削除対象がなければ作成します。
// 並行する作成で一意制約違反になった場合は、先にコミットした側を優先して削除として扱います。
func (r *mediaGorm) ToggleLike(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error) {
	if err := r.exists(ctx, mediaID); err != nil {
		return entity.LikeResult{}, err
	}

	db := r.db.WithContext(ctx)
	liked := false

	res := db.Where("user_id = ? AND media_id = ?", userID, mediaID).Delete(&LikeModel{})
	if res.Error != nil {
		return entity.LikeResult{}, res.Error
	}
	if res.RowsAffected == 0 {
		err := db.Create(&LikeModel{UserID: userID, MediaID: mediaID}).Error
		switch {
		case err == nil:
			liked = true
		case errors.Is(err, gorm.ErrDuplicatedKey):
			if err := db.Where("user_id = ? AND media_id = ?", userID, mediaID).Delete(&LikeModel{}).Error; err != nil {
				return entity.LikeResult{}, err
			}
		default:
			return entity.LikeResult{}, err
		}
	}

	var count int64
	if err := db.Model(&LikeModel{}).Where("media_id = ?", mediaID).Count(&count).Error; err != nil {
		return entity.LikeResult{}, err
	}
	return entity.LikeResult{Likes: int(count), IsLiked: liked}, nil
}

func (r *mediaGorm) AddComment(ctx context.Context, c *entity.Comment) error {
	if err := r.exists(ctx, c.MediaID); err != nil {
		return err
	}
	m := CommentModel{
		ID:      c.ID,
		Content: c.Content,
		Name:    c.Name,
		UserID:  c.UserID,
		MediaID: c.MediaID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}
