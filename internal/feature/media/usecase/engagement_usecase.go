package usecase

import (
	"context"
	"errors"
	"strings"

	"growth_journal/internal/feature/media/domain/entity"
	"growth_journal/internal/shared/apperr"
)

// maxCommentLength はコメント本文の最大文字数です。
const maxCommentLength = 1000

// engagementUsecase はいいね・コメントの変更を扱うユースケースです。
type engagementUsecase struct {
	engagement     EngagementRepository
	users          UserDirectory
	allowAnonymous bool
}

// NewEngagementUsecase はengagementUsecaseの新しいインスタンスを生成します。
// allowAnonymous が true の場合、ユーザーIDなしのコメントを受け付けます。
func NewEngagementUsecase(engagement EngagementRepository, users UserDirectory, allowAnonymous bool) *engagementUsecase {
	return &engagementUsecase{
		engagement:     engagement,
		users:          users,
		allowAnonymous: allowAnonymous,
	}
}

// ToggleLike はいいねの有無を反転し、反転後の件数と状態を返します。
// userID が保存済みユーザーに解決できない場合は ErrUnauthenticated です。
func (u *engagementUsecase) ToggleLike(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error) {
	if userID == 0 {
		return entity.LikeResult{}, ErrUnauthenticated
	}
	if strings.TrimSpace(mediaID) == "" {
		return entity.LikeResult{}, ErrMissingMediaID
	}
	// トークンが有効でもユーザーが削除済みの場合は、いいねを残さない
	if _, err := u.users.DisplayName(ctx, userID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return entity.LikeResult{}, ErrUnauthenticated
		}
		return entity.LikeResult{}, err
	}
	return u.engagement.ToggleLike(ctx, mediaID, userID)
}

// AddComment はコメントを追加します。
// userID が指定された場合、投稿者名は保存済みユーザーの表示名になります。
// userID がnilの場合は匿名コメントとして name を投稿者名に使います。
func (u *engagementUsecase) AddComment(ctx context.Context, mediaID, content string, userID *uint, name string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if strings.TrimSpace(mediaID) == "" {
		return nil, ErrMissingMediaID
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len([]rune(content)) > maxCommentLength {
		return nil, ErrContentTooLong
	}

	comment := &entity.Comment{
		MediaID: mediaID,
		Content: content,
	}

	if userID != nil {
		display, err := u.users.DisplayName(ctx, *userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		id := *userID
		comment.UserID = &id
		comment.Name = display
	} else {
		if !u.allowAnonymous {
			return nil, ErrUnauthenticated
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrMissingName
		}
		comment.Name = name
	}

	if err := u.engagement.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
