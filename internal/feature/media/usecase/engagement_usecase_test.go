package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth_journal/internal/feature/media/domain/entity"
	"growth_journal/internal/feature/media/usecase"
	"growth_journal/internal/shared/apperr"
)

func uintPtr(v uint) *uint { return &v }

// TestEngagementUsecase_ToggleLike はユーザー未解決・メディアID欠落・正常系を検証します。
func TestEngagementUsecase_ToggleLike(t *testing.T) {
	t.Parallel()

	repo := &mockEngagementRepository{
		ToggleLikeFunc: func(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error) {
			assert.Equal(t, "m1", mediaID)
			assert.Equal(t, uint(7), userID)
			return entity.LikeResult{Likes: 3, IsLiked: true}, nil
		},
	}
	users := &mockUserDirectory{
		DisplayNameFunc: func(ctx context.Context, userID uint) (string, error) {
			return "Dad", nil
		},
	}
	uc := usecase.NewEngagementUsecase(repo, users, false)

	_, err := uc.ToggleLike(context.Background(), "m1", 0)
	assert.ErrorIs(t, err, usecase.ErrUnauthenticated)
	assert.ErrorIs(t, err, apperr.ErrAuth)

	_, err = uc.ToggleLike(context.Background(), " ", 7)
	assert.ErrorIs(t, err, usecase.ErrMissingMediaID)

	res, err := uc.ToggleLike(context.Background(), "m1", 7)
	require.NoError(t, err)
	assert.Equal(t, entity.LikeResult{Likes: 3, IsLiked: true}, res)
}

// TestEngagementUsecase_ToggleLike_DeletedUser は削除済みユーザーのトークンではいいねが保存されないことを検証します。
func TestEngagementUsecase_ToggleLike_DeletedUser(t *testing.T) {
	t.Parallel()

	repo := &mockEngagementRepository{
		ToggleLikeFunc: func(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error) {
			t.Fatal("ToggleLike must not reach the store for an unknown user")
			return entity.LikeResult{}, nil
		},
	}

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		users := &mockUserDirectory{DisplayNameFunc: func(ctx context.Context, userID uint) (string, error) {
			return "", fmt.Errorf("%w: no such user", apperr.ErrNotFound)
		}}
		_, err := usecase.NewEngagementUsecase(repo, users, false).ToggleLike(context.Background(), "m1", 42)
		assert.ErrorIs(t, err, usecase.ErrUnauthenticated)
	})

	t.Run("lookup error", func(t *testing.T) {
		t.Parallel()

		lookupErr := errors.New("db down")
		users := &mockUserDirectory{DisplayNameFunc: func(ctx context.Context, userID uint) (string, error) {
			return "", lookupErr
		}}
		_, err := usecase.NewEngagementUsecase(repo, users, false).ToggleLike(context.Background(), "m1", 42)
		assert.ErrorIs(t, err, lookupErr)
		assert.NotErrorIs(t, err, usecase.ErrUnauthenticated)
	})
}

// TestEngagementUsecase_AddComment はコメント追加の検証・投稿者名の解決・匿名コメントの扱いを検証します。
func TestEngagementUsecase_AddComment(t *testing.T) {
	t.Parallel()

	users := &mockUserDirectory{
		DisplayNameFunc: func(ctx context.Context, userID uint) (string, error) {
			if userID == 1 {
				return "Grandma", nil
			}
			return "", fmt.Errorf("%w: no such user", apperr.ErrNotFound)
		},
	}

	tests := []struct {
		name           string
		allowAnonymous bool
		mediaID        string
		content        string
		userID         *uint
		authorName     string
		wantErr        error
		wantName       string
	}{
		{name: "identified user", mediaID: "m1", content: " so cute ", userID: uintPtr(1), authorName: "ignored", wantName: "Grandma"},
		{name: "empty content", mediaID: "m1", content: "   ", userID: uintPtr(1), wantErr: usecase.ErrEmptyContent},
		{name: "empty media id", mediaID: "", content: "hi", userID: uintPtr(1), wantErr: usecase.ErrMissingMediaID},
		{name: "too long", mediaID: "m1", content: strings.Repeat("a", 1001), userID: uintPtr(1), wantErr: usecase.ErrContentTooLong},
		{name: "unknown user", mediaID: "m1", content: "hi", userID: uintPtr(99), wantErr: usecase.ErrUserNotFound},
		{name: "anonymous rejected by default", mediaID: "m1", content: "hi", wantErr: usecase.ErrUnauthenticated},
		{name: "anonymous allowed", allowAnonymous: true, mediaID: "m1", content: "hi", authorName: "Uncle Bob", wantName: "Uncle Bob"},
		{name: "anonymous without name", allowAnonymous: true, mediaID: "m1", content: "hi", wantErr: usecase.ErrMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var saved *entity.Comment
			repo := &mockEngagementRepository{
				AddCommentFunc: func(ctx context.Context, c *entity.Comment) error {
					saved = c
					c.ID = "c1"
					return nil
				},
			}
			uc := usecase.NewEngagementUsecase(repo, users, tt.allowAnonymous)

			got, err := uc.AddComment(context.Background(), tt.mediaID, tt.content, tt.userID, tt.authorName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved, "repository must not be called")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "c1", got.ID)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, strings.TrimSpace(tt.content), got.Content)
			if tt.userID == nil {
				assert.Nil(t, got.UserID)
			} else {
				require.NotNil(t, got.UserID)
				assert.Equal(t, *tt.userID, *got.UserID)
			}
		})
	}
}

// TestEngagementUsecase_AddComment_MediaNotFound はリポジトリのNotFoundがそのまま返ることを検証します。
func TestEngagementUsecase_AddComment_MediaNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockEngagementRepository{
		AddCommentFunc: func(ctx context.Context, c *entity.Comment) error {
			return usecase.ErrMediaNotFound
		},
	}
	users := &mockUserDirectory{
		DisplayNameFunc: func(ctx context.Context, userID uint) (string, error) { return "Mom", nil },
	}

	_, err := usecase.NewEngagementUsecase(repo, users, false).AddComment(context.Background(), "missing", "hi", uintPtr(1), "")
	assert.ErrorIs(t, err, usecase.ErrMediaNotFound)
	assert.Equal(t, 404, apperr.Status(err))
}
