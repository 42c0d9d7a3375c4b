package usecase_test

import (
	"context"
	"errors"

	"growth_journal/internal/feature/media/domain/entity"
	"growth_journal/internal/feature/media/usecase"
)

// errNotImplemented はモック関数が未設定の場合に返されます。
var errNotImplemented = errors.New("mock function is not implemented")

type mockFeedRepository struct {
	FeedFunc  func(ctx context.Context, q usecase.FeedQuery) ([]entity.Media, error)
	LastQuery usecase.FeedQuery
}

func (m *mockFeedRepository) Feed(ctx context.Context, q usecase.FeedQuery) ([]entity.Media, error) {
	m.LastQuery = q
	if m.FeedFunc != nil {
		return m.FeedFunc(ctx, q)
	}
	return nil, errNotImplemented
}

type mockEngagementRepository struct {
	ToggleLikeFunc func(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error)
	AddCommentFunc func(ctx context.Context, c *entity.Comment) error
}

func (m *mockEngagementRepository) ToggleLike(ctx context.Context, mediaID string, userID uint) (entity.LikeResult, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, mediaID, userID)
	}
	return entity.LikeResult{}, errNotImplemented
}

func (m *mockEngagementRepository) AddComment(ctx context.Context, c *entity.Comment) error {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, c)
	}
	return errNotImplemented
}

type mockMediaRepository struct {
	CreateFunc   func(ctx context.Context, m *entity.Media) error
	FindByIDFunc func(ctx context.Context, id string) (*entity.Media, error)
	DeleteFunc   func(ctx context.Context, id string) error
	ListAllFunc  func(ctx context.Context) ([]entity.Media, error)
	DeleteCalls  []string
}

func (m *mockMediaRepository) Create(ctx context.Context, media *entity.Media) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, media)
	}
	return errNotImplemented
}

func (m *mockMediaRepository) FindByID(ctx context.Context, id string) (*entity.Media, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockMediaRepository) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *mockMediaRepository) ListAll(ctx context.Context) ([]entity.Media, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errNotImplemented
}

type mockUserDirectory struct {
	DisplayNameFunc func(ctx context.Context, userID uint) (string, error)
}

func (m *mockUserDirectory) DisplayName(ctx context.Context, userID uint) (string, error) {
	if m.DisplayNameFunc != nil {
		return m.DisplayNameFunc(ctx, userID)
	}
	return "", errNotImplemented
}

type mockObjectStorage struct {
	DeleteFunc func(ctx context.Context, key string) error
	Keys       []string
}

func (m *mockObjectStorage) Delete(ctx context.Context, key string) error {
	m.Keys = append(m.Keys, key)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}
