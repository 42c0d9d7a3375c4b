package usecase

import (
	"context"
	"strings"

	"growth_journal/internal/feature/media/domain/entity"
)

// Sort はフィードの並び順です。
type Sort string

const (
	SortRecent Sort = "recent"
	SortOldest Sort = "oldest"
	SortLikes  Sort = "likes"
)

// TypeFilter はフィードの種別フィルタです。
type TypeFilter string

const (
	FilterAll    TypeFilter = "all"
	FilterImages TypeFilter = "images"
	FilterVideos TypeFilter = "videos"
)

const (
	// DefaultPageSize はページサイズ未指定時の件数です。
	DefaultPageSize = 10
	// MaxPageSize はページサイズの上限です。
	MaxPageSize = 50
)

// FeedQuery はフィード取得の条件です。Page は1始まりです。
type FeedQuery struct {
	Sort     Sort
	Type     TypeFilter
	Search   string
	Page     int
	PageSize int
}

// Normalize は未知の値や範囲外の値をデフォルトに置き換えたクエリを返します。
func (q FeedQuery) Normalize() FeedQuery {
	switch q.Sort {
	case SortRecent, SortOldest, SortLikes:
	default:
		q.Sort = SortRecent
	}
	switch q.Type {
	case FilterAll, FilterImages, FilterVideos:
	default:
		q.Type = FilterAll
	}
	q.Search = strings.TrimSpace(q.Search)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset は (Page-1)*PageSize です。
func (q FeedQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// MediaType はフィルタに対応するメディア種別を返します。FilterAll の場合は false です。
func (q FeedQuery) MediaType() (entity.MediaType, bool) {
	switch q.Type {
	case FilterImages:
		return entity.TypeImage, true
	case FilterVideos:
		return entity.TypeVideo, true
	default:
		return "", false
	}
}

// feedUsecase はフィード組み立てのユースケースです。
type feedUsecase struct {
	feed FeedRepository
}

// NewFeedUsecase はfeedUsecaseの新しいインスタンスを生成します。
func NewFeedUsecase(feed FeedRepository) *feedUsecase {
	return &feedUsecase{feed: feed}
}

// GetFeed はクエリを正規化してフィードの1ページを返します。
// 最終ページを超えた場合は空のスライスを返します。
func (u *feedUsecase) GetFeed(ctx context.Context, q FeedQuery) ([]entity.Media, error) {
	items, err := u.feed.Feed(ctx, q.Normalize())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.Media{}
	}
	return items, nil
}
