package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"growth_journal/internal/feature/media/domain/entity"
	"growth_journal/internal/shared/apperr"
)

// UploadInput はストレージへアップロード済みのオブジェクトの情報です。
type UploadInput struct {
	URL       string
	Key       string
	Type      string
	FileType  string
	Size      int64
	Thumbnail string
	Duration  *float64
	Name      string
}

// uploadUsecase はアップロード済みメディアの登録を扱うユースケースです。
type uploadUsecase struct {
	media MediaRepository
	users UserDirectory
}

// NewUploadUsecase はuploadUsecaseの新しいインスタンスを生成します。
func NewUploadUsecase(media MediaRepository, users UserDirectory) *uploadUsecase {
	return &uploadUsecase{media: media, users: users}
}

// Register はアップロード済みのオブジェクトをメディアとして登録します。
// Name が空の場合はアップロードしたユーザーの表示名を使います。
func (u *uploadUsecase) Register(ctx context.Context, in UploadInput, userID uint) (*entity.Media, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	m, err := buildMedia(in)
	if err != nil {
		return nil, err
	}

	if m.Name == "" {
		display, err := u.users.DisplayName(ctx, userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		m.Name = display
	}

	if err := u.media.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// buildMedia は入力を検証してエンティティに変換します。duration は動画のみ指定できます。
func buildMedia(in UploadInput) (*entity.Media, error) {
	raw := strings.TrimSpace(in.URL)
	if raw == "" {
		return nil, ErrInvalidUpload.WithDetail("url is required")
	}
	if parsed, err := url.Parse(raw); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrInvalidUpload.WithDetail("url must be absolute")
	}

	typ := entity.MediaType(strings.ToLower(strings.TrimSpace(in.Type)))
	if !typ.Valid() {
		return nil, ErrInvalidUpload.WithDetail("type must be image or video")
	}
	if in.Size < 0 {
		return nil, ErrInvalidUpload.WithDetail("size must not be negative")
	}

	m := &entity.Media{
		URL:        raw,
		Name:       strings.TrimSpace(in.Name),
		Type:       typ,
		FileType:   in.FileType,
		Size:       in.Size,
		Thumbnail:  in.Thumbnail,
		StorageKey: strings.TrimSpace(in.Key),
	}

	switch typ {
	case entity.TypeVideo:
		d := 0.0
		if in.Duration != nil {
			if *in.Duration < 0 {
				return nil, ErrInvalidUpload.WithDetail("duration must not be negative")
			}
			d = *in.Duration
		}
		m.Video = &entity.VideoDetails{Duration: d}
	case entity.TypeImage:
		if in.Duration != nil {
			return nil, ErrInvalidUpload.WithDetail("duration is only valid for video")
		}
	}

	return m, nil
}
