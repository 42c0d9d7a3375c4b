package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// deleteUsecase はメディア削除のユースケースです。
type deleteUsecase struct {
	media   MediaRepository
	storage ObjectStorage
}

// NewDeleteUsecase はdeleteUsecaseの新しいインスタンスを生成します。
func NewDeleteUsecase(media MediaRepository, storage ObjectStorage) *deleteUsecase {
	return &deleteUsecase{media: media, storage: storage}
}

// Delete はメディアを削除します。
// ストレージキーを持つ場合は先に外部ストレージから削除し、成功した場合のみローカルのレコードを削除します。
// 外部削除に失敗した場合はリトライせず ErrStorageDelete を返し、レコードは残ります。
func (u *deleteUsecase) Delete(ctx context.Context, mediaID string) error {
	if strings.TrimSpace(mediaID) == "" {
		return ErrMissingMediaID
	}

	m, err := u.media.FindByID(ctx, mediaID)
	if err != nil {
		return err
	}

	if m.StorageKey != "" {
		if err := u.storage.Delete(ctx, m.StorageKey); err != nil {
			slog.Error("external storage deletion failed", "media_id", mediaID, "key", m.StorageKey, "error", err)
			return fmt.Errorf("%w: %w", ErrStorageDelete, err)
		}
	}

	if err := u.media.Delete(ctx, mediaID); err != nil {
		return err
	}
	slog.Info("media deleted", "media_id", mediaID)
	return nil
}
