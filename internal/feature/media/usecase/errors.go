// Package usecase はメディアフィード・エンゲージメント・削除のビジネスロジックを実装します。
package usecase

import (
	"growth_journal/internal/shared/apperr"
)

var (
	// ErrMediaNotFound is returned when the referenced media does not exist.
	ErrMediaNotFound = apperr.New(apperr.ErrNotFound, "media not found")

	// ErrUserNotFound is returned when the user resolved from a token no longer exists.
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

	// ErrUnauthenticated is returned when a mutation requires a user but none was resolved.
	ErrUnauthenticated = apperr.New(apperr.ErrAuth, "authentication required")

	// ErrEmptyContent is returned when a comment has no content.
	ErrEmptyContent = apperr.New(apperr.ErrValidation, "content is required")

	// ErrContentTooLong is returned when a comment exceeds the maximum length.
	ErrContentTooLong = apperr.New(apperr.ErrValidation, "content is too long")

	// ErrMissingMediaID is returned when no media ID was supplied.
	ErrMissingMediaID = apperr.New(apperr.ErrValidation, "media id is required")

	// ErrMissingName is returned when an anonymous comment has no author name.
	ErrMissingName = apperr.New(apperr.ErrValidation, "name is required")

	// ErrInvalidUpload is returned when an upload record is malformed.
	ErrInvalidUpload = apperr.New(apperr.ErrValidation, "invalid upload")

	// ErrStorageDelete is returned when the external storage provider refused or failed the deletion.
	ErrStorageDelete = apperr.New(apperr.ErrExternalDependency, "failed to delete stored object")
)
