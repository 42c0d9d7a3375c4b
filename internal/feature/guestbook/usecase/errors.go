// Package usecase はゲストブックのビジネスロジックを実装します。
package usecase

import (
	"growth_journal/internal/shared/apperr"
)

var (
	ErrEmptyContent   = apperr.New(apperr.ErrValidation, "content is required")
	ErrContentTooLong = apperr.New(apperr.ErrValidation, "content is too long")
	ErrMissingName    = apperr.New(apperr.ErrValidation, "name is required")
	ErrInvalidEmail   = apperr.New(apperr.ErrValidation, "a valid email is required")
	ErrUserNotFound   = apperr.New(apperr.ErrNotFound, "user not found")
)
