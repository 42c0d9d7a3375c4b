package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"growth_journal/internal/feature/guestbook/domain/entity"
	"growth_journal/internal/shared/apperr"
)

const (
	// maxMessageLength はメッセージ本文の最大文字数です。
	maxMessageLength = 2000
	// DefaultListLimit は件数未指定時の取得件数です。
	DefaultListLimit = 50
	// MaxListLimit は一度に取得できる件数の上限です。
	MaxListLimit = 200
)

// validate はメールアドレス形式の検証に使います。キャッシュを共有するためパッケージで1つだけ持ちます。
var validate = validator.New(validator.WithRequiredStructEnabled())

// guestbookUsecase はメッセージとメール登録を扱うユースケースです。
type guestbookUsecase struct {
	messages MessageRepository
	contacts ContactRepository
	users    UserDirectory
}

// NewGuestbookUsecase はguestbookUsecaseの新しいインスタンスを生成します。
func NewGuestbookUsecase(messages MessageRepository, contacts ContactRepository, users UserDirectory) *guestbookUsecase {
	return &guestbookUsecase{messages: messages, contacts: contacts, users: users}
}

// PostMessage はメッセージを保存します。
// name が空で userID が指定されている場合は、ユーザーの表示名を使います。
func (u *guestbookUsecase) PostMessage(ctx context.Context, content, name string, userID uint) (*entity.Message, error) {
	content = strings.TrimSpace(content)
	name = strings.TrimSpace(name)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len([]rune(content)) > maxMessageLength {
		return nil, ErrContentTooLong
	}

	if name == "" && userID != 0 {
		display, err := u.users.DisplayName(ctx, userID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		name = display
	}
	if name == "" {
		return nil, ErrMissingName
	}

	m := &entity.Message{Content: content, Name: name}
	if err := u.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages は新しい順にメッセージを返します。limit は 1..MaxListLimit に丸めます。
func (u *guestbookUsecase) ListMessages(ctx context.Context, limit int) ([]entity.Message, error) {
	if limit < 1 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	items, err := u.messages.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.Message{}
	}
	return items, nil
}

// SaveEmail はメールアドレスを登録します。既に登録済みの場合は名前だけ更新します。
func (u *guestbookUsecase) SaveEmail(ctx context.Context, name, email string) (*entity.Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, ErrMissingName
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}
	return u.contacts.Upsert(ctx, &entity.Contact{Email: email, Name: name})
}
