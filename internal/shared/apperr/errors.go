// Package apperr はアプリケーション全体で共有するエラー分類を定義します。
//
// 各フィーチャーの番兵エラーはここで定義した分類を %w でラップし、
// トランスポート層は Status でHTTPステータスに変換します。
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation は入力の欠落・形式不正を表します（400）。
	ErrValidation = errors.New("validation error")

	// ErrAuth は認証情報の不正、未確認ユーザー、トークン不正・欠落を表します（401）。
	ErrAuth = errors.New("authentication error")

	// ErrNotFound は参照先エンティティが存在しないことを表します（404）。
	ErrNotFound = errors.New("not found")

	// ErrConflict は一意制約違反を表します（409）。
	ErrConflict = errors.New("conflict")

	// ErrExternalDependency は外部サービス（オブジェクトストレージ等）の失敗を表します（502）。
	ErrExternalDependency = errors.New("external dependency error")
)

// Status はエラー分類に対応するHTTPステータスコードを返します。
// 分類に該当しないエラーは500になります。
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrExternalDependency):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error はクライアントに返してよい文言を持つ番兵エラーです。
// Error() は "分類: 文言" を返し、errors.Is で分類にも一致します。
type Error struct {
	category error
	msg      string
}

// New は分類 category に属する番兵エラーを生成します。
func New(category error, msg string) *Error {
	return &Error{category: category, msg: msg}
}

func (e *Error) Error() string { return e.category.Error() + ": " + e.msg }

func (e *Error) Unwrap() error { return e.category }

// Public はクライアント向けの文言を返します。
func (e *Error) Public() string { return e.msg }

// WithDetail は文言に詳細を付け加えたエラーを返します。errors.Is では元の番兵に一致します。
// 詳細はクライアントにも返るため、入力の検証結果など公開してよい内容に限ります。
func (e *Error) WithDetail(detail string) error {
	return &detailError{base: e, detail: detail}
}

type detailError struct {
	base   *Error
	detail string
}

func (d *detailError) Error() string { return d.base.Error() + ": " + d.detail }
func (d *detailError) Unwrap() error { return d.base }
func (d *detailError) Public() string { return d.base.msg + ": " + d.detail }

type publicError interface {
	error
	Public() string
}

// PublicMessage はクライアントに返してよいエラーメッセージを返します。
// チェーン上で最初に見つかった番兵エラーの文言だけを返し、ラップされた下位のエラー文字列は含めません。
// 番兵のない分類済みエラーは分類名、分類外のエラーは fallback になります。
func PublicMessage(err error, fallback string) string {
	if Status(err) == http.StatusInternalServerError {
		return fallback
	}
	var pub publicError
	if errors.As(err, &pub) {
		return pub.Public()
	}
	for _, c := range []error{ErrValidation, ErrAuth, ErrNotFound, ErrConflict, ErrExternalDependency} {
		if errors.Is(err, c) {
			return c.Error()
		}
	}
	return fallback
}
