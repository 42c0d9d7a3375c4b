package dto

import "growth_journal/internal/feature/auth/domain/entity"

// UserRes はクライアントに公開するユーザー情報です。パスワードハッシュは含みません。
type UserRes struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MessageRes はメッセージのみのレスポンスです。
type MessageRes struct {
	Message string `json:"message"`
}

// ErrorRes は認証エンドポイントのエラーレスポンスです。
type ErrorRes struct {
	Error string `json:"error"`
}

// ToUserRes はユーザーエンティティをレスポンス形式に変換します。
func ToUserRes(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Name: u.Name, Email: u.Email}
}
