// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は /api/auth/register のリクエストボディを表します。
// パスワードの長さはユースケース側で検証します。
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRes は登録成功時のレスポンスです。
type RegisterRes struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}
