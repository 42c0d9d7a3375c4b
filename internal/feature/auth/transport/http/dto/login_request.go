package dto

// LoginReq は /api/auth/login のリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRes はログイン成功時のレスポンスです。トークンはCookieにも設定されます。
type LoginRes struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserRes `json:"user"`
}
