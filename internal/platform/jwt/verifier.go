package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"growth_journal/internal/shared/apperr"
)

// ErrInvalidToken は署名不正・期限切れ・形式不正のトークンを表します。
var ErrInvalidToken = apperr.New(apperr.ErrAuth, "invalid token")

// ErrMissingSecret はシークレットが未設定であることを表します。
// 空のシークレットでは署名も検証も行いません。
var ErrMissingSecret = errors.New("jwt secret is not configured")

// Claims はトークンから取り出したユーザー識別情報です。
type Claims struct {
	UserID uint
	Email  string
}

// Verifier はトークンを検証してClaimsを返します。
type Verifier interface {
	Verify(token string) (Claims, error)
}

type verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier は指定されたシークレットでHS256トークンを検証するVerifierを生成します。
func NewVerifier(secret string) *verifier {
	return &verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify はトークンの署名と有効期限を検証し、subクレームのユーザーIDを返します。
// 空文字も ErrInvalidToken になるため、トークンの有無は呼び出し側で判定します。
// シークレットが空の場合はトークンに関わらず ErrMissingSecret を返します。
func (v *verifier) Verify(tokenStr string) (Claims, error) {
	if len(v.secret) == 0 {
		return Claims{}, ErrMissingSecret
	}
	if tokenStr == "" {
		return Claims{}, ErrInvalidToken
	}

	token, err := v.parser.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	// JWT numbers are decoded as float64
	sub, ok := claims["sub"].(float64)
	if !ok || sub < 1 || sub != float64(uint(sub)) {
		return Claims{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return Claims{UserID: uint(sub), Email: email}, nil
}
