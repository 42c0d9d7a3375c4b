// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// pingTimeout はDB疎通確認の上限時間です。
const pingTimeout = 2 * time.Second

// Pinger はデータベース疎通確認のインターフェースです。*sql.DB が満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealth はサービスヘルスチェック用の /healthz ハンドラーを返します。
// pinger がnilの場合はDB確認を省略します。
// DBに到達できない場合は503を返します。
func NewHealth(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		status, body := http.StatusOK, gin.H{"status": "ok", "database": "ok"}
		if pinger == nil {
			body["database"] = "skipped"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
			defer cancel()
			if err := pinger.PingContext(ctx); err != nil {
				slog.Warn("health check database ping failed", "error", err)
				status, body = http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"}
			}
		}

		if c.Request.Method == http.MethodHead {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	}
}
