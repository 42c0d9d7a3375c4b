// Package metrics はPrometheusメトリクスの定義とGin用の計測ミドルウェアを提供します。
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "journal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	StorageDeletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_storage_deletions_total",
			Help: "External object deletions by provider and outcome",
		},
		[]string{"provider", "outcome"}, // "success", "failure", "rejected"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "journal_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	FeedCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_feed_cache_lookups_total",
			Help: "Feed cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)
)

// RecordStorageDeletion はストレージ削除の結果を記録します。
func RecordStorageDeletion(provider, outcome string) {
	StorageDeletions.WithLabelValues(provider, outcome).Inc()
}

// RecordFeedCache はフィードキャッシュの参照結果を記録します。
func RecordFeedCache(hit bool) {
	if hit {
		FeedCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	FeedCacheLookups.WithLabelValues("miss").Inc()
}

// Middleware はリクエスト数と処理時間を記録するGinミドルウェアを返します。
// ルートはマッチしたパターン（例: /api/media/:id）で集計し、未マッチは "unmatched" にまとめます。
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler は /metrics 用のハンドラーを返します。
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
