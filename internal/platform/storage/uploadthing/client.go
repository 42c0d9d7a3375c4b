package uploadthing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"growth_journal/internal/feature/media/usecase"
	"growth_journal/internal/platform/metrics"
	"growth_journal/internal/platform/storage/uploadthing/dto"
)

// apiKeyHeader はシークレットを送るヘッダー名です。
const apiKeyHeader = "x-uploadthing-api-key"

// ErrNotConfigured はシークレットが設定されていないことを表します。
var ErrNotConfigured = errors.New("uploadthing secret not configured")

// Client はUploadThing APIでオブジェクトを削除するObjectStorage実装です。
// 呼び出しはサーキットブレーカーで保護され、失敗してもリトライしません。
type Client struct {
	cfg    Config
	client *http.Client
	cb     *gobreaker.CircuitBreaker[struct{}]
}

// ClientがObjectStorageを実装していることをコンパイル時に検証します。
var _ usecase.ObjectStorage = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// 連続5回失敗するとサーキットが開き、30秒間は即座に失敗を返します。
func NewClient(cfg Config, client *http.Client) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:    cfg,
		client: client,
		cb:     newBreaker("uploadthing-delete"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker[struct{}] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
}

// Delete は指定キーのファイルを削除します。
// レスポンスJSONの success が true の場合のみ成功とみなします。
func (c *Client) Delete(ctx context.Context, key string) error {
	if c.cfg.Secret == "" {
		return ErrNotConfigured
	}

	_, err := c.cb.Execute(func() (struct{}, error) {
		return struct{}{}, c.deleteFiles(ctx, key)
	})
	switch {
	case err == nil:
		metrics.RecordStorageDeletion(ProviderName, "success")
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordStorageDeletion(ProviderName, "rejected")
	default:
		metrics.RecordStorageDeletion(ProviderName, "failure")
	}
	return err
}

func (c *Client) deleteFiles(ctx context.Context, key string) error {
	payload, err := json.Marshal(dto.DeleteFilesRequest{FileKeys: []string{key}})
	if err != nil {
		return err
	}

	u := fmt.Sprintf("%s/deleteFiles", c.cfg.BaseURL)

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.cfg.Secret)

	// リクエストを実行
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("uploadthing http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.DeleteFilesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode uploadthing response: %w", err)
	}
	if !body.Success {
		if body.Error != "" {
			return fmt.Errorf("uploadthing: %s", body.Error)
		}
		return errors.New("uploadthing: deletion not successful")
	}
	return nil
}
