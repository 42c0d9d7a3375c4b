package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// URLProber はHTTPリクエストでメディアURLの存在を確認します。
type URLProber struct {
	client *http.Client
}

// NewURLProber は指定クライアントでURLProberを生成します。
func NewURLProber(client *http.Client) *URLProber {
	return &URLProber{client: client}
}

// Probe はHEADリクエストでURLを確認します。
// 404と410の場合のみ alive=false を返します。5xxは一時的な障害とみなしエラーを返します。
// HEADが許可されていないサーバーには先頭1バイトのGETで再確認します。
func (p *URLProber) Probe(ctx context.Context, url string) (bool, error) {
	status, err := p.do(ctx, http.MethodHead, url)
	if err != nil {
		return false, err
	}
	if status == http.StatusMethodNotAllowed {
		if status, err = p.do(ctx, http.MethodGet, url); err != nil {
			return false, err
		}
	}

	switch {
	case status == http.StatusNotFound || status == http.StatusGone:
		return false, nil
	case status >= 500:
		return false, fmt.Errorf("probe %s: http %d", url, status)
	default:
		return true, nil
	}
}

func (p *URLProber) do(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}

	res, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
	return res.StatusCode, nil
}
