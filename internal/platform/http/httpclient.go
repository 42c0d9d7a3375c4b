// Package http は外部HTTP呼び出し用のクライアントとURL確認を提供します。
package http

import (
	"errors"
	"net"
	"net/http"
	"time"
)

// maxRedirects はCDNのリダイレクトを追う上限です。
const maxRedirects = 5

var errTooManyRedirects = errors.New("too many redirects")

// NewHTTPClient はストレージAPIとメディアURL確認で共有するクライアントを作成します。
// timeout はリクエスト全体の上限で、0以下の場合は10秒です。
// http.DefaultClient はタイムアウトがないため使用しません。
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   8, // クリーンアップは同じCDNホストへ連続して問い合わせる
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: t,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errTooManyRedirects
			}
			return nil
		},
	}
}
