// Package uploadthing provides a client for the UploadThing file storage API.
package uploadthing

import "time"

// ProviderName は metrics のラベルに使う名前です。
const ProviderName = "uploadthing"

// Config holds configuration for the UploadThing API client.
type Config struct {
	Secret  string        // API secret sent in the x-uploadthing-api-key header
	BaseURL string        // Base URL for the API (e.g., "https://api.uploadthing.com/v6")
	Timeout time.Duration // HTTP request timeout
}
