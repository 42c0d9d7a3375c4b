package dto

// DeleteFilesRequest は deleteFiles エンドポイントのリクエストボディです。
type DeleteFilesRequest struct {
	FileKeys []string `json:"fileKeys"`
}

// DeleteFilesResponse は deleteFiles エンドポイントのレスポンスボディです。
type DeleteFilesResponse struct {
	Success      bool   `json:"success"`
	DeletedCount int    `json:"deletedCount,omitempty"`
	Error        string `json:"error,omitempty"`
}
