// Package storage は外部ストレージを使わない構成向けのObjectStorage実装を提供します。
package storage

import (
	"context"
	"log/slog"
)

// Noop は削除要求を記録するだけのObjectStorageです。
type Noop struct{}

// Delete は常に成功します。
func (Noop) Delete(_ context.Context, key string) error {
	slog.Debug("storage disabled, skipping object deletion", "key", key)
	return nil
}
