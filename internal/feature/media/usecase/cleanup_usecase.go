package usecase

import (
	"context"
	"log/slog"
)

// URLProber はメディアURLがまだ参照可能かを確認します。
// alive=false はオブジェクトが消えていることが確定した場合のみ返します。
type URLProber interface {
	Probe(ctx context.Context, url string) (alive bool, err error)
}

// Limiter は外部へのリクエスト間隔を制御します。
type Limiter interface {
	Wait(ctx context.Context) error
}

// CleanupReport はクリーンアップ実行の集計です。
type CleanupReport struct {
	Checked int
	Removed int
	Kept    int
	Failed  int
}

// cleanupUsecase は参照できなくなったメディアを削除するユースケースです。
type cleanupUsecase struct {
	media   MediaRepository
	prober  URLProber
	limiter Limiter
}

// NewCleanupUsecase はcleanupUsecaseの新しいインスタンスを生成します。
func NewCleanupUsecase(media MediaRepository, prober URLProber, limiter Limiter) *cleanupUsecase {
	return &cleanupUsecase{media: media, prober: prober, limiter: limiter}
}

// Run は全メディアのURLを確認し、消えているものを削除します。
// 確認に失敗したメディアは残します。
func (u *cleanupUsecase) Run(ctx context.Context) (CleanupReport, error) {
	var report CleanupReport

	items, err := u.media.ListAll(ctx)
	if err != nil {
		return report, err
	}

	for _, m := range items {
		if err := u.limiter.Wait(ctx); err != nil {
			return report, err
		}
		report.Checked++

		alive, err := u.prober.Probe(ctx, m.URL)
		if err != nil {
			slog.Warn("media probe failed", "media_id", m.ID, "url", m.URL, "error", err)
			report.Failed++
			continue
		}
		if alive {
			report.Kept++
			continue
		}

		if err := u.media.Delete(ctx, m.ID); err != nil {
			slog.Error("failed to remove dead media", "media_id", m.ID, "error", err)
			report.Failed++
			continue
		}
		slog.Info("removed dead media", "media_id", m.ID, "url", m.URL)
		report.Removed++
	}

	return report, nil
}
