// Package batch は特典付与パイプラインの定期実行ジョブを提供する。
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/haritha-da/TravelTide-Project/internal/metrics"
	"github.com/haritha-da/TravelTide-Project/internal/model"
	"github.com/haritha-da/TravelTide-Project/internal/repository"
)

// PipelineRunner は特典付与パイプラインの実行インターフェース。
// テスト時にモックに差し替え可能。
type PipelineRunner interface {
	Run(ctx context.Context, snap *model.Snapshot) ([]*model.Assignment, error)
}

// BatchConfig はバッチジョブの設定パラメータ。
// 環境変数から設定可能。
type BatchConfig struct {
	// Interval はバッチジョブの実行間隔（デフォルト: 24時間）。
	Interval time.Duration
}

// DefaultBatchConfig はデフォルトのバッチジョブ設定を返す。
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Interval: 24 * time.Hour,
	}
}

// BatchJob は特典付与のバッチジョブ。
// 定期的に入力スナップショットを読み出し、パイプラインを実行して
// 出力テーブルを置き換える。
type BatchJob struct {
	userRepo       repository.UserRepository
	sessionRepo    repository.SessionRepository
	tripRepo       repository.TripRepository
	assignmentRepo repository.AssignmentRepository
	pipeline       PipelineRunner
	collector      metrics.MetricsCollector
	logger         *slog.Logger
	config         BatchConfig

	// now はテストで固定できる現在時刻の供給源。
	now func() time.Time
}

// NewBatchJob はBatchJobの新しいインスタンスを生成する。
func NewBatchJob(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	tripRepo repository.TripRepository,
	assignmentRepo repository.AssignmentRepository,
	pipeline PipelineRunner,
	collector metrics.MetricsCollector,
	logger *slog.Logger,
	config BatchConfig,
) *BatchJob {
	return &BatchJob{
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		tripRepo:       tripRepo,
		assignmentRepo: assignmentRepo,
		pipeline:       pipeline,
		collector:      collector,
		logger:         logger,
		config:         config,
		now:            time.Now,
	}
}

// Start はバッチジョブをティッカーで定期実行する。
// コンテキストがキャンセルされるまで実行を継続する。
func (b *BatchJob) Start(ctx context.Context) {
	ticker := time.NewTicker(b.config.Interval)
	defer ticker.Stop()

	b.logger.Info("特典付与バッチジョブを開始しました",
		slog.Duration("interval", b.config.Interval),
	)

	// 起動直後に1回実行
	if err := b.RunOnce(ctx); err != nil {
		b.logger.Error("特典付与バッチサイクルの実行に失敗しました",
			slog.String("error", err.Error()),
		)
	}

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("特典付与バッチジョブを停止しました")
			return
		case <-ticker.C:
			if err := b.RunOnce(ctx); err != nil {
				b.logger.Error("特典付与バッチサイクルの実行に失敗しました",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// RunOnce は1回のバッチサイクルを実行する。
// 入力4リレーションを読み出してスナップショットを固定し、パイプラインの
// 結果で出力テーブルを置き換える。
func (b *BatchJob) RunOnce(ctx context.Context) error {
	start := b.now()
	runID := uuid.NewString()

	logger := b.logger.With(slog.String("run_id", runID))
	logger.Info("特典付与バッチサイクルを開始します")

	snap, err := b.loadSnapshot(ctx)
	if err != nil {
		b.collector.RecordRunFailure("load")
		return fmt.Errorf("入力スナップショットの読み出しに失敗しました: %w", err)
	}

	assignments, err := b.pipeline.Run(ctx, snap)
	if err != nil {
		b.collector.RecordRunFailure("pipeline")
		return fmt.Errorf("パイプラインの実行に失敗しました: %w", err)
	}

	if err := b.assignmentRepo.ReplaceAll(ctx, assignments); err != nil {
		b.collector.RecordRunFailure("store")
		return fmt.Errorf("付与結果の書き込みに失敗しました: %w", err)
	}

	duration := b.now().Sub(start)
	b.recordRunMetrics(assignments, duration)

	logger.Info("特典付与バッチサイクルが完了しました",
		slog.Int("users", len(snap.Users)),
		slog.Int("sessions", len(snap.Sessions)),
		slog.Int("eligible_users", len(assignments)),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)

	return nil
}

// loadSnapshot は入力4リレーションを読み出し、評価基準時刻を固定した
// スナップショットを構築する。
func (b *BatchJob) loadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	users, err := b.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}

	sessions, err := b.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("セッションの取得に失敗しました: %w", err)
	}

	flights, err := b.tripRepo.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("フライトの取得に失敗しました: %w", err)
	}

	hotels, err := b.tripRepo.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("ホテルの取得に失敗しました: %w", err)
	}

	return &model.Snapshot{
		Users:       users,
		Sessions:    sessions,
		Flights:     flights,
		Hotels:      hotels,
		EvaluatedAt: b.now(),
	}, nil
}

// recordRunMetrics は成功した1サイクル分のメトリクスを記録する。
func (b *BatchJob) recordRunMetrics(assignments []*model.Assignment, duration time.Duration) {
	b.collector.RecordRunSuccess()
	b.collector.RecordRunDuration(duration)
	b.collector.SetEligibleUsers(len(assignments))
	b.collector.RecordRowsWritten(len(assignments))

	perkCounts := make(map[model.Perk]int)
	for _, a := range assignments {
		perkCounts[a.Perk]++
	}
	for perk, count := range perkCounts {
		b.collector.RecordPerkAssigned(string(perk), count)
	}
}
