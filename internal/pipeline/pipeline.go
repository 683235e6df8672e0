// Package pipeline は特典付与バッチの全ステージを束ねるオーケストレータを
// 提供する。
package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/haritha-da/TravelTide-Project/internal/aggregate"
	"github.com/haritha-da/TravelTide-Project/internal/eligibility"
	"github.com/haritha-da/TravelTide-Project/internal/enrich"
	"github.com/haritha-da/TravelTide-Project/internal/model"
	"github.com/haritha-da/TravelTide-Project/internal/perk"
	"github.com/haritha-da/TravelTide-Project/internal/profile"
	"github.com/haritha-da/TravelTide-Project/internal/scoring"
)

// Config はパイプライン実行のパラメータ。
type Config struct {
	// Cutoff より後に開始したセッションのみをコホート判定に数える。
	Cutoff time.Time
	// MinSessions を厳密に超えるセッション数を持つユーザーが適格。
	MinSessions int
	// MaxConcurrent はユーザー単位集計の最大並列数。
	MaxConcurrent int
}

// Pipeline は入力スナップショットから特典付与結果を導出する。
// ステージ間に共有状態を持たず、同一スナップショットに対する実行は
// 常に同一の結果を返す。
type Pipeline struct {
	cfg      Config
	enricher *enrich.Enricher
	logger   *slog.Logger
}

// New はPipelineを生成する。
func New(cfg Config, distance enrich.DistanceFunc, logger *slog.Logger) *Pipeline {
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	return &Pipeline{
		cfg:      cfg,
		enricher: enrich.NewEnricher(distance),
		logger:   logger,
	}
}

// Run はスナップショットに対して全ステージを実行し、ユーザーID昇順の
// 付与結果を返す。
//
// ステージ構成:
//  1. 適格性判定（基準日後のセッション数で選別）
//  2. セッションのエンリッチ（トリップ・ユーザーの左外部結合）
//  3. トリップ集計（全体）とユーザー単位の集計・スコアリング（並列）
//  4. セッション時間の正規化と順位付け（母集団バリア）
//  5. 特典選択・セグメント分類・出力行の組み立て
//
// 3のユーザー単位計算はユーザー間で独立なため、semaphoreパターンで
// 最大並列数を制御しながら並列実行する。4以降は母集団全体の値が
// 必要なので、並列区間の完了を待ってから逐次実行する。
func (p *Pipeline) Run(ctx context.Context, snap *model.Snapshot) ([]*model.Assignment, error) {
	cohort := eligibility.Filter(snap.Sessions, eligibility.Config{
		Cutoff:      p.cfg.Cutoff,
		MinSessions: p.cfg.MinSessions,
	})
	p.logger.Info("コホート選別完了",
		slog.Int("eligible_users", len(cohort.UserIDs)),
		slog.Int("sessions", len(cohort.Sessions)),
	)

	users := snap.UserIndex()
	rows := p.enricher.Enrich(cohort.Sessions, users, snap.TripIndex())

	tripMetrics := aggregate.AggregateTrips(rows, cohort.UserIDs)

	userMetrics, scores, err := p.computeUserStats(ctx, rows, tripMetrics, snap.EvaluatedAt)
	if err != nil {
		return nil, err
	}

	// 母集団バリア: 全ユーザーの値が揃ってから正規化と順位付けを行う
	aggregate.ScaleSessionDurations(userMetrics)
	ranks := scoring.Rank(scores)

	assignments := make([]*model.Assignment, 0, len(cohort.UserIDs))
	for userID := range cohort.UserIDs {
		u, ok := users[userID]
		if !ok {
			// セッションはあるがユーザーレコードが欠損している場合は
			// 出力から除外する
			p.logger.Warn("ユーザーレコードが見つからないため出力から除外する",
				slog.String("user_id", userID))
			continue
		}

		um := userMetrics[userID]
		tm := tripMetrics[userID]
		r := ranks[userID]

		assignments = append(assignments, &model.Assignment{
			User:            *u,
			UserMetrics:     *um,
			TripMetrics:     *tm,
			Scores:          *scores[userID],
			Ranks:           *r,
			Perk:            perk.Assign(r),
			TravelerProfile: profile.Classify(u, tm.NumTrips, snap.EvaluatedAt),
		})
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].User.ID < assignments[j].User.ID
	})

	return assignments, nil
}

// computeUserStats はユーザー単位の集計とスコアリングを並列実行する。
// semaphoreパターンで最大並列数を制御する。
func (p *Pipeline) computeUserStats(
	ctx context.Context,
	rows []*model.EnrichedSession,
	tripMetrics map[string]*model.TripMetrics,
	evaluatedAt time.Time,
) (map[string]*model.UserMetrics, map[string]*model.ScoreSet, error) {
	byUser := make(map[string][]*model.EnrichedSession)
	for _, r := range rows {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	userMetrics := make(map[string]*model.UserMetrics, len(byUser))
	scores := make(map[string]*model.ScoreSet, len(byUser))

	// semaphoreパターンで並列数を制御
	sem := make(chan struct{}, p.cfg.MaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for userID, userRows := range byUser {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, nil, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, nil, ctx.Err()
		case sem <- struct{}{}: // semaphore取得（ブロック）
		}

		wg.Add(1)
		go func(userID string, userRows []*model.EnrichedSession) {
			defer wg.Done()
			defer func() { <-sem }() // semaphore解放

			um := aggregate.AggregateUsers(userRows)[userID]
			sc := scoring.ComputeScores(userRows, tripMetrics, evaluatedAt)[userID]

			mu.Lock()
			userMetrics[userID] = um
			scores[userID] = sc
			mu.Unlock()
		}(userID, userRows)
	}

	wg.Wait()
	return userMetrics, scores, nil
}
