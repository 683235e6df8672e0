// Package eligibility はバッチ対象ユーザーの適格性判定を提供する。
package eligibility

import (
	"time"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// Config は適格性判定のパラメータ。
type Config struct {
	// Cutoff より後に開始したセッションのみを数える。
	Cutoff time.Time
	// MinSessions を厳密に超えるセッション数を持つユーザーが適格。
	// 既定値7のとき、8セッションで適格・7セッションで不適格。
	MinSessions int
}

// Result は適格性判定の結果。
type Result struct {
	// UserIDs は適格ユーザーの識別子集合。
	UserIDs map[string]bool
	// Sessions は適格ユーザーの基準日以降のセッション。
	// 以降のステージ（エンリッチ・集計・スコアリング）はこの集合を入力とする。
	Sessions []*model.Session
}

// Filter は基準日より後のセッション数が閾値を厳密に超えるユーザーを選別する。
// 副作用のない純粋なフィルタで、入力を変更しない。
func Filter(sessions []*model.Session, cfg Config) *Result {
	counts := make(map[string]int)
	var recent []*model.Session

	for _, s := range sessions {
		if !s.SessionStart.After(cfg.Cutoff) {
			continue
		}
		counts[s.UserID]++
		recent = append(recent, s)
	}

	eligible := make(map[string]bool)
	for userID, n := range counts {
		if n > cfg.MinSessions {
			eligible[userID] = true
		}
	}

	result := &Result{UserIDs: eligible}
	for _, s := range recent {
		if eligible[s.UserID] {
			result.Sessions = append(result.Sessions, s)
		}
	}

	return result
}
