// Package model はドメインモデルを定義する。
package model

import "time"

// Snapshot はバッチ1回分の入力データ一式を表す。
// 4つの生レコード集合と評価基準時刻を固定した上でパイプラインを
// 実行するため、同一スナップショットに対する再実行は常に同一の
// 出力を生成する。
type Snapshot struct {
	Users    []*User
	Sessions []*Session
	Flights  []*Flight
	Hotels   []*Hotel

	// EvaluatedAt は年齢計算などの評価基準時刻。
	EvaluatedAt time.Time
}

// TripIndex はトリップIDをキーとしたフライト/ホテルの索引を構築する。
func (s *Snapshot) TripIndex() map[string]*Trip {
	trips := make(map[string]*Trip)
	for _, f := range s.Flights {
		t, ok := trips[f.TripID]
		if !ok {
			t = &Trip{TripID: f.TripID}
			trips[f.TripID] = t
		}
		t.Flight = f
	}
	for _, h := range s.Hotels {
		t, ok := trips[h.TripID]
		if !ok {
			t = &Trip{TripID: h.TripID}
			trips[h.TripID] = t
		}
		t.Hotel = h
	}
	return trips
}

// UserIndex はユーザーIDをキーとしたユーザーの索引を構築する。
func (s *Snapshot) UserIndex() map[string]*User {
	users := make(map[string]*User, len(s.Users))
	for _, u := range s.Users {
		users[u.ID] = u
	}
	return users
}
