// Package model はドメインモデルを定義する。
package model

import "time"

// Session は1回のブラウジングセッションを表す。
// 予約に至らなかったセッションはTripIDがnilになる。
type Session struct {
	ID                   string
	UserID               string
	TripID               *string
	SessionStart         time.Time
	SessionEnd           time.Time
	PageClicks           int
	FlightDiscount       bool
	FlightDiscountAmount *float64
	HotelDiscount        bool
	HotelDiscountAmount  *float64
	FlightBooked         bool
	HotelBooked          bool
	Cancellation         bool
}

// DurationMinutes はセッションの継続時間を分単位で返す。
func (s *Session) DurationMinutes() float64 {
	return s.SessionEnd.Sub(s.SessionStart).Minutes()
}

// EnrichedSession はセッションにトリップ情報とユーザー情報を
// 左外部結合した派生行を表す。トリップや片側のデータが存在しない
// 場合でも行は落とさず、該当フィールドをnilのままにする。
type EnrichedSession struct {
	Session
	User   *User
	Flight *Flight
	Hotel  *Hotel

	// DurationMinutes はセッション継続時間（分）。
	DurationMinutes float64
	// Nights は宿泊数。0以下の生値は1に丸める（日帰りチェックイン対策）。
	Nights int
	// DistanceKm は自宅空港から目的地空港までの大圏距離（km）。
	// フライト情報がない行ではnil。
	DistanceKm *float64
}

// HasTrip はこの行が実際のトリップを表すかどうかを返す。
// キャンセルセッションは取り消し対象のトリップを参照しているだけなので
// トリップとしては数えない。
func (e *EnrichedSession) HasTrip() bool {
	return e.TripID != nil && !e.Cancellation
}
