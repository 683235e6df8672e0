// Package enrich はセッションへのトリップ・ユーザー情報の結合を提供する。
package enrich

import (
	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// DistanceFunc は2地点の緯度経度から大圏距離（km）を返す関数。
// 実装はgeoパッケージが提供するが、テストでは差し替え可能。
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// Enricher はセッション行をトリップ・ユーザー情報で拡張する。
type Enricher struct {
	distance DistanceFunc
}

// NewEnricher はEnricherを生成する。
func NewEnricher(distance DistanceFunc) *Enricher {
	return &Enricher{distance: distance}
}

// Enrich は各セッションをトリップ（フライト側・ホテル側）とユーザーへ
// 左外部結合した派生行を返す。結合相手が見つからない場合も行は落とさず、
// 該当フィールドをnilのままにする。
//
// 派生フィールド:
//   - DurationMinutes: セッション終了 - 開始（分）
//   - Nights: 生値が0以下の場合は1に補正
//   - DistanceKm: 自宅空港から目的地空港への大圏距離（フライトがある行のみ）
func (e *Enricher) Enrich(
	sessions []*model.Session,
	users map[string]*model.User,
	trips map[string]*model.Trip,
) []*model.EnrichedSession {
	enriched := make([]*model.EnrichedSession, 0, len(sessions))

	for _, s := range sessions {
		row := &model.EnrichedSession{
			Session:         *s,
			DurationMinutes: s.DurationMinutes(),
			Nights:          1,
		}

		row.User = users[s.UserID]

		if s.TripID != nil {
			if trip, ok := trips[*s.TripID]; ok {
				row.Flight = trip.Flight
				row.Hotel = trip.Hotel
			}
		}

		if row.Hotel != nil && row.Hotel.Nights > 1 {
			row.Nights = row.Hotel.Nights
		}

		if row.Flight != nil && row.User != nil {
			d := e.distance(
				row.User.HomeAirportLat, row.User.HomeAirportLon,
				row.Flight.DestinationAirportLat, row.Flight.DestinationAirportLon,
			)
			row.DistanceKm = &d
		}

		enriched = append(enriched, row)
	}

	return enriched
}
