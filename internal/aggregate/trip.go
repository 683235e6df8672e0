package aggregate

import (
	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// AggregateTrips はエンリッチ済みセッションのうち実際のトリップを表す行
// （トリップ参照ありかつ非キャンセル）をユーザー単位に集約する。
// 同一トリップを複数セッションが参照している場合は1トリップとして数える。
//
// eligible に含まれるがトリップを1件も持たないユーザーにもゼロ値の行を
// 作り、出力母集団をUserMetricsと揃える。
func AggregateTrips(rows []*model.EnrichedSession, eligible map[string]bool) map[string]*model.TripMetrics {
	metrics := make(map[string]*model.TripMetrics, len(eligible))
	for userID := range eligible {
		metrics[userID] = &model.TripMetrics{UserID: userID}
	}

	// ユーザーごとにトリップIDで重複排除した行集合を作る
	type tripAccum struct {
		amountSpentSum float64
		hotelPriceSum  float64
		hotelCount     int
		kmSum          float64
		fareSum        float64
		flightCount    int
	}
	accums := make(map[string]*tripAccum)
	seenTrips := make(map[string]map[string]bool)

	for _, r := range rows {
		if !r.HasTrip() {
			continue
		}

		m, ok := metrics[r.UserID]
		if !ok {
			// 適格集合に含まれないユーザーの行は対象外
			continue
		}

		if seenTrips[r.UserID] == nil {
			seenTrips[r.UserID] = make(map[string]bool)
		}
		if seenTrips[r.UserID][*r.TripID] {
			continue
		}
		seenTrips[r.UserID][*r.TripID] = true

		acc := accums[r.UserID]
		if acc == nil {
			acc = &tripAccum{}
			accums[r.UserID] = acc
		}

		m.NumTrips++

		var flightCost, hotelCost float64

		if r.Flight != nil {
			flightCost = r.Flight.BaseFareUSD * float64(r.Flight.SeatCount)
			m.TotalCheckedBags += r.Flight.CheckedBags

			// 割引額の欠損は0として扱う
			m.MoneySpentFlight += flightCost * (1 - floatOrZero(r.FlightDiscountAmount))

			acc.fareSum += r.Flight.BaseFareUSD
			acc.flightCount++
			if r.DistanceKm != nil {
				acc.kmSum += *r.DistanceKm
			}
		}

		if r.Hotel != nil {
			// 泊数はエンリッチ時に1以上へ補正済み
			hotelCost = r.Hotel.PricePerRoomNightUSD * float64(r.Hotel.Rooms) * float64(r.Nights)
			m.MoneySpentHotel += hotelCost * (1 - floatOrZero(r.HotelDiscountAmount))

			acc.hotelPriceSum += r.Hotel.PricePerRoomNightUSD
			acc.hotelCount++
		}

		acc.amountSpentSum += flightCost + hotelCost
	}

	for userID, m := range metrics {
		acc := accums[userID]
		if acc == nil {
			continue
		}
		if m.NumTrips > 0 {
			m.AvgAmountSpent = acc.amountSpentSum / float64(m.NumTrips)
		}
		if acc.hotelCount > 0 {
			m.AvgHotelPricePerRoomNightUSD = acc.hotelPriceSum / float64(acc.hotelCount)
		}
		if acc.flightCount > 0 {
			m.AvgKmFlown = acc.kmSum / float64(acc.flightCount)
			m.ScaledFareUSD = acc.fareSum / float64(acc.flightCount)
		}
	}

	return metrics
}
