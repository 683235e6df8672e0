// Package aggregate はエンリッチ済みセッションのユーザー単位・トリップ単位の
// 集計を提供する。
package aggregate

import (
	"math"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// AggregateUsers はエンリッチ済みセッションをユーザー単位に集約し、
// ユーザーIDをキーとしたUserMetricsを返す。
//
// 比率系の指標は分母が0のとき計算せずnil（未定義）とする。
// 0除算でpanicさせることも、Infを黙って流すこともしない。
// ScaledSessionDurationはこの段階では計算されない（全ユーザーの平均が
// 揃った後にScaleSessionDurationsで埋める2パス目の値）。
func AggregateUsers(rows []*model.EnrichedSession) map[string]*model.UserMetrics {
	byUser := groupByUser(rows)

	metrics := make(map[string]*model.UserMetrics, len(byUser))
	for userID, userRows := range byUser {
		metrics[userID] = aggregateOneUser(userID, userRows)
	}

	return metrics
}

// aggregateOneUser は1ユーザー分のセッション行を集計する。
func aggregateOneUser(userID string, rows []*model.EnrichedSession) *model.UserMetrics {
	m := &model.UserMetrics{UserID: userID}

	seen := make(map[string]bool)
	var totalDuration float64
	var flightDiscountSum, hotelDiscountSum float64
	var flightDiscountCount, hotelDiscountCount int
	var bothBooked, eitherBooked int
	var totalBags int
	var discountSpend, distanceSum float64

	for _, r := range rows {
		if !seen[r.ID] {
			seen[r.ID] = true
			m.NumSessions++
		}
		m.NumClicks += r.PageClicks
		totalDuration += r.DurationMinutes

		if r.FlightBooked {
			m.TotalFlightBookings++
		}
		if r.HotelBooked {
			m.TotalHotelBookings++
		}
		if r.Cancellation {
			m.TotalCancellations++
		}

		if r.FlightBooked && r.HotelBooked {
			bothBooked++
		}
		if r.FlightBooked || r.HotelBooked {
			eitherBooked++
		}

		// 割引額の欠損は0として平均に含める
		flightDiscountSum += floatOrZero(r.FlightDiscountAmount)
		hotelDiscountSum += floatOrZero(r.HotelDiscountAmount)

		if r.FlightDiscount {
			flightDiscountCount++
		}
		if r.HotelDiscount {
			hotelDiscountCount++
		}

		if r.Flight != nil {
			totalBags += r.Flight.CheckedBags
			discountSpend += floatOrZero(r.FlightDiscountAmount) * r.Flight.BaseFareUSD
		}
		if r.DistanceKm != nil {
			distanceSum += *r.DistanceKm
		}
	}

	n := float64(len(rows))
	if n > 0 {
		m.AvgSessionDurationMins = round2(totalDuration / n)
		m.AvgFlightDiscountPercent = flightDiscountSum / n
		m.AvgHotelDiscountPercent = hotelDiscountSum / n
		m.DiscountFlightProportion = float64(flightDiscountCount) / n
		m.DiscountHotelProportion = float64(hotelDiscountCount) / n
		m.AvgBags = float64(totalBags) / n
	}

	// 一度も予約のないユーザーでは予約率・キャンセル率は未定義
	if eitherBooked > 0 {
		br := float64(bothBooked) / float64(eitherBooked)
		cr := float64(m.TotalCancellations) / float64(eitherBooked)
		m.BookingRate = &br
		m.CancellationRate = &cr
	}

	// 距離合計0のADSは未定義（Infにしない）
	if distanceSum > 0 {
		ads := discountSpend / distanceSum
		m.ADS = &ads
	}

	m.ActivityType = activityType(m.TotalFlightBookings, m.TotalHotelBookings)

	return m
}

// ScaleSessionDurations は全ユーザーの平均セッション時間を母集団min-maxで
// 0〜1に正規化し、各UserMetricsのScaledSessionDurationを埋める。
// 全ユーザー分のAvgSessionDurationMinsが確定した後に呼ぶこと。
// 母集団の最小値と最大値が一致する場合は全員0とする。
func ScaleSessionDurations(metrics map[string]*model.UserMetrics) {
	if len(metrics) == 0 {
		return
	}

	min := math.Inf(1)
	max := math.Inf(-1)
	for _, m := range metrics {
		if m.AvgSessionDurationMins < min {
			min = m.AvgSessionDurationMins
		}
		if m.AvgSessionDurationMins > max {
			max = m.AvgSessionDurationMins
		}
	}

	span := max - min
	for _, m := range metrics {
		if span > 0 {
			m.ScaledSessionDuration = (m.AvgSessionDurationMins - min) / span
		} else {
			m.ScaledSessionDuration = 0
		}
	}
}

// activityType は予約実績から行動種別ラベルを決定する。
func activityType(flightBookings, hotelBookings int) model.ActivityType {
	switch {
	case flightBookings > 0 && hotelBookings == 0:
		return model.ActivityFlightOnly
	case flightBookings > 0 && hotelBookings > 0:
		return model.ActivityFlightWithHotel
	case hotelBookings > 0:
		return model.ActivityHotelOnly
	default:
		return model.ActivityNone
	}
}

// groupByUser はセッション行をユーザーIDでグループ化する。
func groupByUser(rows []*model.EnrichedSession) map[string][]*model.EnrichedSession {
	byUser := make(map[string][]*model.EnrichedSession)
	for _, r := range rows {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}
	return byUser
}

// floatOrZero はnilを0として扱う。
func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// round2 は小数第2位に丸める。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
