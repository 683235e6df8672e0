// Package scoring は特典傾向スコアの算出と母集団内順位付けを提供する。
package scoring

import (
	"math"
	"time"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// 各指標の重み。1スコアあたりの行ごとの加重和は0〜1に収まる。
const (
	weightRooms       = 0.5
	weightChildren    = 0.3
	weightSeniorAge   = 0.2
	weightBags        = 0.7
	weightLongHaul    = 0.3
	weightCancel      = 0.5
	weightBothBooked  = 0.5
	weightShortStay   = 0.5
	weightBigSpender  = 0.5
	weightAnyDiscount = 0.5
)

// 指標のしきい値。
const (
	seniorAgeThreshold  = 56
	roomsThreshold      = 2
	bagsThreshold       = 2
	longHaulThresholdKm = 1000
	bigSpendThresholdUS = 1000
)

// ComputeScores はエンリッチ済みセッションとトリップ集計から
// ユーザーごとの5つの特典傾向スコアを計算する。
//
// 各スコアは「セッション行ごとの加重指標和の合計 ÷ セッション行数」で、
// 小数第2位に丸める。分母はトリップ数ではなくセッション行数である点が
// 重要で、少数の条件合致セッションを持つユーザーほど高く、セッション数の
// 多いユーザーほど低くなる。この分母の選択は意図された挙動であり
// 変更してはならない。
func ComputeScores(
	rows []*model.EnrichedSession,
	tripMetrics map[string]*model.TripMetrics,
	evaluatedAt time.Time,
) map[string]*model.ScoreSet {
	byUser := make(map[string][]*model.EnrichedSession)
	for _, r := range rows {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	scores := make(map[string]*model.ScoreSet, len(byUser))
	for userID, userRows := range byUser {
		scores[userID] = scoreOneUser(userID, userRows, tripMetrics[userID], evaluatedAt)
	}

	return scores
}

// scoreOneUser は1ユーザー分のスコアを計算する。
func scoreOneUser(
	userID string,
	rows []*model.EnrichedSession,
	trips *model.TripMetrics,
	evaluatedAt time.Time,
) *model.ScoreSet {
	s := &model.ScoreSet{UserID: userID}
	if len(rows) == 0 {
		return s
	}

	var meals, bags, cancel, oneNight, discount float64

	for _, r := range rows {
		// free_hotel_meals: 複数室予約 + 子供あり + シニア年齢
		if r.Hotel != nil && r.Hotel.Rooms >= roomsThreshold {
			meals += weightRooms
		}
		if r.User != nil {
			if r.User.HasChildren {
				meals += weightChildren
			}
			if r.User.Age(evaluatedAt) >= seniorAgeThreshold {
				meals += weightSeniorAge
			}
		}

		// free_checked_bag: 手荷物2個以上 + 長距離路線
		if r.Flight != nil && r.Flight.CheckedBags >= bagsThreshold {
			bags += weightBags
		}
		if r.DistanceKm != nil && *r.DistanceKm > longHaulThresholdKm {
			bags += weightLongHaul
		}

		// no_cancellation_fee: キャンセル実績 + 両方予約
		if r.Cancellation {
			cancel += weightCancel
		}
		if r.FlightBooked && r.HotelBooked {
			cancel += weightBothBooked
		}

		// one_night_free_with_flight: 短期滞在 + 両方予約
		if r.Hotel != nil && r.Nights < 2 {
			oneNight += weightShortStay
		}
		if r.FlightBooked && r.HotelBooked {
			oneNight += weightBothBooked
		}

		// exclusive_discount: 高額支出 + 割引利用
		if trips != nil && trips.AvgAmountSpent > bigSpendThresholdUS {
			discount += weightBigSpender
		}
		if r.FlightDiscount || r.HotelDiscount {
			discount += weightAnyDiscount
		}
	}

	n := float64(len(rows))
	s.FreeHotelMeals = round2(meals / n)
	s.FreeCheckedBag = round2(bags / n)
	s.NoCancellationFee = round2(cancel / n)
	s.OneNightFreeWithFlight = round2(oneNight / n)
	s.ExclusiveDiscount = round2(discount / n)

	return s
}

// round2 は小数第2位に丸める。
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
