// Package model はドメインモデルを定義する。
package model

// Perk はユーザーに付与するロイヤリティ特典を表す。
type Perk string

const (
	// PerkFreeHotelMeals はホテル食事無料特典。
	PerkFreeHotelMeals Perk = "free_hotel_meals"
	// PerkFreeCheckedBag は受託手荷物無料特典。
	PerkFreeCheckedBag Perk = "free_checked_bag"
	// PerkNoCancellationFee はキャンセル料無料特典。
	PerkNoCancellationFee Perk = "no_cancellation_fee"
	// PerkOneNightFreeWithFlight はフライト同時予約で1泊無料の特典。
	PerkOneNightFreeWithFlight Perk = "one_night_free_with_flight"
	// PerkExclusiveDiscount は限定割引特典。タイブレーク時のフォールバック先。
	PerkExclusiveDiscount Perk = "exclusive_discount"
)

// Perks は5種類の特典を選択時の優先順で並べたリスト。
var Perks = []Perk{
	PerkFreeHotelMeals,
	PerkFreeCheckedBag,
	PerkNoCancellationFee,
	PerkOneNightFreeWithFlight,
	PerkExclusiveDiscount,
}

// ScoreSet はユーザー1人分の5つの特典傾向スコアを表す。
// 各スコアはセッション行ごとの0〜1の加重指標和をセッション行数で
// 平均した値（小数第2位丸め）。
type ScoreSet struct {
	UserID string

	FreeHotelMeals         float64
	FreeCheckedBag         float64
	NoCancellationFee      float64
	OneNightFreeWithFlight float64
	ExclusiveDiscount      float64
}

// Score は指定した特典次元のスコア値を返す。
func (s *ScoreSet) Score(p Perk) float64 {
	switch p {
	case PerkFreeHotelMeals:
		return s.FreeHotelMeals
	case PerkFreeCheckedBag:
		return s.FreeCheckedBag
	case PerkNoCancellationFee:
		return s.NoCancellationFee
	case PerkOneNightFreeWithFlight:
		return s.OneNightFreeWithFlight
	case PerkExclusiveDiscount:
		return s.ExclusiveDiscount
	}
	return 0
}

// RankSet はユーザー1人分の5次元それぞれの母集団内順位を表す。
// 順位は1が最良。同点は同順位を共有し、次の異なる値は同点数ぶん飛ぶ
// （competition ranking）。
type RankSet struct {
	UserID string

	FreeHotelMeals         int
	FreeCheckedBag         int
	NoCancellationFee      int
	OneNightFreeWithFlight int
	ExclusiveDiscount      int
}

// Rank は指定した特典次元の順位を返す。
func (r *RankSet) Rank(p Perk) int {
	switch p {
	case PerkFreeHotelMeals:
		return r.FreeHotelMeals
	case PerkFreeCheckedBag:
		return r.FreeCheckedBag
	case PerkNoCancellationFee:
		return r.NoCancellationFee
	case PerkOneNightFreeWithFlight:
		return r.OneNightFreeWithFlight
	case PerkExclusiveDiscount:
		return r.ExclusiveDiscount
	}
	return 0
}
