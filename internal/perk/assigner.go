// Package perk は順位集合からの特典の決定的な選択を提供する。
package perk

import (
	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// rule は1つの特典の選択条件。上から順に評価し、最初に合致した
// 特典が選ばれる（first-match-wins）。タイブレーク順を監査・テスト
// しやすいよう、ネストした条件分岐ではなくルール表で表現する。
type rule struct {
	perk  model.Perk
	match func(*model.RankSet) bool
}

// rules は優先順に並んだ選択ルール。各ルールは対象特典の順位が
// 他の4次元すべてより厳密に小さい（良い）場合にのみ合致する。
var rules = []rule{
	{model.PerkFreeHotelMeals, strictSoleMinimum(model.PerkFreeHotelMeals)},
	{model.PerkFreeCheckedBag, strictSoleMinimum(model.PerkFreeCheckedBag)},
	{model.PerkNoCancellationFee, strictSoleMinimum(model.PerkNoCancellationFee)},
	{model.PerkOneNightFreeWithFlight, strictSoleMinimum(model.PerkOneNightFreeWithFlight)},
}

// Assign は5つの順位から特典を1つ選択する。
//
// 優先順（free_hotel_meals → free_checked_bag → no_cancellation_fee →
// one_night_free_with_flight）に厳密単独最小の判定を行い、最初に合致
// した特典を返す。どれも合致しない場合はexclusive_discountになる。
//
// 2つ以上の次元が最良順位で同点の場合、厳密単独最小の判定はひとつも
// 成立せず、その次元が実際の最良かどうかに関わらずexclusive_discountへ
// フォールバックする。この挙動は意図されたものであり「修正」しないこと。
func Assign(ranks *model.RankSet) model.Perk {
	for _, r := range rules {
		if r.match(ranks) {
			return r.perk
		}
	}
	return model.PerkExclusiveDiscount
}

// strictSoleMinimum は指定次元の順位が他の4次元すべてより厳密に
// 小さいときにtrueを返す述語を生成する。
func strictSoleMinimum(target model.Perk) func(*model.RankSet) bool {
	return func(ranks *model.RankSet) bool {
		own := ranks.Rank(target)
		for _, other := range model.Perks {
			if other == target {
				continue
			}
			if own >= ranks.Rank(other) {
				return false
			}
		}
		return true
	}
}
