package scoring

import (
	"sort"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// Rank は適格母集団全体のスコア集合から、5つの次元それぞれについて
// 降順の順位を割り当てる。最高スコアが順位1。
//
// 順位はcompetition ranking: 同点は同じ順位を共有し、次の異なる値の
// 順位は同点者の数だけ飛ぶ（例: 1位が2人なら次は3位）。順位は
// 「自分より厳密に高いスコアの数 + 1」に等しい。
//
// 全ユーザーのスコアが確定してから呼ぶこと（母集団全体に対する
// グローバルバリア）。
func Rank(scores map[string]*model.ScoreSet) map[string]*model.RankSet {
	ranks := make(map[string]*model.RankSet, len(scores))
	for userID := range scores {
		ranks[userID] = &model.RankSet{UserID: userID}
	}

	for _, perk := range model.Perks {
		// 降順にソートした値リストから「値 → 順位」の対応を作る
		values := make([]float64, 0, len(scores))
		for _, s := range scores {
			values = append(values, s.Score(perk))
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(values)))

		rankOf := make(map[float64]int, len(values))
		for i, v := range values {
			if _, seen := rankOf[v]; !seen {
				rankOf[v] = i + 1
			}
		}

		for userID, s := range scores {
			setRank(ranks[userID], perk, rankOf[s.Score(perk)])
		}
	}

	return ranks
}

// setRank は指定した特典次元の順位を書き込む。
func setRank(r *model.RankSet, p model.Perk, rank int) {
	switch p {
	case model.PerkFreeHotelMeals:
		r.FreeHotelMeals = rank
	case model.PerkFreeCheckedBag:
		r.FreeCheckedBag = rank
	case model.PerkNoCancellationFee:
		r.NoCancellationFee = rank
	case model.PerkOneNightFreeWithFlight:
		r.OneNightFreeWithFlight = rank
	case model.PerkExclusiveDiscount:
		r.ExclusiveDiscount = rank
	}
}
