package perk

import (
	"testing"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

func ranks(meals, bag, cancel, night, disc int) *model.RankSet {
	return &model.RankSet{
		UserID:                 "u-1",
		FreeHotelMeals:         meals,
		FreeCheckedBag:         bag,
		NoCancellationFee:      cancel,
		OneNightFreeWithFlight: night,
		ExclusiveDiscount:      disc,
	}
}

// TestAssign_厳密単独最小の次元の特典が選ばれる は1次元だけが最良順位の
// 場合にその特典が返ることを確認する。
func TestAssign_厳密単独最小の次元の特典が選ばれる(t *testing.T) {
	tests := []struct {
		name  string
		ranks *model.RankSet
		want  model.Perk
	}{
		{"meals", ranks(1, 2, 3, 4, 5), model.PerkFreeHotelMeals},
		{"bag", ranks(5, 1, 3, 4, 2), model.PerkFreeCheckedBag},
		{"cancel", ranks(4, 3, 1, 2, 5), model.PerkNoCancellationFee},
		{"night", ranks(2, 3, 4, 1, 5), model.PerkOneNightFreeWithFlight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assign(tt.ranks); got != tt.want {
				t.Errorf("Assign() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestAssign_最良順位が同点ならexclusive_discountになる は2次元以上が
// 最小順位を共有する場合のフォールバックを確認する。
func TestAssign_最良順位が同点ならexclusive_discountになる(t *testing.T) {
	tests := []struct {
		name  string
		ranks *model.RankSet
	}{
		{"mealsとbagが同点1位", ranks(1, 1, 3, 4, 5)},
		{"全次元同点", ranks(1, 1, 1, 1, 1)},
		{"cancelとnightが同点2位で最小", ranks(3, 4, 2, 2, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assign(tt.ranks); got != model.PerkExclusiveDiscount {
				t.Errorf("Assign() = %s, want %s", got, model.PerkExclusiveDiscount)
			}
		})
	}
}

// TestAssign_exclusive_discountが単独最良でもルール表は走査されない は
// exclusive_discount自体に厳密単独最小ルールがないことを確認する。
// 単独で最良でもフォールバック経由で同じ結果になる。
func TestAssign_exclusive_discountが単独最良でもルール表は走査されない(t *testing.T) {
	if got := Assign(ranks(2, 3, 4, 5, 1)); got != model.PerkExclusiveDiscount {
		t.Errorf("Assign() = %s, want %s", got, model.PerkExclusiveDiscount)
	}
}

// TestAssign_優先順はルール表の並び順に従う は複数次元が厳密単独最小に
// なり得ない構造上、優先順が効くのは順位構成が同型の場合のみである
// ことを踏まえ、先頭ルールから評価されることを確認する。
func TestAssign_優先順はルール表の並び順に従う(t *testing.T) {
	// mealsが単独1位。後続のルールは評価されず即決する。
	if got := Assign(ranks(1, 2, 2, 2, 2)); got != model.PerkFreeHotelMeals {
		t.Errorf("Assign() = %s, want %s", got, model.PerkFreeHotelMeals)
	}
}
