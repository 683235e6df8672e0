// Package profile は人口統計とトリップ頻度による旅行者セグメントの
// 分類を提供する。
package profile

import (
	"time"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// Classify はユーザーの属性とトリップ回数から旅行者セグメントを決定する。
// age は評価基準時点 evaluatedAt での満年齢を使う。
//
// ルールは上から順に評価し、最初に合致したセグメントを返す。senior と
// family はトリップ回数に関わらず優先され、子供のいる56歳以上のユーザーは
// senior になる。どれにも当てはまらなければ Normal traveller になる。
func Classify(user *model.User, numTrips int, evaluatedAt time.Time) model.TravelerProfile {
	age := user.Age(evaluatedAt)

	switch {
	case age > 55:
		return model.ProfileSenior
	case user.HasChildren:
		return model.ProfileFamily
	case age < 35 && numTrips < 2:
		return model.ProfileDreamer
	case age < 35 && numTrips >= 2:
		return model.ProfileYoungFrequent
	case age >= 35 && numTrips > 5:
		return model.ProfileBusiness
	}
	return model.ProfileNormal
}
