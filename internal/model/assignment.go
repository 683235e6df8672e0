// Package model はドメインモデルを定義する。
package model

// TravelerProfile は人口統計とトリップ頻度から導かれる旅行者セグメントを表す。
type TravelerProfile string

const (
	// ProfileSenior は55歳超の旅行者。
	ProfileSenior TravelerProfile = "senior traveller"
	// ProfileFamily は子供のいる旅行者。
	ProfileFamily TravelerProfile = "family travellers"
	// ProfileDreamer は35歳未満でトリップ2回未満の旅行者。
	ProfileDreamer TravelerProfile = "dreamer traveller"
	// ProfileYoungFrequent は35歳未満でトリップ2回以上の旅行者。
	ProfileYoungFrequent TravelerProfile = "young frequent traveller"
	// ProfileBusiness は35歳以上でトリップ5回超の旅行者。
	ProfileBusiness TravelerProfile = "business traveller"
	// ProfileNormal は上記いずれにも当てはまらない旅行者。
	ProfileNormal TravelerProfile = "Normal traveller"
)

// Assignment は適格ユーザー1人分の最終出力行を表す。
// ユーザー属性・セッション集計・トリップ集計・スコア・順位・特典・
// セグメントラベルをユーザーIDで結合したもの。
type Assignment struct {
	User        User
	UserMetrics UserMetrics
	TripMetrics TripMetrics
	Scores      ScoreSet
	Ranks       RankSet

	Perk            Perk
	TravelerProfile TravelerProfile
}
