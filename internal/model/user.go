// Package model はドメインモデルを定義する。
package model

import "time"

// User は旅行予約プラットフォームの利用ユーザーを表す。
// 入力スナップショットの一部であり、バッチ実行中は変更されない。
type User struct {
	ID             string
	Gender         string
	Birthdate      time.Time
	Married        bool
	HasChildren    bool
	HomeCountry    string
	HomeCity       string
	HomeAirport    string
	HomeAirportLat float64
	HomeAirportLon float64
	SignUpDate     time.Time
}

// Age はbirthdateから評価基準時点での満年齢を計算する。
// 評価時点をスナップショットの一部として渡すことで、同一スナップショットの
// 再実行が同一の結果を返すことを保証する。
func (u *User) Age(at time.Time) int {
	age := at.Year() - u.Birthdate.Year()
	// 誕生日がまだ来ていない場合は1引く
	anniversary := time.Date(at.Year(), u.Birthdate.Month(), u.Birthdate.Day(), 0, 0, 0, 0, at.Location())
	if at.Before(anniversary) {
		age--
	}
	return age
}
