package model

import (
	"testing"
	"time"
)

// TestUser_Age_BirthdayPassed は誕生日を過ぎた時点での満年齢を検証する。
func TestUser_Age_BirthdayPassed(t *testing.T) {
	u := &User{Birthdate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)}
	at := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

	if got := u.Age(at); got != 33 {
		t.Errorf("Age = %d, want 33", got)
	}
}

// TestUser_Age_BirthdayNotYet は誕生日前の時点では1歳少ないことを検証する。
func TestUser_Age_BirthdayNotYet(t *testing.T) {
	u := &User{Birthdate: time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC)}
	at := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

	if got := u.Age(at); got != 32 {
		t.Errorf("Age = %d, want 32", got)
	}
}

// TestUser_Age_OnBirthday は誕生日当日に年齢が繰り上がることを検証する。
func TestUser_Age_OnBirthday(t *testing.T) {
	u := &User{Birthdate: time.Date(1967, 7, 1, 0, 0, 0, 0, time.UTC)}
	at := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)

	if got := u.Age(at); got != 56 {
		t.Errorf("Age = %d, want 56", got)
	}
}

// TestEnrichedSession_HasTrip はトリップ判定の条件を検証する。
func TestEnrichedSession_HasTrip(t *testing.T) {
	tripID := "t-1"

	withTrip := &EnrichedSession{Session: Session{TripID: &tripID}}
	if !withTrip.HasTrip() {
		t.Error("トリップ参照のある非キャンセル行はトリップと判定されるべき")
	}

	noTrip := &EnrichedSession{Session: Session{TripID: nil}}
	if noTrip.HasTrip() {
		t.Error("トリップ参照のない行はトリップと判定されるべきではない")
	}

	cancelled := &EnrichedSession{Session: Session{TripID: &tripID, Cancellation: true}}
	if cancelled.HasTrip() {
		t.Error("キャンセル行はトリップと判定されるべきではない")
	}
}
