// Package model はドメインモデルを定義する。
package model

// ActivityType はユーザーの予約行動の種別を表す。
type ActivityType string

const (
	// ActivityFlightOnly はフライト予約のみのユーザー。
	ActivityFlightOnly ActivityType = "Flight Only"
	// ActivityFlightWithHotel はフライトとホテル両方を予約したユーザー。
	ActivityFlightWithHotel ActivityType = "Flight with Hotel"
	// ActivityHotelOnly はホテル予約のみのユーザー。
	ActivityHotelOnly ActivityType = "Hotel Only"
	// ActivityNone は予約実績のないユーザー。
	ActivityNone ActivityType = "No Activity"
)

// UserMetrics は適格ユーザー1人分のセッション集計結果を表す。
// 比率系の指標は分母が0のとき「未定義」を意味するnilになる。
// 0との区別が必要なためポインタで保持する。
type UserMetrics struct {
	UserID string

	NumSessions            int
	NumClicks              int
	AvgSessionDurationMins float64

	TotalFlightBookings int
	TotalHotelBookings  int
	TotalCancellations  int

	AvgFlightDiscountPercent float64
	AvgHotelDiscountPercent  float64

	// BookingRate = 両方予約したセッション / どちらか予約したセッション。
	// 一度も予約のないユーザーではnil。
	BookingRate *float64
	// CancellationRate = キャンセルセッション / どちらか予約したセッション。
	CancellationRate *float64

	DiscountFlightProportion float64
	DiscountHotelProportion  float64

	AvgBags float64

	ActivityType ActivityType

	// ADS は割引額加重の運賃支出を総移動距離で正規化した値。
	// 距離合計が0のときはnil（Infにしない）。
	ADS *float64

	// ScaledSessionDuration は平均セッション時間の母集団min-max正規化値。
	// 全ユーザーの平均が揃ってから2パス目で計算される。
	ScaledSessionDuration float64
}

// TripMetrics は適格ユーザー1人分のトリップ集計結果を表す。
// トリップを表す行（トリップ参照ありかつ非キャンセル）のみを対象とする。
type TripMetrics struct {
	UserID string

	NumTrips         int
	TotalCheckedBags int

	// AvgAmountSpent はトリップ1件あたりの総支出
	// （運賃×座席数 + 室料×部屋数×泊数）の平均。
	AvgAmountSpent float64

	// MoneySpentHotel / MoneySpentFlight は割引適用後の支出合計。
	// 割引額が欠損している場合は0として扱う。
	MoneySpentHotel  float64
	MoneySpentFlight float64

	AvgHotelPricePerRoomNightUSD float64
	AvgKmFlown                   float64
	ScaledFareUSD                float64
}
