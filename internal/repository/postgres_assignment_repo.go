package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// PostgresAssignmentRepo はPostgreSQLを使用した特典付与結果リポジトリ。
type PostgresAssignmentRepo struct {
	db *sql.DB
}

// NewPostgresAssignmentRepo はPostgresAssignmentRepoを生成する。
func NewPostgresAssignmentRepo(db *sql.DB) *PostgresAssignmentRepo {
	return &PostgresAssignmentRepo{db: db}
}

// ReplaceAll は出力テーブルの全行を同一トランザクションで置き換える。
// コミット前にエラーが起きた場合はロールバックされ、既存の出力が残る。
// 部分的な出力が外部から見えることはない。
func (r *PostgresAssignmentRepo) ReplaceAll(ctx context.Context, assignments []*model.Assignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM perk_assignments`); err != nil {
		return fmt.Errorf("既存の特典付与結果の削除に失敗しました: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO perk_assignments (
			user_id, gender, birthdate, married, has_children,
			home_country, home_city, home_airport, sign_up_date,
			num_sessions, num_clicks, avg_session_duration_mins,
			total_flight_bookings, total_hotel_bookings, total_cancellations,
			avg_flight_discount_percent, avg_hotel_discount_percent,
			booking_rate, cancellation_rate,
			discount_flight_proportion, discount_hotel_proportion,
			avg_bags, activity_type, ads, scaled_session_duration,
			num_trips, total_checked_bags, avg_amount_spent,
			money_spent_hotel, money_spent_flight,
			avg_hotel_price_per_room_night_usd, avg_km_flown, scaled_fare_usd,
			score_free_hotel_meals, score_free_checked_bag,
			score_no_cancellation_fee, score_one_night_free_with_flight,
			score_exclusive_discount,
			rank_free_hotel_meals, rank_free_checked_bag,
			rank_no_cancellation_fee, rank_one_night_free_with_flight,
			rank_exclusive_discount,
			perk_assignment, traveler_profile
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45
		)`,
	)
	if err != nil {
		return fmt.Errorf("挿入ステートメントの準備に失敗しました: %w", err)
	}
	defer stmt.Close()

	for _, a := range assignments {
		u := a.User
		m := a.UserMetrics
		tm := a.TripMetrics
		s := a.Scores
		rk := a.Ranks

		_, err := stmt.ExecContext(ctx,
			u.ID, u.Gender, u.Birthdate, u.Married, u.HasChildren,
			u.HomeCountry, u.HomeCity, u.HomeAirport, u.SignUpDate,
			m.NumSessions, m.NumClicks, m.AvgSessionDurationMins,
			m.TotalFlightBookings, m.TotalHotelBookings, m.TotalCancellations,
			m.AvgFlightDiscountPercent, m.AvgHotelDiscountPercent,
			nullFloat64(m.BookingRate), nullFloat64(m.CancellationRate),
			m.DiscountFlightProportion, m.DiscountHotelProportion,
			m.AvgBags, string(m.ActivityType), nullFloat64(m.ADS), m.ScaledSessionDuration,
			tm.NumTrips, tm.TotalCheckedBags, tm.AvgAmountSpent,
			tm.MoneySpentHotel, tm.MoneySpentFlight,
			tm.AvgHotelPricePerRoomNightUSD, tm.AvgKmFlown, tm.ScaledFareUSD,
			s.FreeHotelMeals, s.FreeCheckedBag,
			s.NoCancellationFee, s.OneNightFreeWithFlight,
			s.ExclusiveDiscount,
			rk.FreeHotelMeals, rk.FreeCheckedBag,
			rk.NoCancellationFee, rk.OneNightFreeWithFlight,
			rk.ExclusiveDiscount,
			string(a.Perk), string(a.TravelerProfile),
		)
		if err != nil {
			return fmt.Errorf("特典付与結果の挿入に失敗しました（user_id=%s）: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミットに失敗しました: %w", err)
	}

	return nil
}

// Count は現在の出力行数を返す。
func (r *PostgresAssignmentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM perk_assignments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("特典付与結果の件数取得に失敗しました: %w", err)
	}
	return count, nil
}

// nullFloat64 は*float64をsql.NullFloat64へ変換する。
// nilは「未定義」を意味し、NULLとして保存する。
func nullFloat64(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}
