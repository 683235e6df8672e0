package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// PostgresSessionRepo はPostgreSQLを使用したセッションリポジトリ。
type PostgresSessionRepo struct {
	db *sql.DB
}

// NewPostgresSessionRepo はPostgresSessionRepoを生成する。
func NewPostgresSessionRepo(db *sql.DB) *PostgresSessionRepo {
	return &PostgresSessionRepo{db: db}
}

// ListAll は全セッションを取得する。
// trip_idと割引額はNULLを許容するためsql.Null*経由でスキャンする。
func (r *PostgresSessionRepo) ListAll(ctx context.Context) ([]*model.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, user_id, trip_id, session_start, session_end,
		        page_clicks, flight_discount, flight_discount_amount,
		        hotel_discount, hotel_discount_amount,
		        flight_booked, hotel_booked, cancellation
		 FROM sessions
		 ORDER BY session_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("セッション一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var sessions []*model.Session
	for rows.Next() {
		s := &model.Session{}
		var tripID sql.NullString
		var flightDiscountAmount, hotelDiscountAmount sql.NullFloat64

		if err := rows.Scan(
			&s.ID, &s.UserID, &tripID, &s.SessionStart, &s.SessionEnd,
			&s.PageClicks, &s.FlightDiscount, &flightDiscountAmount,
			&s.HotelDiscount, &hotelDiscountAmount,
			&s.FlightBooked, &s.HotelBooked, &s.Cancellation,
		); err != nil {
			return nil, fmt.Errorf("セッション行のスキャンに失敗しました: %w", err)
		}

		if tripID.Valid {
			s.TripID = &tripID.String
		}
		if flightDiscountAmount.Valid {
			s.FlightDiscountAmount = &flightDiscountAmount.Float64
		}
		if hotelDiscountAmount.Valid {
			s.HotelDiscountAmount = &hotelDiscountAmount.Float64
		}

		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("セッション一覧の読み出し中にエラーが発生しました: %w", err)
	}

	return sessions, nil
}
