package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// PostgresTripRepo はPostgreSQLを使用したトリップリポジトリ。
// フライト側とホテル側は別テーブルで、どちらもtrip_idをキーに持つ。
type PostgresTripRepo struct {
	db *sql.DB
}

// NewPostgresTripRepo はPostgresTripRepoを生成する。
func NewPostgresTripRepo(db *sql.DB) *PostgresTripRepo {
	return &PostgresTripRepo{db: db}
}

// ListFlights は全フライト予約を取得する。
func (r *PostgresTripRepo) ListFlights(ctx context.Context) ([]*model.Flight, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT trip_id, origin_airport, destination_airport,
		        destination_airport_lat, destination_airport_lon,
		        seats, return_flight_booked, departure_time, return_time,
		        checked_bags, trip_airline, base_fare_usd
		 FROM flights
		 ORDER BY trip_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("フライト一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var flights []*model.Flight
	for rows.Next() {
		f := &model.Flight{}
		var returnTime sql.NullTime

		if err := rows.Scan(
			&f.TripID, &f.OriginAirport, &f.DestinationAirport,
			&f.DestinationAirportLat, &f.DestinationAirportLon,
			&f.SeatCount, &f.ReturnFlightBooked, &f.DepartureTime, &returnTime,
			&f.CheckedBags, &f.Airline, &f.BaseFareUSD,
		); err != nil {
			return nil, fmt.Errorf("フライト行のスキャンに失敗しました: %w", err)
		}

		if returnTime.Valid {
			f.ReturnTime = &returnTime.Time
		}

		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("フライト一覧の読み出し中にエラーが発生しました: %w", err)
	}

	return flights, nil
}

// ListHotels は全ホテル予約を取得する。
// nightsの0以下の生値はこの層では補正しない（派生時にクランプする）。
func (r *PostgresTripRepo) ListHotels(ctx context.Context) ([]*model.Hotel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT trip_id, hotel_name, nights, rooms,
		        check_in_time, check_out_time, hotel_per_room_usd
		 FROM hotels
		 ORDER BY trip_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ホテル一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var hotels []*model.Hotel
	for rows.Next() {
		h := &model.Hotel{}
		if err := rows.Scan(
			&h.TripID, &h.HotelName, &h.Nights, &h.Rooms,
			&h.CheckInTime, &h.CheckOutTime, &h.PricePerRoomNightUSD,
		); err != nil {
			return nil, fmt.Errorf("ホテル行のスキャンに失敗しました: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ホテル一覧の読み出し中にエラーが発生しました: %w", err)
	}

	return hotels, nil
}
