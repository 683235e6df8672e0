// Package model はドメインモデルを定義する。
package model

import "time"

// Flight はトリップのフライト側の予約内容を表す。
type Flight struct {
	TripID                string
	OriginAirport         string
	DestinationAirport    string
	DestinationAirportLat float64
	DestinationAirportLon float64
	SeatCount             int
	ReturnFlightBooked    bool
	DepartureTime         time.Time
	ReturnTime            *time.Time
	CheckedBags           int
	Airline               string
	BaseFareUSD           float64
}

// Hotel はトリップのホテル側の予約内容を表す。
type Hotel struct {
	TripID               string
	HotelName            string
	Nights               int
	Rooms                int
	CheckInTime          time.Time
	CheckOutTime         time.Time
	PricePerRoomNightUSD float64
}

// Trip は同一トリップ識別子を持つフライト側とホテル側の組を表す。
// どちらか一方が存在しないトリップもある。
type Trip struct {
	TripID string
	Flight *Flight
	Hotel  *Hotel
}
