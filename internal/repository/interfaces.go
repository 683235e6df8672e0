// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// UserRepository はユーザープロファイルの読み出しインターフェース。
// 入力スナップショットは読み取り専用で、バッチから書き込むことはない。
type UserRepository interface {
	// ListAll は全ユーザーを取得する。
	ListAll(ctx context.Context) ([]*model.User, error)
}

// SessionRepository はブラウジングセッションの読み出しインターフェース。
type SessionRepository interface {
	// ListAll は全セッションを取得する。
	ListAll(ctx context.Context) ([]*model.Session, error)
}

// TripRepository はトリップ（フライト側・ホテル側）の読み出しインターフェース。
type TripRepository interface {
	// ListFlights は全フライト予約を取得する。
	ListFlights(ctx context.Context) ([]*model.Flight, error)

	// ListHotels は全ホテル予約を取得する。
	ListHotels(ctx context.Context) ([]*model.Hotel, error)
}

// AssignmentRepository は特典付与結果の永続化インターフェース。
type AssignmentRepository interface {
	// ReplaceAll は出力テーブルの全行を同一トランザクションで置き換える。
	// 部分的な出力が見える状態を作らないため、全削除と全挿入を
	// 1トランザクションで行う。
	ReplaceAll(ctx context.Context, assignments []*model.Assignment) error

	// Count は現在の出力行数を返す。
	Count(ctx context.Context) (int, error)
}
