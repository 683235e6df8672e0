package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/haritha-da/TravelTide-Project/internal/model"
)

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// ListAll は全ユーザーを取得する。
// 必須カラムが欠けている場合はスキャンエラーとなり、バッチ全体を中断させる。
func (r *PostgresUserRepo) ListAll(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, gender, birthdate, married, has_children,
		        home_country, home_city, home_airport,
		        home_airport_lat, home_airport_lon, sign_up_date
		 FROM users
		 ORDER BY user_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u := &model.User{}
		if err := rows.Scan(
			&u.ID, &u.Gender, &u.Birthdate, &u.Married, &u.HasChildren,
			&u.HomeCountry, &u.HomeCity, &u.HomeAirport,
			&u.HomeAirportLat, &u.HomeAirportLon, &u.SignUpDate,
		); err != nil {
			return nil, fmt.Errorf("ユーザー行のスキャンに失敗しました: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ユーザー一覧の読み出し中にエラーが発生しました: %w", err)
	}

	return users, nil
}
