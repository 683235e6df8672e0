// Package geo は空港座標間の大圏距離の計算を提供する。
package geo

import "math"

// earthRadiusKm は地球の平均半径（km）。
const earthRadiusKm = 6371.0

// DistanceKm は2点の緯度経度（度）からハバーサイン公式で大圏距離を
// キロメートル単位で返す。距離を扱う全コンポーネントはこのkm値を
// そのまま使用する（単位の混在を避けるための取り決め）。
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
