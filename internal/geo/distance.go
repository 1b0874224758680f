package geo

import (
	"math"
)

// earthRadiusKM 地球平均半径（公里）
const earthRadiusKM = 6371.0

// DistanceKM 计算两点间的 Haversine 球面距离（公里，保留 2 位小数）。
// 任一坐标缺失或非有限值时返回 0，不报错。
func DistanceKM(lat1, lng1, lat2, lng2 *float64) float64 {
	if lat1 == nil || lng1 == nil || lat2 == nil || lng2 == nil {
		return 0
	}
	return distanceKM(*lat1, *lng1, *lat2, *lng2)
}

func distanceKM(lat1, lng1, lat2, lng2 float64) float64 {
	if !finite(lat1) || !finite(lng1) || !finite(lat2) || !finite(lng2) {
		return 0
	}

	radLat1 := toRadians(lat1)
	radLat2 := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLng := toRadians(lng2 - lng1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round2(earthRadiusKM * c)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
