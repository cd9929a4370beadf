package helper

import (
	"math"
	"sort"

	"TabiPlan-App/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の大圏距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistancePlace は2つのスポット間の距離を計算する (km)
func HaversineDistancePlace(p1, p2 *model.Place) float64 {
	return HaversineDistance(p1.ToLatLng(), p2.ToLatLng())
}

// SortByDistanceFrom は基準座標からの距離でスポットスライスをソートする（安定ソート）
func SortByDistanceFrom(origin model.LatLng, targets []model.Place) {
	sort.SliceStable(targets, func(i, j int) bool {
		distI := HaversineDistance(origin, targets[i].ToLatLng())
		distJ := HaversineDistance(origin, targets[j].ToLatLng())
		return distI < distJ
	})
}

// NearestIndex は基準座標に最も近いスポットのインデックスを返す
// 距離が同じ場合は元のリスト順が優先される
func NearestIndex(origin model.LatLng, targets []model.Place) int {
	if len(targets) == 0 {
		return -1
	}
	nearest := 0
	nearestDist := HaversineDistance(origin, targets[0].ToLatLng())
	for i := 1; i < len(targets); i++ {
		dist := HaversineDistance(origin, targets[i].ToLatLng())
		if dist < nearestDist {
			nearest = i
			nearestDist = dist
		}
	}
	return nearest
}
