package service

import (
	"TabiPlan-App/internal/domain/helper"
	"TabiPlan-App/internal/domain/model"
)

// NearestNeighborOrder は1日分のスポットを貪欲な最近傍法で並べ替える
// 入力の先頭要素をアンカーとして固定し、以降は直前に置いたスポットに最も近い
// 未訪問スポットを選び続ける。距離が同じ場合は元のリスト順を優先する。
// 巡回最適解を求めるソルバーではなく、高速で決定的な近似に留める。
func NearestNeighborOrder(places []model.Place) []model.Place {
	if len(places) == 0 {
		return places
	}

	unvisited := make([]model.Place, len(places))
	copy(unvisited, places)

	route := make([]model.Place, 0, len(places))
	route = append(route, unvisited[0])
	unvisited = unvisited[1:]

	for len(unvisited) > 0 {
		last := route[len(route)-1]
		idx := helper.NearestIndex(last.ToLatLng(), unvisited)
		route = append(route, unvisited[idx])
		unvisited = append(unvisited[:idx], unvisited[idx+1:]...)
	}

	return route
}
