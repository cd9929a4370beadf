package service

import (
	"sort"
	"strings"

	"TabiPlan-App/internal/domain/model"
)

// PickPlaces はカタログのスポット群から候補を選抜する純粋関数
// 都市の完全一致・興味カテゴリ・予算上限でフィルタし、ランク順に先頭count件を返す
// 興味カテゴリが空の場合は興味フィルタを適用しない
func PickPlaces(places []model.Place, city string, interests []string, count int, budgetLevel *int) []model.Place {
	cityNorm := model.NormalizeCity(city)

	interestSet := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		interestSet[interest] = struct{}{}
	}

	var matched []model.Place
	for _, place := range places {
		if strings.ToLower(strings.TrimSpace(place.City)) != cityNorm {
			continue
		}
		if len(interests) > 0 {
			if _, ok := interestSet[place.Category]; !ok {
				continue
			}
		}
		if budgetLevel != nil && place.PriceLevel > *budgetLevel {
			continue
		}
		matched = append(matched, place)
	}

	RankPlaces(matched)
	return topN(matched, count)
}

// PickLoosePlaces は都市名の部分一致のみで候補を選抜する（最終緩和段）
// 正規化した目的地がカタログの都市名文字列に含まれていれば一致とみなす
func PickLoosePlaces(places []model.Place, city string, count int) []model.Place {
	cityNorm := model.NormalizeCity(city)

	var matched []model.Place
	for _, place := range places {
		if strings.Contains(strings.ToLower(strings.TrimSpace(place.City)), cityNorm) {
			matched = append(matched, place)
		}
	}

	RankPlaces(matched)
	return topN(matched, count)
}

// RankPlaces は評価値の降順→価格帯の昇順→名前の昇順の全順序でソートする
// 同点の解決まで決定的であることがプラン生成の再現性の前提になる
func RankPlaces(places []model.Place) {
	sort.Slice(places, func(i, j int) bool {
		if places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		if places[i].PriceLevel != places[j].PriceLevel {
			return places[i].PriceLevel < places[j].PriceLevel
		}
		return places[i].Name < places[j].Name
	})
}

func topN(places []model.Place, count int) []model.Place {
	if count < 0 {
		count = 0
	}
	if len(places) > count {
		return places[:count]
	}
	return places
}
