package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"TabiPlan-App/internal/domain/model"
)

func TestHaversineDistance(t *testing.T) {
	paris := model.LatLng{Lat: 48.8566, Lng: 2.3522}
	london := model.LatLng{Lat: 51.5074, Lng: -0.1278}

	t.Run("既知の2都市間の距離", func(t *testing.T) {
		// パリ〜ロンドンは約343.6km
		assert.InDelta(t, 343.56, HaversineDistance(paris, london), 0.5)
	})

	t.Run("対称性", func(t *testing.T) {
		assert.Equal(t, HaversineDistance(paris, london), HaversineDistance(london, paris))
	})

	t.Run("同一地点はゼロ", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineDistance(paris, paris))
	})
}

func TestHaversineDistancePlace(t *testing.T) {
	louvre := &model.Place{Name: "Louvre", Lat: 48.8606, Lng: 2.3376}
	eiffel := &model.Place{Name: "Eiffel Tower", Lat: 48.8584, Lng: 2.2945}

	// ルーヴル〜エッフェル塔は約3.2km
	assert.InDelta(t, 3.16, HaversineDistancePlace(louvre, eiffel), 0.05)
}

func TestSortByDistanceFrom(t *testing.T) {
	origin := model.LatLng{Lat: 0, Lng: 0}

	t.Run("基準座標からの距離順に並ぶ", func(t *testing.T) {
		targets := []model.Place{
			{Name: "far", Lat: 0, Lng: 3},
			{Name: "near", Lat: 0, Lng: 1},
			{Name: "mid", Lat: 0, Lng: 2},
		}

		SortByDistanceFrom(origin, targets)
		assert.Equal(t, "near", targets[0].Name)
		assert.Equal(t, "mid", targets[1].Name)
		assert.Equal(t, "far", targets[2].Name)
	})

	t.Run("同距離は元の順序を維持する", func(t *testing.T) {
		targets := []model.Place{
			{Name: "east", Lat: 0, Lng: 1},
			{Name: "west", Lat: 0, Lng: -1},
		}

		SortByDistanceFrom(origin, targets)
		assert.Equal(t, "east", targets[0].Name)
		assert.Equal(t, "west", targets[1].Name)
	})
}

func TestNearestIndex(t *testing.T) {
	origin := model.LatLng{Lat: 0, Lng: 0}

	t.Run("最も近いスポットのインデックスを返す", func(t *testing.T) {
		targets := []model.Place{
			{Name: "far", Lat: 0, Lng: 3},
			{Name: "near", Lat: 0, Lng: 1},
			{Name: "mid", Lat: 0, Lng: 2},
		}
		assert.Equal(t, 1, NearestIndex(origin, targets))
	})

	t.Run("同距離の場合は先頭側が優先", func(t *testing.T) {
		targets := []model.Place{
			{Name: "first", Lat: 0, Lng: 1},
			{Name: "second", Lat: 0, Lng: -1},
		}
		assert.Equal(t, 0, NearestIndex(origin, targets))
	})

	t.Run("空スライスは-1", func(t *testing.T) {
		assert.Equal(t, -1, NearestIndex(origin, nil))
	})
}
