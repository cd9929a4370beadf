package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TabiPlan-App/internal/domain/model"
	repoimpl "TabiPlan-App/internal/repository"
)

// stubSearchProvider はテスト用の外部スポット検索スタブ
type stubSearchProvider struct {
	mu      sync.Mutex
	results map[string][]model.ExternalPlace
	errs    map[string]error
	radii   []int
}

func (s *stubSearchProvider) Search(ctx context.Context, destination, category string, radiusMeters int) ([]model.ExternalPlace, error) {
	s.mu.Lock()
	s.radii = append(s.radii, radiusMeters)
	s.mu.Unlock()

	if err, ok := s.errs[category]; ok {
		return nil, err
	}
	return s.results[category], nil
}

func fallbackParams(interests []string) *model.PlanParams {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return model.NewPlanParams("Paris, France", start, start.AddDate(0, 0, 2), interests)
}

func TestPlaceFallbackService_FetchAndStore(t *testing.T) {
	ctx := context.Background()

	t.Run("カテゴリ横断で重複排除して登録する", func(t *testing.T) {
		shared := model.ExternalPlace{Name: "Louvre", Category: model.CategoryMuseum, Lat: 48.8606, Lng: 2.3376, Rating: 4.8, PriceLevel: 3}
		provider := &stubSearchProvider{
			results: map[string][]model.ExternalPlace{
				model.CategorySights: {shared, {Name: "Eiffel Tower", Category: model.CategorySights, Lat: 48.8584, Lng: 2.2945, Rating: 4.7, PriceLevel: 3}},
				model.CategoryMuseum: {shared},
			},
		}
		catalog := repoimpl.NewMemoryPlacesRepository(nil)
		fallback := NewPlaceFallbackService(provider, catalog)

		discovered, err := fallback.FetchAndStore(ctx, fallbackParams([]string{model.CategorySights, model.CategoryMuseum}))
		require.NoError(t, err)
		assert.Len(t, discovered, 2)
		assert.Equal(t, 2, catalog.Len())

		for _, place := range discovered {
			assert.Equal(t, "Paris", place.City)
			assert.NotEmpty(t, place.ID)
		}
	})

	t.Run("カテゴリ欠落はactivity扱い・評価ゼロはデフォルト値", func(t *testing.T) {
		provider := &stubSearchProvider{
			results: map[string][]model.ExternalPlace{
				model.CategorySights: {{Name: "Mystery Spot", Lat: 1, Lng: 1}},
			},
		}
		catalog := repoimpl.NewMemoryPlacesRepository(nil)
		fallback := NewPlaceFallbackService(provider, catalog)

		discovered, err := fallback.FetchAndStore(ctx, fallbackParams([]string{model.CategorySights}))
		require.NoError(t, err)
		require.Len(t, discovered, 1)
		assert.Equal(t, model.CategoryActivity, discovered[0].Category)
		assert.Equal(t, 4.5, discovered[0].Rating)
	})

	t.Run("一部カテゴリの失敗は無視して残りをマージする", func(t *testing.T) {
		provider := &stubSearchProvider{
			results: map[string][]model.ExternalPlace{
				model.CategoryFood: {{Name: "Le Bistro", Category: model.CategoryFood, Lat: 2, Lng: 2}},
			},
			errs: map[string]error{
				model.CategorySights: errors.New("network unreachable"),
			},
		}
		catalog := repoimpl.NewMemoryPlacesRepository(nil)
		fallback := NewPlaceFallbackService(provider, catalog)

		discovered, err := fallback.FetchAndStore(ctx, fallbackParams([]string{model.CategorySights, model.CategoryFood}))
		require.NoError(t, err)
		require.Len(t, discovered, 1)
		assert.Equal(t, "Le Bistro", discovered[0].Name)
	})

	t.Run("全カテゴリ空なら登録せず空を返す", func(t *testing.T) {
		provider := &stubSearchProvider{}
		catalog := repoimpl.NewMemoryPlacesRepository(nil)
		fallback := NewPlaceFallbackService(provider, catalog)

		discovered, err := fallback.FetchAndStore(ctx, fallbackParams([]string{model.CategorySights}))
		require.NoError(t, err)
		assert.Empty(t, discovered)
		assert.Equal(t, 0, catalog.Len())
	})

	t.Run("広域モードは検索半径150km", func(t *testing.T) {
		provider := &stubSearchProvider{}
		fallback := NewPlaceFallbackService(provider, repoimpl.NewMemoryPlacesRepository(nil))

		params := fallbackParams([]string{model.CategorySights, model.CategoryFood})
		params.CountryMode = true

		_, err := fallback.FetchAndStore(ctx, params)
		require.NoError(t, err)
		require.Len(t, provider.radii, 2)
		for _, radius := range provider.radii {
			assert.Equal(t, model.CountryRadiusMeters, radius)
		}
	})

	t.Run("興味未指定はデフォルトカテゴリで検索する", func(t *testing.T) {
		provider := &stubSearchProvider{}
		fallback := NewPlaceFallbackService(provider, repoimpl.NewMemoryPlacesRepository(nil))

		params := fallbackParams(nil)
		params.Interests = nil

		_, err := fallback.FetchAndStore(ctx, params)
		require.NoError(t, err)
		assert.Len(t, provider.radii, len(model.FallbackCategories))
	})
}
