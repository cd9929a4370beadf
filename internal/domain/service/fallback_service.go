package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/repository"
)

// PlaceFallbackService は外部スポット検索によるカタログ補充を行うサービス
// ローカル候補が尽きた場合や明示要求があった場合にのみ呼ばれる
type PlaceFallbackService interface {
	// FetchAndStore は興味カテゴリごとに外部検索を行い、発見したスポットを
	// カタログに登録して返す。全カテゴリが失敗・空の場合は空リストを返す。
	FetchAndStore(ctx context.Context, params *model.PlanParams) ([]model.Place, error)
}

type placeFallbackService struct {
	searchProvider repository.PlaceSearchProvider
	placesRepo     repository.PlacesRepository
}

// NewPlaceFallbackService は新しいPlaceFallbackServiceインスタンスを作成
func NewPlaceFallbackService(provider repository.PlaceSearchProvider, placesRepo repository.PlacesRepository) PlaceFallbackService {
	return &placeFallbackService{
		searchProvider: provider,
		placesRepo:     placesRepo,
	}
}

// categoryResult は並行検索の1カテゴリ分の結果（成功リストか失敗理由のどちらか）
type categoryResult struct {
	category string
	places   []model.ExternalPlace
	err      error
}

// dedupeKey は発見スポットの重複排除キー（名前＋緯度経度）
type dedupeKey struct {
	name string
	lat  float64
	lng  float64
}

func (s *placeFallbackService) FetchAndStore(ctx context.Context, params *model.PlanParams) ([]model.Place, error) {
	categories := params.Interests
	if len(categories) == 0 {
		categories = model.FallbackCategories
	}

	radius := model.CityRadiusMeters
	if params.CountryMode {
		radius = model.CountryRadiusMeters
	}

	// カテゴリ間に順序依存はないため並行に検索し、全件揃ってからマージする
	resultsChan := make(chan categoryResult, len(categories))
	var wg sync.WaitGroup

	for _, category := range categories {
		wg.Add(1)
		go func(cat string) {
			defer wg.Done()
			found, err := s.searchProvider.Search(ctx, params.Destination, cat, radius)
			resultsChan <- categoryResult{category: cat, places: found, err: err}
		}(category)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	seen := make(map[dedupeKey]struct{})
	var discovered []model.Place
	for result := range resultsChan {
		if result.err != nil {
			log.Printf("⚠️ カテゴリ '%s' の外部検索に失敗、スキップ: %v", result.category, result.err)
			continue
		}
		for _, external := range result.places {
			key := dedupeKey{name: external.Name, lat: external.Lat, lng: external.Lng}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			discovered = append(discovered, s.toPlace(params, external))
		}
	}

	if len(discovered) == 0 {
		return nil, nil
	}

	if err := s.placesRepo.BulkCreate(ctx, discovered); err != nil {
		return nil, fmt.Errorf("発見したスポットの一括登録に失敗: %w", err)
	}

	log.Printf("✅ 外部検索で%d件のスポットをカタログに追加 (目的地: %s)", len(discovered), params.CatalogCity())
	return discovered, nil
}

// toPlace は外部検索結果をカタログのスポットレコードに変換する
func (s *placeFallbackService) toPlace(params *model.PlanParams, external model.ExternalPlace) model.Place {
	category := external.Category
	if category == "" {
		category = model.CategoryActivity
	}
	rating := external.Rating
	if rating == 0 {
		rating = 4.5
	}
	return model.Place{
		ID:          uuid.New().String(),
		City:        params.CatalogCity(),
		Name:        external.Name,
		Category:    category,
		Lat:         external.Lat,
		Lng:         external.Lng,
		Rating:      rating,
		PriceLevel:  external.PriceLevel,
		Description: external.Description,
	}
}
