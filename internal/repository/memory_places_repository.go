package repository

import (
	"context"
	"sync"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/repository"
)

// MemoryPlacesRepository インメモリのスポットカタログ
// テストやオフライン実行向け。カタログは読み取り中心・追記のみの契約なので、
// RWMutexで並行プラン生成からの読み取りとフォールバックの追記を保護する。
type MemoryPlacesRepository struct {
	mu     sync.RWMutex
	places []model.Place
}

// NewMemoryPlacesRepository 初期データ付きでインメモリカタログを作成
func NewMemoryPlacesRepository(seed []model.Place) *MemoryPlacesRepository {
	places := make([]model.Place, len(seed))
	copy(places, seed)
	return &MemoryPlacesRepository{places: places}
}

var _ repository.PlacesRepository = (*MemoryPlacesRepository)(nil)

func (r *MemoryPlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Place, len(r.places))
	copy(result, r.places)
	return result, nil
}

func (r *MemoryPlacesRepository) GetByCity(ctx context.Context, city string) ([]model.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []model.Place
	for _, place := range r.places {
		if model.NormalizeCity(place.City) == city {
			result = append(result, place)
		}
	}
	return result, nil
}

func (r *MemoryPlacesRepository) BulkCreate(ctx context.Context, places []model.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.places = append(r.places, places...)
	return nil
}

// Len 登録済みスポット数を返す
func (r *MemoryPlacesRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.places)
}
