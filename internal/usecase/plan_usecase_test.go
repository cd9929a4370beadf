package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/service"
	repoimpl "TabiPlan-App/internal/repository"
)

// stubTripPlanRepository はプラン永続化のインメモリスタブ
type stubTripPlanRepository struct {
	saved   map[string]*model.TripPlan
	saveErr error
}

func newStubTripPlanRepository() *stubTripPlanRepository {
	return &stubTripPlanRepository{saved: make(map[string]*model.TripPlan)}
}

func (r *stubTripPlanRepository) Save(ctx context.Context, plan *model.TripPlan, ttlHours int) (string, error) {
	if r.saveErr != nil {
		return "", r.saveErr
	}
	planID := fmt.Sprintf("plan_%d", len(r.saved)+1)
	r.saved[planID] = plan
	return planID, nil
}

func (r *stubTripPlanRepository) GetByID(ctx context.Context, planID string) (*model.TripPlan, error) {
	plan, ok := r.saved[planID]
	if !ok {
		return nil, errors.New("プランが見つかりません")
	}
	return plan, nil
}

func testPlanService() service.PlanSuggestionService {
	catalog := repoimpl.NewMemoryPlacesRepository([]model.Place{
		{ID: "1", City: "Paris", Name: "Eiffel Tower", Category: model.CategorySights, Lat: 48.8584, Lng: 2.2945, Rating: 4.7, PriceLevel: 3},
		{ID: "2", City: "Paris", Name: "Louvre", Category: model.CategoryMuseum, Lat: 48.8606, Lng: 2.3376, Rating: 4.8, PriceLevel: 3},
		{ID: "3", City: "Paris", Name: "Le Bistro", Category: model.CategoryFood, Lat: 48.8520, Lng: 2.3330, Rating: 4.2, PriceLevel: 2},
	})
	return service.NewPlanSuggestionService(catalog, nil)
}

func parisRequest() *model.PlanRequest {
	return &model.PlanRequest{
		Destination: "Paris, France",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-01",
		Interests:   []string{model.CategorySights, model.CategoryMuseum, model.CategoryFood},
	}
}

func TestPlanUseCase_GeneratePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("生成と保存のフロー", func(t *testing.T) {
		tripPlanRepo := newStubTripPlanRepository()
		useCase := NewPlanUseCase(testPlanService(), tripPlanRepo)

		response, err := useCase.GeneratePlan(ctx, parisRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, response.PlanID)
		require.NotNil(t, response.Plan)
		assert.Equal(t, "Parisの旅行プラン", response.Plan.Name)
		assert.Equal(t, "2026-09-01", response.Plan.StartDate)
		assert.Equal(t, "2026-09-01", response.Plan.EndDate)
		assert.NotEmpty(t, response.Plan.Schedule.Days)

		saved, err := useCase.GetPlan(ctx, response.PlanID)
		require.NoError(t, err)
		assert.Equal(t, response.Plan.Name, saved.Name)
	})

	t.Run("リクエストで指定した名前を優先する", func(t *testing.T) {
		useCase := NewPlanUseCase(testPlanService(), newStubTripPlanRepository())

		request := parisRequest()
		request.Name = "夏のパリ旅行"

		response, err := useCase.GeneratePlan(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "夏のパリ旅行", response.Plan.Name)
	})

	t.Run("保存リポジトリ未設定なら保存せずプランのみ返す", func(t *testing.T) {
		useCase := NewPlanUseCase(testPlanService(), nil)

		response, err := useCase.GeneratePlan(ctx, parisRequest())
		require.NoError(t, err)
		assert.Empty(t, response.PlanID)
		require.NotNil(t, response.Plan)
		assert.NotEmpty(t, response.Plan.Schedule.Days)
	})

	t.Run("不正なリクエストはエラー", func(t *testing.T) {
		useCase := NewPlanUseCase(testPlanService(), newStubTripPlanRepository())

		request := parisRequest()
		request.StartDate = "tomorrow"

		_, err := useCase.GeneratePlan(ctx, request)
		assert.Error(t, err)
	})

	t.Run("日付範囲の逆転はエラー", func(t *testing.T) {
		useCase := NewPlanUseCase(testPlanService(), newStubTripPlanRepository())

		request := parisRequest()
		request.StartDate = "2026-09-03"
		request.EndDate = "2026-09-01"

		_, err := useCase.GeneratePlan(ctx, request)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidDateRange)
	})

	t.Run("保存失敗はエラーとして伝播する", func(t *testing.T) {
		tripPlanRepo := newStubTripPlanRepository()
		tripPlanRepo.saveErr = errors.New("firestore unavailable")
		useCase := NewPlanUseCase(testPlanService(), tripPlanRepo)

		_, err := useCase.GeneratePlan(ctx, parisRequest())
		assert.Error(t, err)
	})
}

func TestPlanUseCase_GetPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("存在しないIDはエラー", func(t *testing.T) {
		useCase := NewPlanUseCase(testPlanService(), newStubTripPlanRepository())
		_, err := useCase.GetPlan(ctx, "plan_missing")
		assert.Error(t, err)
	})

	t.Run("保存リポジトリ未設定はエラー", func(t *testing.T) {
		useCase := NewPlanUseCase(testPlanService(), nil)
		_, err := useCase.GetPlan(ctx, "plan_1")
		assert.Error(t, err)
	})
}
