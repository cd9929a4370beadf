package usecase

import (
	"context"
	"fmt"
	"log"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/repository"
	"TabiPlan-App/internal/domain/service"
)

// 生成済みプランの保持期間（時間）
const planTTLHours = 72

type PlanUseCase interface {
	// GeneratePlan はリクエストに基づいてプランを生成し、Firestoreに保存してレスポンスを返す
	GeneratePlan(ctx context.Context, req *model.PlanRequest) (*model.PlanResponse, error)

	// GetPlan は指定されたplan_idのプランをFirestoreから取得する
	GetPlan(ctx context.Context, planID string) (*model.TripPlan, error)
}

// planUseCaseImpl はPlanUseCaseの実装
type planUseCaseImpl struct {
	planService  service.PlanSuggestionService
	tripPlanRepo repository.TripPlanRepository // nilの場合は保存をスキップ
}

// NewPlanUseCase は新しいPlanUseCaseインスタンスを作成
func NewPlanUseCase(planService service.PlanSuggestionService, tripPlanRepo repository.TripPlanRepository) PlanUseCase {
	return &planUseCaseImpl{
		planService:  planService,
		tripPlanRepo: tripPlanRepo,
	}
}

// GeneratePlan はリクエストに基づいてプランを生成し、Firestoreに保存してレスポンスを返す
func (u *planUseCaseImpl) GeneratePlan(ctx context.Context, req *model.PlanRequest) (*model.PlanResponse, error) {
	log.Printf("🚀 プラン生成開始 (目的地: %s, 期間: %s〜%s, ペース: %s)", req.Destination, req.StartDate, req.EndDate, req.Pace)

	// Step 1: リクエストをパラメータに変換
	params, err := req.ToPlanParams()
	if err != nil {
		return nil, fmt.Errorf("リクエストの変換に失敗: %w", err)
	}

	// Step 2: スケジュールを生成
	schedule, err := u.planService.GeneratePlan(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("プラン生成に失敗: %w", err)
	}

	log.Printf("✅ %d日分・%d件の予定を生成", len(schedule.Days), schedule.TotalItems())

	name := params.Name
	if name == "" {
		name = fmt.Sprintf("%sの旅行プラン", params.CatalogCity())
	}

	plan := &model.TripPlan{
		Name:        name,
		Destination: params.Destination,
		StartDate:   params.DayKey(0),
		EndDate:     params.DayKey(params.TripDays() - 1),
		Pace:        params.Pace,
		Schedule:    schedule,
	}

	// Step 3: Firestoreに保存（リポジトリ未設定の場合はスキップ）
	if u.tripPlanRepo == nil {
		log.Printf("⚠️ プラン保存リポジトリが未設定のため保存をスキップ")
		return &model.PlanResponse{Plan: plan}, nil
	}

	log.Printf("💾 Firestore保存中...")
	planID, err := u.tripPlanRepo.Save(ctx, plan, planTTLHours)
	if err != nil {
		return nil, fmt.Errorf("プランの保存に失敗: %w", err)
	}
	plan.PlanID = planID

	log.Printf("🎉 プラン生成完了 (ID: %s)", planID)

	return &model.PlanResponse{
		PlanID: planID,
		Plan:   plan,
	}, nil
}

// GetPlan は指定されたplan_idのプランをFirestoreから取得する
func (u *planUseCaseImpl) GetPlan(ctx context.Context, planID string) (*model.TripPlan, error) {
	log.Printf("📖 プラン取得開始 (ID: %s)", planID)

	if u.tripPlanRepo == nil {
		return nil, fmt.Errorf("プラン保存リポジトリが未設定です")
	}

	plan, err := u.tripPlanRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("プランの取得に失敗: %w", err)
	}

	log.Printf("✅ プラン取得完了 (ID: %s)", planID)
	return plan, nil
}
