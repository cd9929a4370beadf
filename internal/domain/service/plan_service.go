package service

import (
	"context"
	"fmt"
	"log"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/repository"
)

// PlanSuggestionService は旅行プラン生成のオーケストレーションを行う単一のサービス
// 1回の呼び出しが1つのプランに対応し、呼び出し間で状態を持たない
type PlanSuggestionService interface {
	GeneratePlan(ctx context.Context, params *model.PlanParams) (*model.Schedule, error)
}

type planSuggestionService struct {
	placesRepo      repository.PlacesRepository
	fallbackService PlaceFallbackService // nilの場合は外部フォールバック無効
}

// NewPlanSuggestionService は新しいPlanSuggestionServiceインスタンスを作成
func NewPlanSuggestionService(placesRepo repository.PlacesRepository, fallbackService PlaceFallbackService) PlanSuggestionService {
	return &planSuggestionService{
		placesRepo:      placesRepo,
		fallbackService: fallbackService,
	}
}

// selectionTier は段階的緩和カスケードの1段（選抜述語と説明のペア）
// 上から順に評価し、候補が1件でも得られた段の結果を採用する
type selectionTier struct {
	name string
	pick func(ctx context.Context) ([]model.Place, error)
}

func (s *planSuggestionService) selectionTiers(params *model.PlanParams, count int) []selectionTier {
	cityNorm := params.NormalizedCity()
	return []selectionTier{
		{
			// 都市の完全一致＋興味カテゴリ＋予算上限
			name: "exact",
			pick: func(ctx context.Context) ([]model.Place, error) {
				places, err := s.placesRepo.GetByCity(ctx, cityNorm)
				if err != nil {
					return nil, err
				}
				return PickPlaces(places, params.Destination, params.Interests, count, params.BudgetLevel), nil
			},
		},
		{
			// 都市の完全一致のみ（興味・予算フィルタを外す）
			name: "relaxed",
			pick: func(ctx context.Context) ([]model.Place, error) {
				places, err := s.placesRepo.GetByCity(ctx, cityNorm)
				if err != nil {
					return nil, err
				}
				return PickPlaces(places, params.Destination, nil, count, nil), nil
			},
		},
		{
			// 都市名の部分一致（フィルタなし）
			name: "loose",
			pick: func(ctx context.Context) ([]model.Place, error) {
				places, err := s.placesRepo.GetAll(ctx)
				if err != nil {
					return nil, err
				}
				return PickLoosePlaces(places, params.Destination, count), nil
			},
		},
	}
}

// GeneratePlan はプラン生成の唯一のエントリーポイント
// 候補選抜→（必要なら）外部フォールバック→日ごとの経路決定＋スケジュール割り当てを行う
// 候補ゼロはエラーではなく、空の1日リストを持つスケジュールとして返す
func (s *planSuggestionService) GeneratePlan(ctx context.Context, params *model.PlanParams) (*model.Schedule, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	days := params.TripDays()
	perDay := model.DailyCapacityFor(params.Pace)
	totalNeeded := days * perDay

	pool, err := s.selectCandidates(ctx, params, totalNeeded)
	if err != nil {
		return nil, err
	}

	// プールが空、または外部検索が明示要求された場合にフォールバックへ昇格する
	// この経路の失敗はログに残すだけで呼び出し側には伝えない（空のプールで続行）
	if len(pool) == 0 || params.UseExternal || params.CountryMode {
		pool = s.escalateToFallback(ctx, params, totalNeeded, pool)
	}

	schedule := &model.Schedule{Days: make([]model.DayPlan, 0, days)}
	idx := 0
	for dayIndex := 0; dayIndex < days; dayIndex++ {
		dayKey := params.DayKey(dayIndex)
		end := idx + perDay
		if end > len(pool) {
			end = len(pool)
		}
		todays := pool[idx:end]
		idx = end

		schedule.Days = append(schedule.Days, model.DayPlan{
			Date:  dayKey,
			Items: s.buildDay(dayKey, todays, params),
		})
	}

	return schedule, nil
}

// selectCandidates は緩和カスケードを上から順に評価して候補プールを確保する
func (s *planSuggestionService) selectCandidates(ctx context.Context, params *model.PlanParams, count int) ([]model.Place, error) {
	for _, tier := range s.selectionTiers(params, count) {
		picked, err := tier.pick(ctx)
		if err != nil {
			return nil, fmt.Errorf("候補選抜 '%s' でカタログの読み込みに失敗: %w", tier.name, err)
		}
		if len(picked) > 0 {
			log.Printf("✅ 選抜段 '%s' で%d件の候補を確保 (目的地: %s)", tier.name, len(picked), params.Destination)
			return picked, nil
		}
	}
	return nil, nil
}

// escalateToFallback は外部検索でカタログを補充し、成功した場合のみプールを選び直す
// 失敗は呼び出し側の契約に漏らさず、手元のプールのまま続行する
func (s *planSuggestionService) escalateToFallback(ctx context.Context, params *model.PlanParams, count int, pool []model.Place) []model.Place {
	if s.fallbackService == nil {
		return pool
	}

	discovered, err := s.fallbackService.FetchAndStore(ctx, params)
	if err != nil {
		log.Printf("⚠️ 外部フォールバックに失敗、現在のプールで続行: %v", err)
		return pool
	}
	if len(discovered) == 0 {
		return pool
	}

	// 登録後は完全一致段（興味＋予算あり）でのみ選び直す
	places, err := s.placesRepo.GetByCity(ctx, params.NormalizedCity())
	if err != nil {
		log.Printf("⚠️ フォールバック後の再選抜に失敗、現在のプールで続行: %v", err)
		return pool
	}
	return PickPlaces(places, params.Destination, params.Interests, count, params.BudgetLevel)
}

// buildDay は1日分の経路決定とスケジュール割り当てを行う
// 1日分のデータ異常が他の日に波及しないよう、panicはその日を空にして回復する
func (s *planSuggestionService) buildDay(day string, places []model.Place, params *model.PlanParams) (items []model.ScheduledItem) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️ %s のスケジュール構築に失敗、空の1日として継続: %v", day, r)
			items = nil
		}
	}()

	ordered := NearestNeighborOrder(places)
	return ScheduleDay(day, ordered, params)
}
