package repository

import (
	"context"

	"TabiPlan-App/internal/domain/model"
)

// TripPlanRepository 生成済みプランの永続化を抽象化するインターフェース
type TripPlanRepository interface {
	// Save プランを保存し、採番されたplan_idを返す
	Save(ctx context.Context, plan *model.TripPlan, ttlHours int) (string, error)

	// GetByID 指定されたplan_idのプランを取得する
	GetByID(ctx context.Context, planID string) (*model.TripPlan, error)
}
