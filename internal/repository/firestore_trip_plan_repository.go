package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/repository"
)

// FirestoreTripPlanRepository Firestoreを使用した生成済みプランの保存リポジトリ
type FirestoreTripPlanRepository struct {
	client *firestore.Client
}

// NewFirestoreTripPlanRepository 新しいFirestoreTripPlanRepositoryインスタンスを作成
func NewFirestoreTripPlanRepository(client *firestore.Client) repository.TripPlanRepository {
	return &FirestoreTripPlanRepository{
		client: client,
	}
}

// Save は生成済みプランをFirestoreに保存し、plan_idを採番して返す
func (r *FirestoreTripPlanRepository) Save(ctx context.Context, plan *model.TripPlan, ttlHours int) (string, error) {
	planID := fmt.Sprintf("plan_%s", uuid.New().String())

	firestoreData := plan.ToFirestoreTripPlan(ttlHours)

	_, err := r.client.Collection("tripPlans").Doc(planID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save trip plan %s: %v", planID, err)
		return "", fmt.Errorf("プランの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Trip plan saved: %s (expires in %d hours)", planID, ttlHours)
	return planID, nil
}

// GetByID は指定されたplan_idのプランをFirestoreから取得する
func (r *FirestoreTripPlanRepository) GetByID(ctx context.Context, planID string) (*model.TripPlan, error) {
	doc, err := r.client.Collection("tripPlans").Doc(planID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("プランが見つかりません（有効期限切れまたは無効なID）: %s", planID)
		}
		return nil, fmt.Errorf("プランの取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreTripPlan
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	plan, err := firestoreData.ToTripPlan(planID)
	if err != nil {
		return nil, fmt.Errorf("プランの復元に失敗しました: %w", err)
	}

	log.Printf("✅ Trip plan retrieved: %s", planID)
	return plan, nil
}
