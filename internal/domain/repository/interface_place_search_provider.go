package repository

import (
	"context"

	"TabiPlan-App/internal/domain/model"
)

// PlaceSearchProvider 外部スポット検索サービスを抽象化するインターフェース
// 失敗や空結果はあり得る前提で、呼び出し側（フォールバック）が吸収する
type PlaceSearchProvider interface {
	// Search 目的地をジオコーディングし、指定カテゴリ・半径でスポットを検索する
	Search(ctx context.Context, destination, category string, radiusMeters int) ([]model.ExternalPlace, error)
}
