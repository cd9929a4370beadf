package repository

import (
	"context"

	"TabiPlan-App/internal/domain/model"
)

// PlacesRepository スポットカタログへのアクセスを抽象化するインターフェース
// プランコアからは読み取りと追記のみを行う（更新・削除はCRUDレイヤーの責務）
type PlacesRepository interface {
	// GetAll 全スポットを取得する
	GetAll(ctx context.Context) ([]model.Place, error)

	// GetByCity 正規化済み都市名に一致するスポットを取得する
	GetByCity(ctx context.Context, city string) ([]model.Place, error)

	// BulkCreate 外部検索で発見したスポットを一括登録する
	BulkCreate(ctx context.Context, places []model.Place) error
}
