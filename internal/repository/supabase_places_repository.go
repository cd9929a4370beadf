package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/repository"
	"TabiPlan-App/internal/infrastructure/database"
)

type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlacesRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

func (r *SupabasePlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	data, count, err := r.client.GetClient().From("places").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	_ = count

	return unmarshalPlaceRows([]byte(data))
}

func (r *SupabasePlacesRepository) GetByCity(ctx context.Context, city string) ([]model.Place, error) {
	// 正規化済み都市名との大文字小文字を無視した一致
	data, count, err := r.client.GetClient().From("places").
		Select("*", "exact", false).
		Ilike("city", city).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("都市 %s のスポットデータ取得失敗: %w", city, err)
	}
	_ = count

	return unmarshalPlaceRows([]byte(data))
}

func (r *SupabasePlacesRepository) BulkCreate(ctx context.Context, places []model.Place) error {
	rows := make([]*placeRow, 0, len(places))
	for i := range places {
		rows = append(rows, PlaceToRow(&places[i]))
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("スポット一括データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("places").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("スポット一括データの作成失敗: %w", err)
	}

	return nil
}

// unmarshalPlaceRows Supabaseのレスポンスをmodel.Placeのスライスに変換
func unmarshalPlaceRows(data []byte) ([]model.Place, error) {
	var rows []placeRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	places := make([]model.Place, 0, len(rows))
	for i := range rows {
		places = append(places, rows[i].ToPlace())
	}
	return places, nil
}
