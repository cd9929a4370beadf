package repository

import (
	"context"
	"database/sql"
	"fmt"

	"TabiPlan-App/internal/domain/model"
	"TabiPlan-App/internal/domain/repository"
	"TabiPlan-App/internal/infrastructure/database"
)

type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) repository.PlacesRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

const placeColumns = `id, city, name, category, lat, lng, rating, price_level, description`

func (r *PostgresPlacesRepository) GetAll(ctx context.Context) ([]model.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places`, placeColumns)

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

func (r *PostgresPlacesRepository) GetByCity(ctx context.Context, city string) ([]model.Place, error) {
	// 都市名は正規化済み（小文字・前後空白なし）で渡される前提
	query := fmt.Sprintf(`SELECT %s FROM places WHERE LOWER(TRIM(city)) = $1`, placeColumns)

	rows, err := r.client.DB.QueryContext(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("都市 %s のスポットデータ取得失敗: %w", city, err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

func (r *PostgresPlacesRepository) BulkCreate(ctx context.Context, places []model.Place) error {
	tx, err := r.client.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`INSERT INTO places (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, placeColumns)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("INSERT文の準備に失敗: %w", err)
	}
	defer stmt.Close()

	for _, place := range places {
		_, err := stmt.ExecContext(ctx,
			place.ID, place.City, place.Name, place.Category,
			place.Lat, place.Lng, place.Rating, place.PriceLevel, place.Description)
		if err != nil {
			return fmt.Errorf("スポット %s の作成失敗: %w", place.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミットに失敗: %w", err)
	}

	return nil
}

// scanPlaces クエリ結果をmodel.Placeのスライスに変換
func scanPlaces(rows *sql.Rows) ([]model.Place, error) {
	var places []model.Place
	for rows.Next() {
		var place model.Place
		err := rows.Scan(&place.ID, &place.City, &place.Name, &place.Category,
			&place.Lat, &place.Lng, &place.Rating, &place.PriceLevel, &place.Description)
		if err != nil {
			return nil, fmt.Errorf("スポットデータスキャンエラー: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スポットデータの読み取りエラー: %w", err)
	}

	return places, nil
}
