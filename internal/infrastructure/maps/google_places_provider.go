package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"TabiPlan-App/internal/domain/model"
)

// 検索結果の最大件数（1カテゴリあたり）
const maxResultsPerSearch = 20

// GooglePlacesProvider はGoogle Geocoding / Places APIを使用した外部スポット検索の実装
type GooglePlacesProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// categoryToGoogleType は自前のカテゴリからGoogle Placesのtypeパラメータへのマッピング
var categoryToGoogleType = map[string]string{
	model.CategorySights:    "tourist_attraction",
	model.CategoryMuseum:    "museum",
	model.CategoryFood:      "restaurant",
	model.CategoryNature:    "park",
	model.CategoryShopping:  "shopping_mall",
	model.CategoryNightlife: "night_club",
}

// googleTypeToCategory はGoogle Placesのtypeから自前の7カテゴリへの静的マッピング
// 未知のtypeはactivity扱いになる
var googleTypeToCategory = map[string]string{
	"tourist_attraction": model.CategorySights,
	"museum":             model.CategoryMuseum,
	"restaurant":         model.CategoryFood,
	"food":               model.CategoryFood,
	"park":               model.CategoryNature,
	"shopping_mall":      model.CategoryShopping,
	"store":              model.CategoryShopping,
	"night_club":         model.CategoryNightlife,
	"bar":                model.CategoryNightlife,
}

// Search は目的地をジオコーディングし、指定カテゴリ・半径で周辺スポットを検索する
// APIキー未設定の場合はエラーではなく空リストを返す（フォールバックの契約に合わせる）
func (g *GooglePlacesProvider) Search(ctx context.Context, destination, category string, radiusMeters int) ([]model.ExternalPlace, error) {
	if g.apiKey == "" {
		return nil, nil
	}

	// 1. 目的地の座標を取得
	center, err := g.geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("目的地のジオコーディングに失敗: %w", err)
	}

	// 2. 周辺検索のURLを構築
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("key", g.apiKey)
	if category != "" {
		googleType, ok := categoryToGoogleType[category]
		if !ok {
			googleType = "tourist_attraction"
		}
		params.Set("type", googleType)
	}
	reqURL := fmt.Sprintf("https://maps.googleapis.com/maps/api/place/nearbysearch/json?%s", params.Encode())

	// 3. HTTPリクエストを作成・実行
	var apiResp nearbySearchResponse
	if err := g.getJSON(ctx, reqURL, &apiResp); err != nil {
		return nil, fmt.Errorf("周辺スポット検索に失敗: %w", err)
	}

	// 4. ドメインモデルに変換して返す
	results := apiResp.Results
	if len(results) > maxResultsPerSearch {
		results = results[:maxResultsPerSearch]
	}

	places := make([]model.ExternalPlace, 0, len(results))
	for _, result := range results {
		rating := result.Rating
		if rating == 0 {
			rating = 4.0
		}
		priceLevel := 2
		if result.PriceLevel != nil {
			priceLevel = *result.PriceLevel
		}
		places = append(places, model.ExternalPlace{
			Name:        result.Name,
			Category:    mapGoogleTypes(result.Types),
			Lat:         result.Geometry.Location.Lat,
			Lng:         result.Geometry.Location.Lng,
			Rating:      rating,
			PriceLevel:  priceLevel,
			Description: result.Vicinity,
		})
	}

	return places, nil
}

// geocode は住所文字列から座標を取得する
func (g *GooglePlacesProvider) geocode(ctx context.Context, address string) (model.LatLng, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("https://maps.googleapis.com/maps/api/geocode/json?%s", params.Encode())

	var apiResp geocodeResponse
	if err := g.getJSON(ctx, reqURL, &apiResp); err != nil {
		return model.LatLng{}, err
	}

	if len(apiResp.Results) == 0 {
		return model.LatLng{}, errors.New("ジオコーディング結果が空です")
	}

	location := apiResp.Results[0].Geometry.Location
	return model.LatLng{Lat: location.Lat, Lng: location.Lng}, nil
}

// getJSON はGETリクエストを実行してJSONレスポンスをパースする
func (g *GooglePlacesProvider) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	return nil
}

// mapGoogleTypes はGoogle Placesのtypeリストを自前のカテゴリに変換する
func mapGoogleTypes(types []string) string {
	for _, googleType := range types {
		if category, ok := googleTypeToCategory[googleType]; ok {
			return category
		}
	}
	return model.CategoryActivity
}

// --- Google Maps APIのレスポンスをパースするための構造体 ---

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}
type geocodeResult struct {
	Geometry resultGeometry `json:"geometry"`
}
type nearbySearchResponse struct {
	Results      []nearbyResult `json:"results"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}
type nearbyResult struct {
	Name       string         `json:"name"`
	Types      []string       `json:"types"`
	Geometry   resultGeometry `json:"geometry"`
	Rating     float64        `json:"rating"`
	PriceLevel *int           `json:"price_level"`
	Vicinity   string         `json:"vicinity"`
}
type resultGeometry struct {
	Location latLngLiteral `json:"location"`
}
type latLngLiteral struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
