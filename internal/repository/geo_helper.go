package repository

import (
	"github.com/paulmach/orb"

	"TabiPlan-App/internal/domain/model"
)

// GeoPoint GeoJSON POINT 型のJSON表現（Supabaseのlocationカラム）
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// LatLngToGeoPoint model.LatLng を GeoJSON POINT 形式に変換
func LatLngToGeoPoint(latLng model.LatLng) *GeoPoint {
	// orb.Point は [lng, lat] の順
	point := orb.Point{latLng.Lng, latLng.Lat}

	return &GeoPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// GeoPointToLatLng GeoJSON POINT を model.LatLng に変換
func GeoPointToLatLng(geoPoint *GeoPoint) model.LatLng {
	if geoPoint == nil || len(geoPoint.Coordinates) < 2 {
		return model.LatLng{}
	}

	point := orb.Point{geoPoint.Coordinates[0], geoPoint.Coordinates[1]}

	return model.LatLng{
		Lat: point.Lat(),
		Lng: point.Lon(),
	}
}

// placeRow Supabaseのplacesテーブルの行表現
type placeRow struct {
	ID          string    `json:"id"`
	City        string    `json:"city"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Location    *GeoPoint `json:"location"`
	Rating      float64   `json:"rating"`
	PriceLevel  int       `json:"price_level"`
	Description string    `json:"description"`
}

// ToPlace placeRowをmodel.Placeに変換
func (row *placeRow) ToPlace() model.Place {
	latLng := GeoPointToLatLng(row.Location)
	return model.Place{
		ID:          row.ID,
		City:        row.City,
		Name:        row.Name,
		Category:    row.Category,
		Lat:         latLng.Lat,
		Lng:         latLng.Lng,
		Rating:      row.Rating,
		PriceLevel:  row.PriceLevel,
		Description: row.Description,
	}
}

// PlaceToRow model.Place をSupabase保存用の行表現に変換
func PlaceToRow(place *model.Place) *placeRow {
	return &placeRow{
		ID:          place.ID,
		City:        place.City,
		Name:        place.Name,
		Category:    place.Category,
		Location:    LatLngToGeoPoint(place.ToLatLng()),
		Rating:      place.Rating,
		PriceLevel:  place.PriceLevel,
		Description: place.Description,
	}
}
