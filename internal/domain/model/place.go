package model

// LatLng 緯度経度を表す基本的な型（距離計算や経路順序決定で使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place 旅行プランの候補となるスポットを表すモデル（カタログが所有する）
type Place struct {
	ID          string  `json:"id" db:"id"`                     // ユニークなスポットID
	City        string  `json:"city" db:"city"`                 // 都市名
	Name        string  `json:"name" db:"name"`                 // スポット名
	Category    string  `json:"category" db:"category"`         // カテゴリ（単一文字列）
	Lat         float64 `json:"lat" db:"lat"`                   // 緯度
	Lng         float64 `json:"lng" db:"lng"`                   // 経度
	Rating      float64 `json:"rating" db:"rating"`             // 評価値（高いほど良い）
	PriceLevel  int     `json:"price_level" db:"price_level"`   // 価格帯（0〜4）
	Description string  `json:"description" db:"description"`   // 説明文
}

// ToLatLng Placeの位置情報をLatLng型に変換
func (p *Place) ToLatLng() LatLng {
	return LatLng{Lat: p.Lat, Lng: p.Lng}
}

// Geometry GeoJSON POINT型に対応する構造体（Supabase側の位置カラム表現）
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

type Location struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// ToGeometry Location を GeoJSON POINT 型に変換
func (l *Location) ToGeometry() *Geometry {
	return &Geometry{
		Type:        "Point",
		Coordinates: []float64{l.Longitude, l.Latitude},
	}
}

// FromGeometry GeoJSON POINT 型から Location に変換
func (l *Location) FromGeometry(g *Geometry) {
	if g != nil && len(g.Coordinates) >= 2 {
		l.Longitude = g.Coordinates[0]
		l.Latitude = g.Coordinates[1]
	}
}

// ExternalPlace 外部スポット検索サービスから取得した生のスポット情報
type ExternalPlace struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Rating      float64 `json:"rating"`
	PriceLevel  int     `json:"price_level"`
	Description string  `json:"description"`
}
