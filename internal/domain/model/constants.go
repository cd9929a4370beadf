package model

// CategoryConstants はアプリケーションで使用するスポットカテゴリの定数
const (
	CategorySights    = "sights"
	CategoryMuseum    = "museum"
	CategoryFood      = "food"
	CategoryNature    = "nature"
	CategoryShopping  = "shopping"
	CategoryNightlife = "nightlife"
	CategoryActivity  = "activity"
)

// PaceConstants はアプリケーションで使用するペースの定数
const (
	PaceRelaxed  = "relaxed"
	PaceStandard = "standard"
	PacePacked   = "packed"
)

// CategoryDurationMinutes はカテゴリごとの基本滞在時間（分）
var CategoryDurationMinutes = map[string]int{
	CategorySights:    120,
	CategoryMuseum:    180,
	CategoryNature:    120,
	CategoryShopping:  90,
	CategoryFood:      60,
	CategoryNightlife: 120,
	CategoryActivity:  90,
}

// PaceMultiplier はペースごとの滞在時間の倍率
var PaceMultiplier = map[string]float64{
	PaceRelaxed:  1.2,
	PaceStandard: 1.0,
	PacePacked:   0.8,
}

// PaceDailyCapacity はペースごとの1日あたりの最大スポット数
var PaceDailyCapacity = map[string]int{
	PaceRelaxed:  5,
	PaceStandard: 6,
	PacePacked:   8,
}

// FallbackCategories は興味カテゴリ未指定時に外部検索で使用するデフォルトカテゴリ
var FallbackCategories = []string{
	CategorySights,
	CategoryMuseum,
	CategoryFood,
	CategoryNature,
	CategoryShopping,
}

// 外部検索の半径と昼食の固定値
const (
	CityRadiusMeters     = 50000
	CountryRadiusMeters  = 150000
	LunchDurationMinutes = 60
	LunchTitle           = "Lunch Break"
)

// GetAllCategories は全カテゴリの一覧を取得する
func GetAllCategories() []string {
	return []string{
		CategorySights,
		CategoryMuseum,
		CategoryFood,
		CategoryNature,
		CategoryShopping,
		CategoryNightlife,
		CategoryActivity,
	}
}

// DurationMinutesFor はカテゴリとペースから滞在時間（分）を計算する
// 未知のカテゴリはactivity扱い、未知のペースはstandard扱い
func DurationMinutesFor(category, pace string) int {
	base, ok := CategoryDurationMinutes[category]
	if !ok {
		base = CategoryDurationMinutes[CategoryActivity]
	}
	mult, ok := PaceMultiplier[pace]
	if !ok {
		mult = PaceMultiplier[PaceStandard]
	}
	return int(float64(base) * mult)
}

// DailyCapacityFor はペースから1日あたりの最大スポット数を取得する
func DailyCapacityFor(pace string) int {
	if capacity, ok := PaceDailyCapacity[pace]; ok {
		return capacity
	}
	return PaceDailyCapacity[PaceStandard]
}
