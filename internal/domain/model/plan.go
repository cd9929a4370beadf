package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay 深夜0時からの経過分で時刻を表す型（日付を持たない）
// 加算で1440分を超えても折り返さず、日次終了時刻との比較でそのまま超過扱いになる
type TimeOfDay int

// NewTimeOfDay 時と分からTimeOfDayを作成
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay "15:04" 形式の文字列からTimeOfDayを作成
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("時刻のパースに失敗: %w", err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// Add 分を加算した新しいTimeOfDayを返す
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Before tがotherより前かどうか
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After tがotherより後かどうか
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// String "15:04" 形式の文字列表現を返す
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ErrInvalidDateRange は終了日が開始日より前の場合のバリデーションエラー
var ErrInvalidDateRange = errors.New("終了日は開始日以降である必要があります")

// PlanParams プラン生成のパラメータ（入口で一度だけ検証し、生成中は不変）
type PlanParams struct {
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"` // 終了日を含む
	Interests   []string   `json:"interests"`
	DailyStart  TimeOfDay  `json:"daily_start"`
	DailyEnd    TimeOfDay  `json:"daily_end"`
	LunchAt     *TimeOfDay `json:"lunch_at,omitempty"`
	Pace        string     `json:"pace"`         // relaxed|standard|packed
	BudgetLevel *int       `json:"budget_level"` // 0〜4（以下でフィルタ）
	Origin      string     `json:"origin,omitempty"`
	Name        string     `json:"name,omitempty"`
	UseExternal bool       `json:"use_external"` // 外部検索フォールバックの明示要求
	CountryMode bool       `json:"country_mode"` // 広域検索モード
}

// NewPlanParams デフォルト値（9:00〜19:00、昼食13:00、standard）でパラメータを作成する
// 興味カテゴリが空の場合は全カテゴリを対象にする
func NewPlanParams(destination string, startDate, endDate time.Time, interests []string) *PlanParams {
	if len(interests) == 0 {
		interests = GetAllCategories()
	}
	lunchAt := NewTimeOfDay(13, 0)
	return &PlanParams{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Interests:   interests,
		DailyStart:  NewTimeOfDay(9, 0),
		DailyEnd:    NewTimeOfDay(19, 0),
		LunchAt:     &lunchAt,
		Pace:        PaceStandard,
	}
}

// Validate パラメータを検証する（日付範囲の逆転のみが致命的エラー）
func (p *PlanParams) Validate() error {
	if p.TripDays() <= 0 {
		return ErrInvalidDateRange
	}
	return nil
}

// TripDays 旅行日数を計算する（両端を含む）
func (p *PlanParams) TripDays() int {
	start := truncateToDate(p.StartDate)
	end := truncateToDate(p.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}

// DayKey i日目（0始まり）のISO日付キーを返す
func (p *PlanParams) DayKey(dayIndex int) string {
	return truncateToDate(p.StartDate).AddDate(0, 0, dayIndex).Format("2006-01-02")
}

// NormalizedCity 目的地を正規化した都市名を返す（最初のカンマの前・小文字化）
func (p *PlanParams) NormalizedCity() string {
	return NormalizeCity(p.Destination)
}

// CatalogCity 外部検索で発見したスポットをカタログに保存するときの都市名
// （最初のカンマの前・元の大文字小文字を維持）
func (p *PlanParams) CatalogCity() string {
	return strings.TrimSpace(strings.SplitN(p.Destination, ",", 2)[0])
}

// NormalizeCity 都市名を比較用に正規化する
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(strings.SplitN(city, ",", 2)[0]))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
