package model

import (
	"fmt"
	"time"
)

// PlanRequest プラン生成リクエスト（上位レイヤーから受け取るDTO）
type PlanRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"` // ISO日付 (YYYY-MM-DD)
	EndDate     string   `json:"end_date"`   // ISO日付 (YYYY-MM-DD)
	Interests   []string `json:"interests,omitempty"`
	DailyStart  string   `json:"daily_start,omitempty"` // "15:04" 形式
	DailyEnd    string   `json:"daily_end,omitempty"`
	LunchAt     string   `json:"lunch_at,omitempty"`
	Pace        string   `json:"pace,omitempty"`
	BudgetLevel *int     `json:"budget_level,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	Name        string   `json:"name,omitempty"`
	UseExternal bool     `json:"use_external,omitempty"`
	CountryMode bool     `json:"country_mode,omitempty"`
}

// ToPlanParams リクエストをPlanParamsに変換する（未指定項目はデフォルト値）
func (r *PlanRequest) ToPlanParams() (*PlanParams, error) {
	startDate, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("開始日のパースに失敗: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("終了日のパースに失敗: %w", err)
	}

	params := NewPlanParams(r.Destination, startDate, endDate, r.Interests)
	params.Pace = r.Pace
	if params.Pace == "" {
		params.Pace = PaceStandard
	}
	params.BudgetLevel = r.BudgetLevel
	params.Origin = r.Origin
	params.Name = r.Name
	params.UseExternal = r.UseExternal
	params.CountryMode = r.CountryMode

	if r.DailyStart != "" {
		if params.DailyStart, err = ParseTimeOfDay(r.DailyStart); err != nil {
			return nil, fmt.Errorf("日次開始時刻のパースに失敗: %w", err)
		}
	}
	if r.DailyEnd != "" {
		if params.DailyEnd, err = ParseTimeOfDay(r.DailyEnd); err != nil {
			return nil, fmt.Errorf("日次終了時刻のパースに失敗: %w", err)
		}
	}
	if r.LunchAt != "" {
		lunchAt, err := ParseTimeOfDay(r.LunchAt)
		if err != nil {
			return nil, fmt.Errorf("昼食時刻のパースに失敗: %w", err)
		}
		params.LunchAt = &lunchAt
	}

	return params, nil
}

// PlanResponse プラン生成レスポンス
type PlanResponse struct {
	PlanID string    `json:"plan_id"`
	Plan   *TripPlan `json:"plan"`
}
