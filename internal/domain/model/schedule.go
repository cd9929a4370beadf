package model

import "time"

// ScheduledItem 1日のスケジュールに割り当てられた予定
// Day SchedulerがTimeOfDayのスロットを割り当てて生成し、所有権は呼び出し側に移る
type ScheduledItem struct {
	Day          string    `json:"day"` // ISO日付 (YYYY-MM-DD)
	Title        string    `json:"title"`
	Type         string    `json:"type"` // カテゴリ
	LocationName string    `json:"location_name"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	StartTime    TimeOfDay `json:"start_time"`
	EndTime      TimeOfDay `json:"end_time"`
	Notes        string    `json:"notes,omitempty"`
}

// DayPlan 1日分のスケジュール（ISO日付キーと時系列順の予定リスト）
type DayPlan struct {
	Date  string          `json:"date"`
	Items []ScheduledItem `json:"items"`
}

// Schedule プラン生成の唯一の出力
// 旅行期間の各日をカレンダー順に1エントリずつ持つ
type Schedule struct {
	Days []DayPlan `json:"days"`
}

// ItemsFor 指定したISO日付の予定リストを取得する
func (s *Schedule) ItemsFor(date string) ([]ScheduledItem, bool) {
	for _, day := range s.Days {
		if day.Date == date {
			return day.Items, true
		}
	}
	return nil, false
}

// DayKeys 全日付キーをカレンダー順で返す
func (s *Schedule) DayKeys() []string {
	keys := make([]string, len(s.Days))
	for i, day := range s.Days {
		keys[i] = day.Date
	}
	return keys
}

// TotalItems 全日の予定数の合計を返す
func (s *Schedule) TotalItems() int {
	total := 0
	for _, day := range s.Days {
		total += len(day.Items)
	}
	return total
}

// TripPlan 生成済みプランの永続化単位
type TripPlan struct {
	PlanID      string    `json:"plan_id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"` // ISO日付
	EndDate     string    `json:"end_date"`   // ISO日付
	Pace        string    `json:"pace"`
	Schedule    *Schedule `json:"schedule"`
}

// FirestoreScheduledItem Firestore保存用の予定（時刻は "15:04" 文字列）
type FirestoreScheduledItem struct {
	Day          string   `firestore:"day"`
	Title        string   `firestore:"title"`
	Type         string   `firestore:"type"`
	LocationName string   `firestore:"location_name"`
	Lat          *float64 `firestore:"lat,omitempty"`
	Lng          *float64 `firestore:"lng,omitempty"`
	StartTime    string   `firestore:"start_time"`
	EndTime      string   `firestore:"end_time"`
	Notes        string   `firestore:"notes,omitempty"`
}

// FirestoreDayPlan Firestore保存用の1日分スケジュール
type FirestoreDayPlan struct {
	Date  string                   `firestore:"date"`
	Items []FirestoreScheduledItem `firestore:"items"`
}

// FirestoreTripPlan Firestore保存用のプランドキュメント
type FirestoreTripPlan struct {
	Name        string             `firestore:"name"`
	Destination string             `firestore:"destination"`
	StartDate   string             `firestore:"start_date"`
	EndDate     string             `firestore:"end_date"`
	Pace        string             `firestore:"pace"`
	Days        []FirestoreDayPlan `firestore:"days"`
	CreatedAt   time.Time          `firestore:"created_at"`
	ExpiresAt   time.Time          `firestore:"expires_at"`
}

// ToFirestoreTripPlan TripPlanをFirestore保存用に変換する（TTL時間付き）
func (tp *TripPlan) ToFirestoreTripPlan(ttlHours int) *FirestoreTripPlan {
	now := time.Now()
	fsPlan := &FirestoreTripPlan{
		Name:        tp.Name,
		Destination: tp.Destination,
		StartDate:   tp.StartDate,
		EndDate:     tp.EndDate,
		Pace:        tp.Pace,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(ttlHours) * time.Hour),
	}
	if tp.Schedule == nil {
		return fsPlan
	}
	for _, day := range tp.Schedule.Days {
		fsDay := FirestoreDayPlan{Date: day.Date}
		for _, item := range day.Items {
			fsDay.Items = append(fsDay.Items, FirestoreScheduledItem{
				Day:          item.Day,
				Title:        item.Title,
				Type:         item.Type,
				LocationName: item.LocationName,
				Lat:          item.Lat,
				Lng:          item.Lng,
				StartTime:    item.StartTime.String(),
				EndTime:      item.EndTime.String(),
				Notes:        item.Notes,
			})
		}
		fsPlan.Days = append(fsPlan.Days, fsDay)
	}
	return fsPlan
}

// ToTripPlan FirestoreTripPlanをTripPlanに変換する
func (fp *FirestoreTripPlan) ToTripPlan(planID string) (*TripPlan, error) {
	schedule := &Schedule{}
	for _, fsDay := range fp.Days {
		day := DayPlan{Date: fsDay.Date}
		for _, fsItem := range fsDay.Items {
			startTime, err := ParseTimeOfDay(fsItem.StartTime)
			if err != nil {
				return nil, err
			}
			endTime, err := ParseTimeOfDay(fsItem.EndTime)
			if err != nil {
				return nil, err
			}
			day.Items = append(day.Items, ScheduledItem{
				Day:          fsItem.Day,
				Title:        fsItem.Title,
				Type:         fsItem.Type,
				LocationName: fsItem.LocationName,
				Lat:          fsItem.Lat,
				Lng:          fsItem.Lng,
				StartTime:    startTime,
				EndTime:      endTime,
				Notes:        fsItem.Notes,
			})
		}
		schedule.Days = append(schedule.Days, day)
	}
	return &TripPlan{
		PlanID:      planID,
		Name:        fp.Name,
		Destination: fp.Destination,
		StartDate:   fp.StartDate,
		EndDate:     fp.EndDate,
		Pace:        fp.Pace,
		Schedule:    schedule,
	}, nil
}
