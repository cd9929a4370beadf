package service

import (
	"TabiPlan-App/internal/domain/model"
)

// ScheduleDay は経路順に並んだスポットを日次の時間枠に割り当てる
// カーソルを日次開始時刻から進め、昼食時刻が現在のスロットに掛かる場合は
// 60分の昼食を1日1回だけ挿入する。終了時刻が日次終了を超える予定は置かず、
// そこでその日の割り当てを打ち切る（残りのスポットは翌日に繰り越さない）。
func ScheduleDay(day string, places []model.Place, params *model.PlanParams) []model.ScheduledItem {
	cursor := params.DailyStart
	lunchAdded := false
	var items []model.ScheduledItem

	for _, place := range places {
		duration := model.DurationMinutesFor(place.Category, params.Pace)
		endTime := cursor.Add(duration)

		if params.LunchAt != nil && !lunchAdded && !cursor.After(*params.LunchAt) && !params.LunchAt.After(endTime) {
			lunchEnd := params.LunchAt.Add(model.LunchDurationMinutes)
			// 昼食自体が日次終了を超える場合は挿入しない
			if !lunchEnd.After(params.DailyEnd) {
				items = append(items, model.ScheduledItem{
					Day:          day,
					Title:        model.LunchTitle,
					Type:         model.CategoryFood,
					LocationName: "TBD",
					StartTime:    *params.LunchAt,
					EndTime:      lunchEnd,
				})
				cursor = lunchEnd
				endTime = cursor.Add(duration)
				lunchAdded = true
			}
		}

		if endTime.After(params.DailyEnd) {
			break
		}

		lat := place.Lat
		lng := place.Lng
		items = append(items, model.ScheduledItem{
			Day:          day,
			Title:        place.Name,
			Type:         place.Category,
			LocationName: place.Name,
			Lat:          &lat,
			Lng:          &lng,
			StartTime:    cursor,
			EndTime:      endTime,
			Notes:        place.Description,
		})
		cursor = endTime
	}

	return items
}
