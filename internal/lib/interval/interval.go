// Package interval содержит расчёт длительности расчётного периода
// подписки по её биллинговому интервалу.
package interval

import "time"

// Period возвращает длительность расчётного периода для интервала подписки:
// 30 дней для "month", 7 дней для "week", иначе 365 дней.
//
// Отсутствующий (nil) и нераспознанный интервал попадают в годовую ветку.
func Period(v *string) time.Duration {
	if v == nil {
		return 365 * 24 * time.Hour
	}
	switch *v {
	case "month":
		return 30 * 24 * time.Hour
	case "week":
		return 7 * 24 * time.Hour
	default:
		return 365 * 24 * time.Hour
	}
}
