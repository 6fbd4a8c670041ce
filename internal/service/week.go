package service

import (
	"regexp"
	"time"

	"github.com/bagdasarian/tuesday/internal/domain"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ParseDate разбирает дату в формате YYYY-MM-DD (UTC).
// Строки вида "2026-02-30" отклоняются.
func ParseDate(value string) (time.Time, bool) {
	if !datePattern.MatchString(value) {
		return time.Time{}, false
	}

	date, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// StartOfWeek возвращает понедельник недели, в которую попадает t (полночь UTC)
func StartOfWeek(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	offset := 1 - int(day.Weekday())
	if day.Weekday() == time.Sunday {
		offset = -6
	}

	return day.AddDate(0, 0, offset)
}

// BucketByWeekday раскладывает задачи по семи дням начиная с weekStart.
// Все семь дней присутствуют всегда, даже пустые.
func BucketByWeekday(weekStart time.Time, tasks []*domain.OverviewTask) []domain.WeekDay {
	days := make([]domain.WeekDay, 0, len(weekdayNames))

	for i, name := range weekdayNames {
		date := FormatDate(weekStart.AddDate(0, 0, i))

		dayTasks := make([]domain.OverviewTask, 0)
		for _, task := range tasks {
			if task.Deadline == date {
				dayTasks = append(dayTasks, *task)
			}
		}

		days = append(days, domain.WeekDay{
			Weekday: name,
			Date:    date,
			Tasks:   dayTasks,
		})
	}

	return days
}
