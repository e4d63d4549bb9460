package engine

import (
	"time"

	"pixelquest/internal/storage"
)

// DateLayout is the calendar-date form kept on the profile for the daily
// reset comparison. Time of day never participates.
const DateLayout = "2006-01-02"

func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// ApplyDailyReset clears the completed flag on daily-period tasks when the
// profile was last active on an earlier calendar day, and stamps the profile
// with today. Once-period tasks are untouched. Calling it again with the
// same date is a no-op, so the reset cannot double-apply.
func ApplyDailyReset(p *storage.Profile, tasks []storage.Task, today string) (reset bool) {
	if p.LastActiveDate == today {
		return false
	}
	for i := range tasks {
		if tasks[i].Period == string(PeriodDaily) {
			tasks[i].Completed = false
		}
	}
	p.LastActiveDate = today
	return true
}
