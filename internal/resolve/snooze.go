package resolve

import "time"

// Snooze moves a due time forward by the chosen offset. Offsets always
// point forward from the current due time, so there is no future check.
func Snooze(dueAt time.Time, minutes int) time.Time {
	return dueAt.Add(time.Duration(minutes) * time.Minute)
}
