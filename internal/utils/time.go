package utils

import "time"

const layoutDate = "2006-01-02"

// Today returns the current date as YYYY-MM-DD in local timezone.
func Today() string {
	return time.Now().In(time.Local).Format(layoutDate)
}
