package utils

import "time"

const (
	storedDateLayout  = "2006-01-02"
	displayDateLayout = "Jan 2006"
)

// FormatStartDate converts a stored "YYYY-MM-DD" date into "Mon YYYY".
// Anything that does not parse, including the empty string, yields "".
func FormatStartDate(date string) string {
	if date == "" {
		return ""
	}
	parsed, err := time.Parse(storedDateLayout, date)
	if err != nil {
		return ""
	}
	return parsed.Format(displayDateLayout)
}
