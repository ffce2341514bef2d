package utils

import "time"

const (
	DateLayoutISO  = "2006-01-02"
	TimeLayoutHHMM = "15:04"
)

// ParseDateTime combines a "2006-01-02" date and a "15:04" clock into a
// single time.Time in the given location.
func ParseDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayoutISO+" "+TimeLayoutHHMM, dateStr+" "+timeStr, loc)
}
