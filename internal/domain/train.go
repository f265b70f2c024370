package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TravelDateLayout is the yyyy-MM-dd format used for travel dates.
const TravelDateLayout = "2006-01-02"

// TrainRoute is a scheduled service between two stations. Reverse trips are
// separate routes with their own TrainID.
type TrainRoute struct {
	TrainID       string
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
	OperatingDays string
}

var dayAbbreviations = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

// Serves reports whether the route runs from origin to destination, ignoring case.
func (t TrainRoute) Serves(origin, destination string) bool {
	return strings.EqualFold(t.Origin, origin) && strings.EqualFold(t.Destination, destination)
}

// OperatesOn matches OperatingDays against day by substring: "daily", "weekends"
// or the three-letter day abbreviation. A range such as "Mon-Fri" only matches
// its two endpoints.
func (t TrainRoute) OperatesOn(day time.Weekday) bool {
	days := strings.ToLower(t.OperatingDays)

	if strings.Contains(days, "daily") {
		return true
	}
	if strings.Contains(days, "weekends") && (day == time.Saturday || day == time.Sunday) {
		return true
	}
	abbr, ok := dayAbbreviations[day]
	return ok && strings.Contains(days, abbr)
}

var travelDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseTravelDate parses a yyyy-MM-dd travel date. Month must be 1-12 and day
// 1-31; a day past the end of the month is clamped to its last day, so
// 2025-02-30 resolves to 2025-02-28.
func ParseTravelDate(value string) (time.Time, error) {
	parts := travelDatePattern.FindStringSubmatch(value)
	if parts == nil {
		return time.Time{}, fmt.Errorf("travel date %q: want %s", value, TravelDateLayout)
	}

	year, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	day, _ := strconv.Atoi(parts[3])
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("travel date %q: out of range", value)
	}

	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
