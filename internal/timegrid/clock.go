package timegrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	lastMinute     = minutesPerDay - 1
)

// ParseClock converts a 24-hour "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock %q: want HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return hour*minutesPerHour + minute, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)
}

// AddMinutes shifts a clock by n minutes, staying within the same day.
func AddMinutes(clock string, n int) (string, error) {
	m, err := ParseClock(clock)
	if err != nil {
		return "", err
	}

	m += n
	switch {
	case m > lastMinute:
		m = lastMinute
	case m < 0:
		m = 0
	}

	return FormatClock(m), nil
}

// SlotLabel renders "HH:MM" as a 12-hour "h:MM AM/PM" label.
func SlotLabel(slot string) string {
	m, err := ParseClock(slot)
	if err != nil {
		return slot
	}

	hour, minute := m/minutesPerHour, m%minutesPerHour

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}

// GenerateSlots lists slot starts from startHour:00 through endHour:00 inclusive.
func GenerateSlots(startHour, endHour, stepMinutes int) []string {
	if stepMinutes <= 0 || startHour < 0 || endHour > 24 || endHour < startHour {
		return nil
	}

	end := endHour * minutesPerHour
	if end > lastMinute {
		end = lastMinute
	}

	var slots []string
	for m := startHour * minutesPerHour; m <= end; m += stepMinutes {
		slots = append(slots, FormatClock(m))
	}

	return slots
}

func FormatDate(t time.Time) string {
	return t.Format("Jan 2")
}

// RangeLabel renders the first and last date of a week, e.g. "Oct 19 - Oct 23".
func RangeLabel(dates []time.Time) string {
	if len(dates) == 0 {
		return ""
	}
	return FormatDate(dates[0]) + " - " + FormatDate(dates[len(dates)-1])
}
