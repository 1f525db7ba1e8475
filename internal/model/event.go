package model

const (
	WorkWeekDays = 5
	FullWeekDays = 7
)

type Event struct {
	ID          string
	Title       string
	Description string
	Day         int
	StartTime   string
	EndTime     string
	Color       string
	ResourceID  string
}

// Copy returns a detached copy of the event.
func (e *Event) Copy() *Event {
	c := *e
	return &c
}

type Color struct {
	Name  string
	Value string
}

// Palette lists the colors an event may be displayed with.
var Palette = []Color{
	{Name: "Purple", Value: "#8B5CF6"},
	{Name: "Orange", Value: "#F97316"},
	{Name: "Blue", Value: "#0EA5E9"},
	{Name: "Green", Value: "#22C55E"},
	{Name: "Red", Value: "#EF4444"},
}

func IsPaletteColor(value string) bool {
	for _, c := range Palette {
		if c.Value == value {
			return true
		}
	}
	return false
}

type EventsFilter struct {
	ResourceID string
	Day        *int
}

func (f EventsFilter) Match(e *Event) bool {
	if f.ResourceID != "" && e.ResourceID != f.ResourceID {
		return false
	}
	if f.Day != nil && e.Day != *f.Day {
		return false
	}
	return true
}
