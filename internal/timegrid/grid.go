package timegrid

import (
	"time"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
)

var dayNames = [model.FullWeekDays]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Grid describes the addressable days and slots of a week view.
type Grid struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
	Days        int
	Now         func() time.Time
}

type Label struct {
	Slot  string
	Label string
}

func NewGrid(startHour, endHour, slotMinutes int, includeWeekend bool) *Grid {
	days := model.WorkWeekDays
	if includeWeekend {
		days = model.FullWeekDays
	}

	return &Grid{
		StartHour:   startHour,
		EndHour:     endHour,
		SlotMinutes: slotMinutes,
		Days:        days,
		Now:         time.Now,
	}
}

func (g *Grid) Slots() []string {
	return GenerateSlots(g.StartHour, g.EndHour, g.SlotMinutes)
}

// Labels pairs every slot with its label. Only whole and half hours are labelled.
func (g *Grid) Labels() []Label {
	slots := g.Slots()
	res := make([]Label, len(slots))
	for i, s := range slots {
		res[i] = Label{Slot: s}

		m, err := ParseClock(s)
		if err != nil {
			continue
		}
		if m%30 == 0 {
			res[i].Label = SlotLabel(s)
		}
	}

	return res
}

func (g *Grid) DayNames() []string {
	return dayNames[:g.days()]
}

// ValidDay reports whether day indexes one of the grid days.
func (g *Grid) ValidDay(day int) bool {
	return day >= 0 && day < g.days()
}

// WeekDates returns the dates of the grid days for the week containing Now,
// shifted by offset whole weeks.
func (g *Grid) WeekDates(offset int) []time.Time {
	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	mondayOffset := 1 - int(today.Weekday())
	if today.Weekday() == time.Sunday {
		mondayOffset = -6
	}
	monday := today.AddDate(0, 0, mondayOffset+offset*7)

	dates := make([]time.Time, g.days())
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}

	return dates
}

func (g *Grid) days() int {
	if g.Days == model.FullWeekDays {
		return model.FullWeekDays
	}
	return model.WorkWeekDays
}
