package timegrid

import (
	"testing"
	"time"
)

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots(7, 19, 15)
	if len(slots) != 49 {
		t.Fatalf("expected 49 slots, got %d", len(slots))
	}
	if slots[0] != "07:00" || slots[len(slots)-1] != "19:00" {
		t.Fatalf("unexpected bounds %s..%s", slots[0], slots[len(slots)-1])
	}

	prev, _ := ParseClock(slots[0])
	for _, s := range slots[1:] {
		m, err := ParseClock(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		if m-prev != 15 {
			t.Fatalf("slot %s is %d minutes after previous", s, m-prev)
		}
		prev = m
	}
}

func TestGenerateSlotsInvalid(t *testing.T) {
	if s := GenerateSlots(10, 9, 15); s != nil {
		t.Errorf("expected nil for inverted hours, got %v", s)
	}
	if s := GenerateSlots(7, 19, 0); s != nil {
		t.Errorf("expected nil for zero step, got %v", s)
	}
}

func TestSlotLabel(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:45": "12:45 AM",
		"07:05": "7:05 AM",
		"12:00": "12:00 PM",
		"13:15": "1:15 PM",
		"23:59": "11:59 PM",
		"bogus": "bogus",
	}

	for in, want := range cases {
		if got := SlotLabel(in); got != want {
			t.Errorf("SlotLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseClockRejects(t *testing.T) {
	for _, in := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12:00:00"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("09:00", 15)
	if err != nil || got != "09:15" {
		t.Fatalf("AddMinutes(09:00, 15) = %q, %v", got, err)
	}
	got, err = AddMinutes("23:50", 15)
	if err != nil || got != "23:59" {
		t.Fatalf("expected cap at 23:59, got %q, %v", got, err)
	}
	if _, err := AddMinutes("nope", 15); err == nil {
		t.Fatalf("expected error for bad clock")
	}
}

func fixedGrid(now time.Time) *Grid {
	g := NewGrid(7, 19, 15, false)
	g.Now = func() time.Time { return now }
	return g
}

func TestWeekDates(t *testing.T) {
	// 2024-01-10 is a Wednesday.
	g := fixedGrid(time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC))
	dates := g.WeekDates(0)
	if len(dates) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(dates))
	}
	if !dates[0].Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected monday 2024-01-08, got %v", dates[0])
	}
	if dates[4].Weekday() != time.Friday {
		t.Fatalf("expected friday last, got %v", dates[4].Weekday())
	}
}

func TestWeekDatesSunday(t *testing.T) {
	g := fixedGrid(time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC))
	dates := g.WeekDates(0)
	if !dates[0].Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("sunday should map to monday six days prior, got %v", dates[0])
	}
}

func TestWeekDatesOffset(t *testing.T) {
	g := fixedGrid(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	next := g.WeekDates(1)
	if !next[0].Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("next week monday = %v", next[0])
	}
	prev := g.WeekDates(-1)
	if !prev[0].Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("previous week monday = %v", prev[0])
	}
	if got := RangeLabel(g.WeekDates(0)); got != "Jan 8 - Jan 12" {
		t.Fatalf("RangeLabel = %q", got)
	}
}

func TestFullWeek(t *testing.T) {
	g := NewGrid(7, 19, 15, true)
	g.Now = func() time.Time { return time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC) }

	dates := g.WeekDates(0)
	if len(dates) != 7 || dates[6].Weekday() != time.Sunday {
		t.Fatalf("expected monday..sunday, got %v", dates)
	}
	if names := g.DayNames(); len(names) != 7 || names[6] != "Sunday" {
		t.Fatalf("unexpected day names %v", names)
	}
	if !g.ValidDay(6) || g.ValidDay(7) {
		t.Fatalf("ValidDay range wrong")
	}
}

func TestLabels(t *testing.T) {
	labels := NewGrid(7, 8, 15, false).Labels()
	want := []string{"7:00 AM", "", "7:30 AM", "", "8:00 AM"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i, l := range labels {
		if l.Label != want[i] {
			t.Errorf("label %d (%s) = %q, want %q", i, l.Slot, l.Label, want[i])
		}
	}
}
