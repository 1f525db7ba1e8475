package overlap

import (
	"testing"

	"github.com/SergeyKozhin/trailer-scheduler/internal/model"
)

func ev(id string, day int, start, end, resource string) *model.Event {
	return &model.Event{ID: id, Title: id, Day: day, StartTime: start, EndTime: end, ResourceID: resource}
}

func TestCheckConflictSymmetric(t *testing.T) {
	a := ev("a", 0, "09:00", "10:00", "")
	b := ev("b", 0, "09:30", "10:30", "")

	if got := CheckConflict(b, []*model.Event{a}); got != a {
		t.Fatalf("expected b to conflict with a, got %v", got)
	}
	if got := CheckConflict(a, []*model.Event{b}); got != b {
		t.Fatalf("expected a to conflict with b, got %v", got)
	}
}

func TestCheckConflictAdjacent(t *testing.T) {
	a := ev("a", 0, "09:00", "10:00", "")
	c := ev("c", 0, "10:00", "11:00", "")

	if got := CheckConflict(c, []*model.Event{a}); got != nil {
		t.Fatalf("touching events must not conflict, got %v", got)
	}
	if got := CheckConflict(a, []*model.Event{c}); got != nil {
		t.Fatalf("touching events must not conflict, got %v", got)
	}
}

func TestCheckConflictScope(t *testing.T) {
	existing := []*model.Event{
		ev("other-day", 1, "09:00", "10:00", ""),
		ev("other-resource", 0, "09:00", "10:00", "R3"),
	}

	if got := CheckConflict(ev("x", 0, "09:00", "10:00", "R2"), existing); got != nil {
		t.Fatalf("expected no conflict across scopes, got %v", got)
	}
	if got := CheckConflict(ev("x", 0, "09:15", "09:45", "R3"), existing); got != existing[1] {
		t.Fatalf("expected conflict within R3, got %v", got)
	}
	if got := CheckConflict(ev("x", 0, "09:15", "09:45", ""), existing); got != nil {
		t.Fatalf("unscoped candidate must ignore scoped events, got %v", got)
	}
}

func TestCheckConflictIgnoresSelf(t *testing.T) {
	a := ev("a", 0, "09:00", "10:00", "")
	edit := ev("a", 0, "09:30", "10:30", "")

	if got := CheckConflict(edit, []*model.Event{a}); got != nil {
		t.Fatalf("editing must not conflict with itself, got %v", got)
	}
}

func TestCheckConflictFirstInOrder(t *testing.T) {
	first := ev("first", 0, "09:00", "09:30", "")
	second := ev("second", 0, "09:30", "10:00", "")

	got := CheckConflict(ev("x", 0, "08:00", "11:00", ""), []*model.Event{first, second})
	if got != first {
		t.Fatalf("expected first conflicting event in store order, got %v", got)
	}
	if got := CheckConflict(ev("x", 0, "08:00", "11:00", ""), nil); got != nil {
		t.Fatalf("expected nil on empty set")
	}
}

func TestOccupied(t *testing.T) {
	events := []*model.Event{
		ev("a", 0, "09:00", "10:00", "R2"),
		ev("b", 1, "09:00", "09:15", ""),
	}

	if !Occupied(events, 0, "R2", "09:45") {
		t.Fatalf("09:45 should be occupied on R2")
	}
	if Occupied(events, 0, "R3", "09:15") {
		t.Fatalf("R2 booking must not occupy R3")
	}
	if Occupied(events, 0, "", "09:15") {
		t.Fatalf("scoped booking must not occupy the unscoped grid")
	}
	if Occupied(events, 0, "R2", "10:00") {
		t.Fatalf("end slot should be free")
	}
	if !Occupied(events, 1, "", "09:00") || Occupied(events, 1, "", "09:15") {
		t.Fatalf("unscoped occupancy wrong")
	}
}

func TestSlotSpan(t *testing.T) {
	if n := SlotSpan(ev("a", 0, "09:00", "10:00", ""), 15); n != 4 {
		t.Fatalf("SlotSpan = %d, want 4", n)
	}
	if n := SlotSpan(ev("odd", 0, "09:00", "09:20", ""), 15); n != 2 {
		t.Fatalf("SlotSpan rounds up, got %d", n)
	}
	if n := SlotSpan(ev("bad", 0, "9:00", "10:00", ""), 15); n != 0 {
		t.Fatalf("SlotSpan of malformed event = %d", n)
	}
}
