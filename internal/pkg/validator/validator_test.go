package validator

import "testing"

func TestValidator(t *testing.T) {
	v := New()
	v.Check(true, "title", "never")
	if !v.Valid() {
		t.Fatalf("expected valid")
	}

	v.Check(false, "title", "first")
	v.Check(false, "title", "second")
	if v.Valid() || v.Errors["title"] != "first" {
		t.Fatalf("expected first message kept, got %v", v.Errors)
	}
}

func TestMatches(t *testing.T) {
	if !Matches("#8B5CF6", HexRX) || Matches("8B5CF6", HexRX) {
		t.Fatalf("HexRX mismatch")
	}
	for _, c := range []string{"00:00", "09:15", "23:59"} {
		if !Matches(c, ClockRX) {
			t.Errorf("%s should match", c)
		}
	}
	for _, c := range []string{"24:00", "9:15", "12:60"} {
		if Matches(c, ClockRX) {
			t.Errorf("%s should not match", c)
		}
	}
	if !In("b", "a", "b") || In("c", "a", "b") {
		t.Fatalf("In mismatch")
	}
}
