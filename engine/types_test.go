package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/turno/shift-engine/engine"
)

func TestParseDays_RoundTrip(t *testing.T) {
	set, err := engine.ParseDays([]string{"monday", "WEDNESDAY", " Friday "})
	if err != nil {
		t.Fatalf("ParseDays: %v", err)
	}

	for _, d := range []time.Weekday{time.Monday, time.Wednesday, time.Friday} {
		if !set.Has(d) {
			t.Errorf("set should contain %s", d)
		}
	}
	if set.Has(time.Tuesday) || set.Has(time.Sunday) {
		t.Error("set contains days that were never added")
	}

	got := set.List()
	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseDays_UnknownName(t *testing.T) {
	_, err := engine.ParseDays([]string{"monday", "someday"})
	if !errors.Is(err, engine.ErrMalformedTime) {
		t.Fatalf("expected ErrMalformedTime, got %v", err)
	}
}

func TestDaySet_Intersects(t *testing.T) {
	weekdays := engine.Days(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	weekend := engine.Days(time.Saturday, time.Sunday)

	if weekdays.Intersects(weekend) {
		t.Error("weekdays and weekend should not intersect")
	}
	if !weekdays.Intersects(engine.Days(time.Friday, time.Saturday)) {
		t.Error("sets sharing Friday should intersect")
	}
	if engine.DaySet(0).Intersects(weekdays) {
		t.Error("the empty set intersects nothing")
	}
}

func TestHoursFromMinutes_ExactFractions(t *testing.T) {
	// Minutes divide exactly under decimal arithmetic; 90 minutes is
	// precisely 1.5 hours with no binary float drift.
	cases := []struct {
		minutes int
		want    float64
	}{
		{0, 0},
		{60, 1},
		{90, 1.5},
		{45, 0.75},
		{510, 8.5},
	}
	for _, c := range cases {
		got := engine.HoursFromMinutes(c.minutes)
		if !got.Value.Equal(engine.Hours(c.want).Value) {
			t.Errorf("HoursFromMinutes(%d) = %v, want %v", c.minutes, got.Value, c.want)
		}
	}
}

func TestAmount_ClampZero(t *testing.T) {
	if got := engine.Hours(-3).ClampZero(); !got.IsZero() {
		t.Errorf("expected 0, got %v", got.Value)
	}
	if got := engine.Hours(3).ClampZero(); !got.Value.Equal(engine.Hours(3).Value) {
		t.Errorf("positive amounts pass through, got %v", got.Value)
	}
}
