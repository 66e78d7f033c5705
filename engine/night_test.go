package engine_test

import (
	"testing"

	"github.com/turno/shift-engine/colombia"
)

func TestNightHours_WindowBoundaries(t *testing.T) {
	// GIVEN: The 21:00-06:00 night window, both boundary hours included
	// WHEN: Counting night hours for shifts touching the boundaries
	// THEN: Hours 21 and 6 both count; hours 20 and 7 do not

	rules := colombia.Rules()

	cases := []struct {
		start, end string
		want       int
	}{
		{"18:00", "23:00", 2},  // hours 21, 22
		{"20:00", "21:00", 0},  // hour 20 only; end hour exclusive
		{"21:00", "22:00", 1},  // hour 21
		{"06:00", "07:00", 1},  // hour 6 still inside the window
		{"07:00", "08:00", 0},  // hour 7 outside
		{"09:00", "17:00", 0},  // all daytime
		{"22:30", "23:45", 1},  // minutes ignored; only hour 22 is stepped
	}
	for _, c := range cases {
		got := rules.NightHours(clock(t, c.start), clock(t, c.end))
		if got != c.want {
			t.Errorf("NightHours(%s, %s) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestNightHours_WrapsAcrossMidnight(t *testing.T) {
	// The window itself wraps: a hypothetical 22:00-02:00 span steps
	// 22, 23, 0, 1 and finds all four inside the window.
	rules := colombia.Rules()

	if got := rules.NightHours(clock(t, "22:00"), clock(t, "02:00")); got != 4 {
		t.Errorf("NightHours(22:00, 02:00) = %d, want 4", got)
	}
	if got := rules.NightHours(clock(t, "23:00"), clock(t, "07:00")); got != 8 {
		// 23, 0, 1, 2, 3, 4, 5, 6 all count
		t.Errorf("NightHours(23:00, 07:00) = %d, want 8", got)
	}
}

func TestNightHours_EqualHours_YieldsZero(t *testing.T) {
	// Start and end sharing an hour produce zero steps, regardless of minutes.
	rules := colombia.Rules()
	if got := rules.NightHours(clock(t, "22:15"), clock(t, "22:45")); got != 0 {
		t.Errorf("NightHours(22:15, 22:45) = %d, want 0", got)
	}
}

func TestIsNightHour_FullDay(t *testing.T) {
	rules := colombia.Rules()
	for hour := 0; hour < 24; hour++ {
		want := hour >= 21 || hour <= 6
		if got := rules.IsNightHour(hour); got != want {
			t.Errorf("IsNightHour(%d) = %v, want %v", hour, got, want)
		}
	}
}
