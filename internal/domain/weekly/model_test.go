package weekly

import (
	"testing"
	"time"
)

func TestDefaultSeason(t *testing.T) {
	t.Parallel()

	cases := []struct {
		now  time.Time
		want int
	}{
		{now: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), want: 2025},
		{now: time.Date(2025, time.December, 28, 0, 0, 0, 0, time.UTC), want: 2025},
		{now: time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), want: 2025},
		{now: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), want: 2025},
	}
	for _, tc := range cases {
		if got := DefaultSeason(tc.now); got != tc.want {
			t.Fatalf("DefaultSeason(%s)=%d want %d", tc.now.Format(time.DateOnly), got, tc.want)
		}
	}
}

func TestRecordKeys(t *testing.T) {
	t.Parallel()

	player := PlayerWeeklyRecord{Season: 2024, Week: NoWeek, PFRPlayerID: "HenrDe00"}
	if got := player.Key(); got != "2024/0/HenrDe00" {
		t.Fatalf("unexpected player key %q", got)
	}
	defense := DefenseRecord{Season: 2024, Team: "Chicago Bears"}
	if got := defense.Key(); got != "2024/Chicago Bears" {
		t.Fatalf("unexpected defense key %q", got)
	}
}
