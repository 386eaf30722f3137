package espn

import "testing"

func TestPlayerSlug(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Derrick Henry":     "derrick-henry",
		"Amon-Ra St. Brown": "amon-ra-st-brown",
		"Ja'Marr Chase":     "jamarr-chase",
		"D.J. Moore":        "dj-moore",
		" Derrick Henry":    "-derrick-henry",
		"":                  "",
	}
	for name, want := range cases {
		if got := PlayerSlug(name); got != want {
			t.Fatalf("PlayerSlug(%q)=%q want %q", name, got, want)
		}
	}
}

func TestGameLogURL(t *testing.T) {
	t.Parallel()

	got := GameLogURL("https://www.espn.com/", "3043078", "Derrick Henry")
	if got != "https://www.espn.com/nfl/player/gamelog/_/id/3043078/derrick-henry" {
		t.Fatalf("unexpected url %q", got)
	}

	got = GameLogURL("https://www.espn.com", "3043078", "  Derrick Henry ")
	if got != "https://www.espn.com/nfl/player/gamelog/_/id/3043078/derrick-henry" {
		t.Fatalf("expected the name hint to be trimmed before slugging, got %q", got)
	}

	got = GameLogURL("", "3043078", "")
	if got != "https://www.espn.com/nfl/player/gamelog/_/id/3043078" {
		t.Fatalf("unexpected url without name %q", got)
	}
}
