package espn

import (
	"net/url"
	"strings"
)

const DefaultBaseURL = "https://www.espn.com"

var slugReplacer = strings.NewReplacer(" ", "-", ".", "", "'", "")

// PlayerSlug turns a display name into ESPN's URL segment:
// "Amon-Ra St. Brown" becomes "amon-ra-st-brown". Every space maps to a
// hyphen, surrounding ones included.
func PlayerSlug(name string) string {
	return slugReplacer.Replace(strings.ToLower(name))
}

// GameLogURL builds the NFL game-log page URL. The slug is cosmetic; ESPN
// resolves the page by id alone, so it is omitted when name is empty.
func GameLogURL(baseURL, playerID, playerName string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	out := baseURL + "/nfl/player/gamelog/_/id/" + url.PathEscape(strings.TrimSpace(playerID))
	if slug := PlayerSlug(strings.TrimSpace(playerName)); slug != "" {
		out += "/" + url.PathEscape(slug)
	}
	return out
}
