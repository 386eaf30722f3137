package pfr

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	idNameReplacer = strings.NewReplacer(" ", "", ".", "", "'", "")
)

// cleanPlayer drops the award markers PFR appends to names (* Pro Bowl,
// + All-Pro) and collapses whitespace.
func cleanPlayer(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*+")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// playerID takes the id from a /players/M/McCaCh01.htm link, or derives one
// from the name when the cell has no player link.
func playerID(href, name string) string {
	if strings.HasPrefix(href, playerLinkPrefix) && strings.HasSuffix(href, playerLinkExtension) {
		last := href[strings.LastIndex(href, "/")+1:]
		if id := strings.TrimSuffix(last, playerLinkExtension); id != "" {
			return id
		}
	}
	return idNameReplacer.Replace(strings.ToLower(cleanPlayer(name)))
}
