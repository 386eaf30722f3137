package pfr

// Positions of td cells in the #fantasy table. The rank column is a th and
// is not counted.
const (
	fantasyTableID      = "fantasy"
	colName             = 0
	colTeam             = 1
	colPosition         = 2
	colPassYards        = 5
	colPassTD           = 6
	colPassInt          = 7
	colRushYards        = 9
	colRushTD           = 10
	colReceptions       = 12
	colRecYards         = 13
	colRecTD            = 14
	colFantasyPoints    = 16
	fantasyRowWidth     = colFantasyPoints + 1
	teamStatsTableID    = "team_stats"
	colDefenseTeam      = 0
	colPointsAllowed    = 3
	colYardsAllowed     = 4
	defenseRowWidth     = colYardsAllowed + 1
	dataCellSelector    = "td"
	playerLinkPrefix    = "/players/"
	playerLinkExtension = ".htm"
)
