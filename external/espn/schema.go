package espn

// Column positions of a game-log detail row.
const (
	colDate         = 0
	colOpponent     = 1
	colResult       = 2
	colCarries      = 3
	colRushYards    = 4
	colRushAverage  = 5
	colRushTD       = 6
	colReceptions   = 8
	colTargets      = 9
	colRecYards     = 10
	colRecTD        = 12
	detailRowWidth  = colRecTD + 1
	totalsRowLabel  = "Regular Season Stats"
	totalsCarries   = 1
	totalsYards     = 2
	totalsAverage   = 3
	totalsTD        = 4
	totalsRowWidth  = totalsTD + 1
	titleNameSuffix = " Game Log"
	unknownPlayer   = "Unknown"
)
