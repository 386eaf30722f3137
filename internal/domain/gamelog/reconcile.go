package gamelog

import "math"

// Reconcile picks the season totals for a game log. A published aggregate
// row is authoritative; without one the detail rows are summed. With
// neither, the totals are zero.
func Reconcile(games []GameRecord, aggregate *SeasonTotals) SeasonTotals {
	if aggregate != nil {
		return *aggregate
	}
	return SumRushing(games)
}

func SumRushing(games []GameRecord) SeasonTotals {
	var totals SeasonTotals
	for _, game := range games {
		totals.Carries += game.Rushing.Carries
		totals.Yards += game.Rushing.Yards
		totals.Touchdowns += game.Rushing.Touchdowns
	}
	totals.Average = YardsPerCarry(totals.Yards, totals.Carries)
	return totals
}

// YardsPerCarry rounds to one decimal and is 0 without carries.
func YardsPerCarry(yards, carries int) float64 {
	if carries <= 0 {
		return 0
	}
	return math.Round(float64(yards)/float64(carries)*10) / 10
}
