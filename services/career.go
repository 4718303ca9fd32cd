package services

import "courtside/models"

// computeCareerStats folds a player's stat lines from completed games into
// career totals and averages. Percentages come from summed made over summed
// attempted, never from averaging per-game percentages.
func computeCareerStats(playerID uint, statLines []models.GameStats) CareerStats {
	career := CareerStats{PlayerID: playerID}

	var ftm, fta, tpm, tpa, thm, tha int
	for i := range statLines {
		line := &statLines[i]
		career.GamesPlayed++
		career.TotalPoints += line.Points()
		career.TotalRebounds += line.TotalRebounds()
		career.TotalAssists += line.Assists
		career.TotalSteals += line.Steals
		career.TotalBlocks += line.Blocks
		ftm += line.FreeThrowsMade
		fta += line.FreeThrowsAttempted
		tpm += line.TwoPointsMade
		tpa += line.TwoPointsAttempted
		thm += line.ThreePointsMade
		tha += line.ThreePointsAttempted
	}

	if career.GamesPlayed > 0 {
		games := float64(career.GamesPlayed)
		career.PointsPerGame = float64(career.TotalPoints) / games
		career.ReboundsPerGame = float64(career.TotalRebounds) / games
		career.AssistsPerGame = float64(career.TotalAssists) / games
	}
	career.FreeThrowPercentage = models.ShootingPercentage(ftm, fta)
	career.TwoPointPercentage = models.ShootingPercentage(tpm, tpa)
	career.ThreePointPercentage = models.ShootingPercentage(thm, tha)

	return career
}
