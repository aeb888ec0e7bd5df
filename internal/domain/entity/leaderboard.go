package entity

// LeaderboardEntry is one ranked row of the leaderboard snapshot
type LeaderboardEntry struct {
	AccountID   string
	DisplayName string
	Balance     int64
	Rank        int // 1-based
}

// RankLeaderboard assigns 1-based ranks to accounts already ordered by
// balance descending. Ties keep the incoming order; they are not given
// equal rank.
func RankLeaderboard(accounts []*Account) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(accounts))
	for i, a := range accounts {
		entries = append(entries, LeaderboardEntry{
			AccountID:   a.ID,
			DisplayName: a.DisplayName,
			Balance:     a.Balance(),
			Rank:        i + 1,
		})
	}
	return entries
}
