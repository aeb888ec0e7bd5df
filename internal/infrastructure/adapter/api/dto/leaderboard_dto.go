package dto

import (
	"github.com/vitacoin/rewards-engine/internal/domain/entity"
)

// LeaderboardEntryResponse is one ranked row of GET /leaderboard
type LeaderboardEntryResponse struct {
	Rank        int    `json:"rank"`
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
	Balance     int64  `json:"balance"`
}

// NewLeaderboardResponses maps leaderboard entries to their response shape
func NewLeaderboardResponses(entries []entity.LeaderboardEntry) []LeaderboardEntryResponse {
	out := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, LeaderboardEntryResponse{
			Rank:        e.Rank,
			AccountID:   e.AccountID,
			DisplayName: e.DisplayName,
			Balance:     e.Balance,
		})
	}
	return out
}
