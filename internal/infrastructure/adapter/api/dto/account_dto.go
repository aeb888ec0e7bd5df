package dto

import (
	"time"

	"github.com/vitacoin/rewards-engine/internal/domain/entity"
)

// SignupRequest is the body of POST /accounts
type SignupRequest struct {
	ID          string `json:"id" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
}

// AccountResponse is the full account aggregate as seen by the UI
type AccountResponse struct {
	ID               string           `json:"id"`
	DisplayName      string           `json:"displayName"`
	Balance          int64            `json:"balance"`
	LoginStreak      int              `json:"loginStreak"`
	LastBonusClaim   *time.Time       `json:"lastBonusClaim,omitempty"`
	LastLoginDate    *time.Time       `json:"lastLoginDate,omitempty"`
	QuizStreaks      map[string]int   `json:"quizStreaks"`
	TotalQuizCorrect map[string]int   `json:"totalQuizCorrect"`
	Badges           []string         `json:"badges"`
	PerfectDays      int              `json:"perfectDays"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// NewAccountResponse maps an account entity to its response shape
func NewAccountResponse(a *entity.Account) AccountResponse {
	streaks := make(map[string]int, len(a.QuizStreaks))
	correct := make(map[string]int, len(a.TotalQuizCorrect))
	for c, v := range a.QuizStreaks {
		streaks[string(c)] = v
	}
	for c, v := range a.TotalQuizCorrect {
		correct[string(c)] = v
	}
	return AccountResponse{
		ID:               a.ID,
		DisplayName:      a.DisplayName,
		Balance:          a.Balance(),
		LoginStreak:      a.LoginStreak,
		LastBonusClaim:   a.LastBonusClaim,
		LastLoginDate:    a.LastLoginDate,
		QuizStreaks:      streaks,
		TotalQuizCorrect: correct,
		Badges:           a.Badges,
		PerfectDays:      a.PerfectDays,
		CreatedAt:        a.CreatedAt,
	}
}

// LedgerEntryResponse is one row of GET /accounts/:accountId/ledger
type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Direction   string    `json:"direction"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewLedgerEntryResponses maps ledger entries to their response shape
func NewLedgerEntryResponses(entries []*entity.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, LedgerEntryResponse{
			ID:          e.ID,
			Amount:      e.Amount,
			Description: e.Description,
			Category:    string(e.Category),
			Direction:   string(e.Direction),
			CreatedAt:   e.CreatedAt,
		})
	}
	return out
}

// NotificationResponse is one row of GET /accounts/:accountId/notifications
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewNotificationResponses maps notifications to their response shape
func NewNotificationResponses(notifications []*entity.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

// LedgerVerificationResponse is the result of the ledger invariant check
type LedgerVerificationResponse struct {
	AccountID  string `json:"accountId"`
	Consistent bool   `json:"consistent"`
}
