package domain

import "github.com/google/uuid"

// UserSubscription is the per-user set of subscribed tickers as stored in
// the subscription document store. Tickers behave as a set: duplicate adds
// are no-ops and insertion order is preserved for display. Removing the
// last ticker keeps the record with an empty list so the userId mapping
// survives.
type UserSubscription struct {
	UserID  uuid.UUID `json:"user_id"`
	Tickers []string  `json:"tickers"`
}

// Contains reports membership of ticker in the subscription set.
func (s *UserSubscription) Contains(ticker string) bool {
	for _, t := range s.Tickers {
		if t == ticker {
			return true
		}
	}
	return false
}
