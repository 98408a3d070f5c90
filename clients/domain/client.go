package domain

import "time"

// Client is an invoice recipient: a venue, agency or private customer.
type Client struct {
	ID        string    `firestore:"-"`
	CompanyID string    `firestore:"companyId"`
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Country   string    `firestore:"country"`
	VatNumber string    `firestore:"vatNumber"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

// MatchResult is a ranked client name similarity outcome. Confidence is in
// the 0..1 range; Suggestions are the runner-up candidates for manual pick.
type MatchResult struct {
	ClientID    string       `json:"clientId"`
	Confidence  float64      `json:"confidence"`
	Suggestions []Suggestion `json:"suggestions"`
}

type Suggestion struct {
	ClientID   string  `json:"clientId"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}
