package domain

import (
	"errors"
	"time"
)

// GigStatus is the booking lifecycle state. Apart from leaving draft, the
// product enforces no transition ordering: a gig may move between any two
// non-draft statuses directly.
type GigStatus string

const (
	StatusDraft     GigStatus = "draft"
	StatusTentative GigStatus = "tentative"
	StatusPending   GigStatus = "pending"
	StatusAccepted  GigStatus = "accepted"
	StatusDeclined  GigStatus = "declined"
	StatusCompleted GigStatus = "completed"
	StatusInvoiced  GigStatus = "invoiced"
	StatusPaid      GigStatus = "paid"
)

var Statuses = []GigStatus{
	StatusDraft,
	StatusTentative,
	StatusPending,
	StatusAccepted,
	StatusDeclined,
	StatusCompleted,
	StatusInvoiced,
	StatusPaid,
}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == string(v) {
			return true
		}
	}

	return false
}

var (
	ErrTotalDaysMismatch = errors.New("total days must equal the number of gig dates")
)

// Session is one timed slot within a gig day, parsed from the free-text
// schedule ("18:00-20:00 Soundcheck").
type Session struct {
	Start string `firestore:"start" json:"start"`
	End   string `firestore:"end" json:"end"`
	Label string `firestore:"label,omitempty" json:"label,omitempty"`
}

// GigDate is one day of a (possibly multi-day) booking.
type GigDate struct {
	Date         time.Time `firestore:"date" json:"date"`
	ScheduleText string    `firestore:"scheduleText,omitempty" json:"scheduleText,omitempty"`
	Sessions     []Session `firestore:"sessions,omitempty" json:"sessions,omitempty"`
}

// Gig is one booking/engagement.
type Gig struct {
	ID           string     `firestore:"-" json:"id"`
	CompanyID    string     `firestore:"companyId" json:"companyId"`
	Name         string     `firestore:"name" json:"name"`
	ProjectName  string     `firestore:"projectName,omitempty" json:"projectName,omitempty"`
	GigTypeID    string     `firestore:"gigTypeId" json:"gigTypeId"`
	ClientID     string     `firestore:"clientId,omitempty" json:"clientId,omitempty"`
	PositionID   string     `firestore:"positionId,omitempty" json:"positionId,omitempty"`
	Status       GigStatus  `firestore:"status" json:"status"`
	FeeAmount    float64    `firestore:"feeAmount" json:"feeAmount"`
	TravelAmount float64    `firestore:"travelAmount" json:"travelAmount"`
	Currency     string     `firestore:"currency" json:"currency"`
	Dates        []GigDate  `firestore:"dates" json:"dates"`
	TotalDays    int        `firestore:"totalDays" json:"totalDays"`
	CompletedAt  *time.Time `firestore:"completedAt,omitempty" json:"completedAt,omitempty"`
	InvoicedAt   *time.Time `firestore:"invoicedAt,omitempty" json:"invoicedAt,omitempty"`
	PaidAt       *time.Time `firestore:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt    time.Time  `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// StartDate returns the first gig date, or the zero time for a dateless draft.
func (g *Gig) StartDate() time.Time {
	if len(g.Dates) == 0 {
		return time.Time{}
	}

	return g.Dates[0].Date
}

// EndDate returns the last gig date, or the zero time for a dateless draft.
func (g *Gig) EndDate() time.Time {
	if len(g.Dates) == 0 {
		return time.Time{}
	}

	return g.Dates[len(g.Dates)-1].Date
}

// Validate enforces the date-count invariant on writes.
func (g *Gig) Validate() error {
	if g.TotalDays != len(g.Dates) {
		return ErrTotalDaysMismatch
	}

	return nil
}
