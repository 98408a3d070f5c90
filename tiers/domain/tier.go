package domain

import (
	"github.com/gigwell/scheduled-tasks/slice"
)

// FeatureKey identifies one gated capability.
type FeatureKey string

const (
	FeatureInvoicing     FeatureKey = "invoicing"
	FeatureReceiptImport FeatureKey = "receipt-import"
	FeatureTeamMembers   FeatureKey = "team-members"
)

// Tier is one subscription level. Companies reference a tier by document id.
type Tier struct {
	ID           string   `firestore:"-"`
	Name         string   `firestore:"name"`
	MaxMembers   int      `firestore:"maxMembers"`
	Entitlements []string `firestore:"entitlements"`
}

// HasEntitlement reports whether the tier grants a feature.
func (t *Tier) HasEntitlement(key FeatureKey) bool {
	return slice.Contains(t.Entitlements, string(key))
}
