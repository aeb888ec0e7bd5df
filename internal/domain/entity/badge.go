package entity

// RequirementType classifies how an earnable badge is unlocked
type RequirementType string

// Requirement types
const (
	RequirementStreak  RequirementType = "streak"
	RequirementPerfect RequirementType = "perfect"
)

// Requirement describes the condition for earning a badge: reach value on
// the given counter. Category scopes streak requirements ("login" or a quiz
// category) and perfect requirements ("daily", "weekly", "monthly").
type Requirement struct {
	Type     RequirementType
	Category string
	Value    int
}

// Badge is a catalog entity, shared across all accounts and read-only to
// the engine outside catalog seeding. A badge is either purchasable
// (positive price) or earnable (non-nil requirement); the catalog does not
// hard-enforce exclusivity.
type Badge struct {
	ID          string
	Name        string
	Description string
	Price       int64 // 0 means not purchasable
	Requirement *Requirement
	Icon        string
	Color       string
}

// IsPurchasable reports whether the badge can be bought with coins
func (b *Badge) IsPurchasable() bool {
	return b.Price > 0
}

// IsEarnable reports whether the badge has an earning requirement
func (b *Badge) IsEarnable() bool {
	return b.Requirement != nil
}

// MatchesRequirement reports whether an earnable badge unlocks for the
// given requirement type, category and reached value. An empty category on
// either side matches any.
func (b *Badge) MatchesRequirement(reqType RequirementType, category string, value int) bool {
	if b.Requirement == nil {
		return false
	}
	r := b.Requirement
	if r.Type != reqType {
		return false
	}
	if category != "" && r.Category != "" && r.Category != category {
		return false
	}
	return value >= r.Value
}
