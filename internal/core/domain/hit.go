package domain

// HitState classifies the outcome of a restore lookup relative to the
// primary key and restore chain.
type HitState int

const (
	// HitMiss means no key matched.
	HitMiss HitState = iota
	// HitPartial means a restore-chain prefix matched, but not the primary key.
	HitPartial
	// HitExact means the primary key matched.
	HitExact
)

// String returns the lower-case name of the hit state.
func (h HitState) String() string {
	switch h {
	case HitExact:
		return "exact"
	case HitPartial:
		return "partial"
	default:
		return "miss"
	}
}

// ClassifyHit maps a store lookup result onto a HitState. An empty matched
// key is a miss; the primary key itself is an exact hit; anything else is a
// partial hit via the restore chain.
func ClassifyHit(matchedKey, primaryKey string) HitState {
	switch matchedKey {
	case "":
		return HitMiss
	case primaryKey:
		return HitExact
	default:
		return HitPartial
	}
}
