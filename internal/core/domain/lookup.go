package domain

// LookupState is the outcome of checking a cache slot.
type LookupState uint8

const (
	// LookupMiss indicates the slot was empty and the artifact was rendered.
	LookupMiss LookupState = iota
	// LookupHit indicates the artifact was already present in the slot.
	LookupHit
)

// String returns the string representation of the LookupState.
func (s LookupState) String() string {
	switch s {
	case LookupMiss:
		return "miss"
	case LookupHit:
		return "hit"
	default:
		return "unknown"
	}
}
