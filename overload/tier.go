package overload

import "fmt"

// Tier orders overload entries. Lower tiers are more specific and win.
type Tier uint8

const (
	// TierAbsent holds the no-op entry for values that are absent at runtime.
	TierAbsent Tier = iota
	// TierPrimary holds exact-type entries and the value's own methods.
	TierPrimary
	// TierStructural holds generic derivations from a smaller capability.
	TierStructural
	// TierLastResort holds defaults that apply to anything.
	TierLastResort
)

// Tiers lists every tier in resolution order.
var Tiers = [...]Tier{TierAbsent, TierPrimary, TierStructural, TierLastResort}

func (t Tier) String() string {
	switch t {
	case TierAbsent:
		return "absent"
	case TierPrimary:
		return "primary"
	case TierStructural:
		return "structural"
	case TierLastResort:
		return "last-resort"
	default:
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
}

// ParseTier is the inverse of Tier.String.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tier: %q", s)
}

// MarshalText lets tiers render by name in text and yaml output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
