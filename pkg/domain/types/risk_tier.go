package types

import "fmt"

// RiskTier is the qualitative band an audit percentage falls into
type RiskTier string

const (
	RiskTierCritical  RiskTier = "CRITICAL"
	RiskTierAmbiguous RiskTier = "AMBIGUOUS"
	RiskTierExposed   RiskTier = "EXPOSED"
)

// AllRiskTiers returns all tiers, most severe first
func AllRiskTiers() []RiskTier {
	return []RiskTier{
		RiskTierCritical,
		RiskTierAmbiguous,
		RiskTierExposed,
	}
}

// IsValid checks if the tier is valid
func (t RiskTier) IsValid() bool {
	switch t {
	case RiskTierCritical,
		RiskTierAmbiguous,
		RiskTierExposed:
		return true
	default:
		return false
	}
}

// Label returns the headline shown with the result
func (t RiskTier) Label() string {
	switch t {
	case RiskTierCritical:
		return "CRITICAL RISK"
	case RiskTierAmbiguous:
		return "DANGEROUS AMBIGUITY"
	case RiskTierExposed:
		return "POTENTIAL EXPOSURE"
	default:
		return ""
	}
}

// Description returns the explanatory copy shown under the label
func (t RiskTier) Description() string {
	switch t {
	case RiskTierCritical:
		return "Your current contractor arrangements show strong indicators of disguised employment. " +
			"HMRC is likely to treat these engagements as inside IR35, exposing you to back taxes, " +
			"National Insurance contributions, interest and penalties. Immediate action is recommended."
	case RiskTierAmbiguous:
		return "Your arrangements sit in a grey area. Some engagements may be judged inside IR35 and a " +
			"status determination could go either way. Ambiguity is where most costly disputes start, " +
			"so a structured review of your contracts and working practices is strongly advised."
	case RiskTierExposed:
		return "Your answers show fewer indicators of disguised employment, but no arrangement is risk free. " +
			"Working practices drift over time and a single misclassified engagement can trigger an inquiry. " +
			"Keep your determinations documented and review them regularly."
	default:
		return ""
	}
}

// String returns the string representation of the tier
func (t RiskTier) String() string {
	return string(t)
}

// ParseRiskTier parses a string into a RiskTier
func ParseRiskTier(s string) (RiskTier, error) {
	tier := RiskTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid risk tier: %s", s)
	}
	return tier, nil
}
