package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/vantis-uk/vantis/pkg/domain/types"
)

func TestRiskTier_IsValid(t *testing.T) {
	tests := []struct {
		name string
		tier types.RiskTier
		want bool
	}{
		{name: "critical", tier: types.RiskTierCritical, want: true},
		{name: "ambiguous", tier: types.RiskTierAmbiguous, want: true},
		{name: "exposed", tier: types.RiskTierExposed, want: true},
		{name: "lowercase", tier: types.RiskTier("critical"), want: false},
		{name: "empty", tier: types.RiskTier(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.V(t, tt.tier.IsValid()).Equal(tt.want)
		})
	}
}

func TestRiskTier_Label(t *testing.T) {
	gt.S(t, types.RiskTierCritical.Label()).Equal("CRITICAL RISK")
	gt.S(t, types.RiskTierAmbiguous.Label()).Equal("DANGEROUS AMBIGUITY")
	gt.S(t, types.RiskTierExposed.Label()).Equal("POTENTIAL EXPOSURE")
	gt.S(t, types.RiskTier("unknown").Label()).Equal("")
}

func TestRiskTier_Description(t *testing.T) {
	for _, tier := range types.AllRiskTiers() {
		gt.S(t, tier.Description()).NotEqual("")
	}
	gt.S(t, types.RiskTier("unknown").Description()).Equal("")
}

func TestParseRiskTier(t *testing.T) {
	got, err := types.ParseRiskTier("AMBIGUOUS")
	gt.NoError(t, err)
	gt.V(t, got).Equal(types.RiskTierAmbiguous)

	_, err = types.ParseRiskTier("SEVERE")
	gt.Error(t, err)
}
