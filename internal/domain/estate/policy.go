// Package estate holds the cross-cutting planning rules: the forced spousal
// share advisory, the allocation-complete gate, and the weighted workflow
// score. Everything here is pure; persistence and notification live in the
// application layer.
package estate

import "github.com/zainulabideendev/estateplan/internal/domain/profile"

// ForcedShare describes a jurisdiction-mandated minimum allocation.
type ForcedShare struct {
	// SpouseMinPercent is the minimum share of the estate the surviving
	// spouse is entitled to under the applicable regime.
	SpouseMinPercent int `json:"spouse_min_percent"`
}

// communitySpouseShare is the spousal entitlement under an in-community
// marriage: half the joint estate belongs to the surviving spouse.
const communitySpouseShare = 50

// RequiredMinimumShare returns the forced-share rule triggered by the
// profile's marital property regime, or nil when none applies.
//
// The rule is advisory: the allocation ledger surfaces it to the user but
// deliberately does not reject saves that violate it.
func RequiredMinimumShare(p *profile.Profile) *ForcedShare {
	if p == nil {
		return nil
	}
	if p.MaritalStatus == profile.MaritalMarried && p.PropertyRegime == profile.RegimeInCommunity {
		return &ForcedShare{SpouseMinPercent: communitySpouseShare}
	}
	return nil
}
