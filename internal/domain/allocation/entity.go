// Package allocation maintains the percentage allocation ledgers: one per
// asset and one for the estate residue, persisted sparsely (no zero rows)
// under a sum-at-most-100 invariant.
package allocation

// Entry is one persisted per-asset allocation row. BeneficiaryID is the
// canonical beneficiary record id, translated from the in-memory allocation
// key at save time.
type Entry struct {
	AssetID       string  `json:"asset_id"`
	BeneficiaryID string  `json:"beneficiary_id"`
	Percentage    float64 `json:"percentage"`
}

// ResidueEntry is one persisted residue allocation row, scoped to a profile
// rather than an asset.
type ResidueEntry struct {
	ProfileID     string  `json:"profile_id"`
	BeneficiaryID string  `json:"beneficiary_id"`
	Percentage    float64 `json:"percentage"`
}

// MaxTotalPercent is the ceiling on the sum of percentages within one ledger.
const MaxTotalPercent = 100.0

// ClampPercent forces a raw percentage into [0, 100].
func ClampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
