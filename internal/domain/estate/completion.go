package estate

import "github.com/zainulabideendev/estateplan/internal/domain/profile"

// IsAllocationComplete reports whether the allocation stage of the workflow
// is finished: beneficiaries exist and both the per-asset and residue ledgers
// are fully allocated.
//
// The three inputs are externally written flags, not values derived from the
// ledgers; this function is a pure conjunction over them.
func IsAllocationComplete(f profile.Flags) bool {
	return f.HasBeneficiaries && f.AssetsFullyAllocated && f.ResidueFullyAllocated
}
