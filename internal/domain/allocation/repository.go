package allocation

import "context"

// Repository defines the persistence contract for allocation rows. Saves are
// destructive by design: callers delete the full row set for a scope and
// insert the replacement, never patching rows in place.
type Repository interface {
	ListForAsset(ctx context.Context, assetID string) ([]*Entry, error)
	DeleteForAsset(ctx context.Context, assetID string) error
	InsertForAsset(ctx context.Context, entries []*Entry) error

	ListResidue(ctx context.Context, profileID string) ([]*ResidueEntry, error)
	DeleteResidue(ctx context.Context, profileID string) error
	InsertResidue(ctx context.Context, entries []*ResidueEntry) error

	// Beneficiary-scoped deletes backing the removal cascade.
	DeleteForBeneficiary(ctx context.Context, beneficiaryID string) error
	DeleteResidueForBeneficiary(ctx context.Context, beneficiaryID string) error
}
