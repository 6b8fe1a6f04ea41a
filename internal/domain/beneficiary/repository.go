package beneficiary

import "context"

// Repository defines the persistence contract for beneficiary records.
type Repository interface {
	// ListByProfile returns every beneficiary record for a profile, family
	// and manual alike.
	ListByProfile(ctx context.Context, profileID string) ([]*Record, error)

	// FindFamily looks up the family record for (kind, refID); refID is
	// ignored for spouse and partner. Returns ErrCodeBeneficiaryNotFound
	// when no row matches.
	FindFamily(ctx context.Context, profileID string, kind FamilyKind, refID string) (*Record, error)

	GetByID(ctx context.Context, id string) (*Record, error)

	Create(ctx context.Context, rec *Record) error

	Delete(ctx context.Context, id string) error
}
