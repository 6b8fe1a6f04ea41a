package profile

import "context"

// Repository defines the persistence contract for profiles and children.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)

	// UpdateRegime persists a new matrimonial property regime.
	UpdateRegime(ctx context.Context, id string, regime PropertyRegime) error

	// UpdateMarital persists marital status together with the spouse and
	// partner details that accompany it. Spouse must be nil unless status is
	// married; partner must be nil unless hasLifePartner is set.
	UpdateMarital(ctx context.Context, id string, status MaritalStatus, hasLifePartner bool, spouse, partner *Person) error

	// SaveFlags overwrites the persisted workflow flags. The flag values are
	// owned by the surrounding workflow; this store does not derive them.
	SaveFlags(ctx context.Context, id string, flags Flags) error

	GetFlags(ctx context.Context, id string) (Flags, error)

	ListChildren(ctx context.Context, profileID string) ([]*Child, error)
}
