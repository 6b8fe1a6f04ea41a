package asset

import (
	"context"

	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// Service manages assets and their debt-handling designation.
type Service struct {
	repo Repository
	log  logging.Logger
}

// NewService constructs an asset Service.
func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log.Named("asset")}
}

// Create validates and persists a new asset.
func (s *Service) Create(ctx context.Context, profileID string, typ Type, name string, value float64) (*Asset, error) {
	a, err := New(profileID, typ, name, value)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "invalid asset")
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to create asset")
	}
	return a, nil
}

// Get returns one asset.
func (s *Service) Get(ctx context.Context, id string) (*Asset, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.New(errors.ErrCodeAssetNotFound, "asset not found").WithDetail("id=" + id)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load asset")
	}
	return a, nil
}

// List returns all assets for a profile.
func (s *Service) List(ctx context.Context, profileID string) ([]*Asset, error) {
	assets, err := s.repo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list assets")
	}
	return assets, nil
}

// Delete removes an asset.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return errors.New(errors.ErrCodeAssetNotFound, "asset not found").WithDetail("id=" + id)
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete asset")
	}
	return nil
}

// SetDebtStatus records whether the asset is fully paid. Marking an asset
// fully paid clears any stored debt-handling method.
func (s *Service) SetDebtStatus(ctx context.Context, id string, fullyPaid bool) (*Asset, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.FullyPaid = fullyPaid
	if fullyPaid {
		a.DebtHandlingMethod = nil
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update asset")
	}
	s.log.Info("asset debt status updated",
		logging.String("asset_id", id),
		logging.Bool("fully_paid", fullyPaid),
	)
	return a, nil
}

// SetDebtHandlingMethod designates how the asset's outstanding debt is
// treated at distribution. The asset must be an unpaid vehicle or property.
func (s *Service) SetDebtHandlingMethod(ctx context.Context, id string, method DebtHandlingMethod) (*Asset, error) {
	if !ValidDebtHandlingMethod(method) {
		return nil, errors.New(errors.ErrCodeDebtMethodInvalid, "unrecognised debt handling method").
			WithDetail("method=" + string(method))
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.FullyPaid = false
	if !a.DebtEligible() {
		return nil, errors.New(errors.ErrCodeDebtMethodNotEligible, "asset type cannot carry a debt handling method").
			WithDetail("type=" + string(a.Type))
	}
	a.DebtHandlingMethod = &method
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update asset")
	}
	s.log.Info("asset debt handling method set",
		logging.String("asset_id", id),
		logging.String("method", string(method)),
	)
	return a, nil
}
