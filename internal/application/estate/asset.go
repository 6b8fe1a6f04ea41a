package estate

import (
	"context"

	"github.com/zainulabideendev/estateplan/internal/domain/asset"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
)

// CreateAssetInput carries a new asset.
type CreateAssetInput struct {
	ProfileID string
	Type      asset.Type
	Name      string
	Value     float64
}

// AssetService exposes asset reads and writes, publishing a plan event when
// the debt posture of an asset changes.
type AssetService struct {
	assets    *asset.Service
	publisher plan.Publisher
	log       logging.Logger
}

// NewAssetService constructs an AssetService. publisher may be nil.
func NewAssetService(assets *asset.Service, publisher plan.Publisher, log logging.Logger) *AssetService {
	return &AssetService{assets: assets, publisher: publisher, log: log.Named("asset")}
}

// Create registers a new asset for a profile.
func (s *AssetService) Create(ctx context.Context, input CreateAssetInput) (*asset.Asset, error) {
	return s.assets.Create(ctx, input.ProfileID, input.Type, input.Name, input.Value)
}

// Get loads an asset by id.
func (s *AssetService) Get(ctx context.Context, id string) (*asset.Asset, error) {
	return s.assets.Get(ctx, id)
}

// List returns all assets for a profile.
func (s *AssetService) List(ctx context.Context, profileID string) ([]*asset.Asset, error) {
	return s.assets.List(ctx, profileID)
}

// Delete removes an asset.
func (s *AssetService) Delete(ctx context.Context, id string) error {
	return s.assets.Delete(ctx, id)
}

// SetDebtStatus marks an asset fully paid or not. Marking fully paid clears
// any chosen debt handling method.
func (s *AssetService) SetDebtStatus(ctx context.Context, id string, fullyPaid bool) (*asset.Asset, error) {
	a, err := s.assets.SetDebtStatus(ctx, id, fullyPaid)
	if err != nil {
		return nil, err
	}
	s.publishDebt(ctx, a)
	return a, nil
}

// SetDebtHandlingMethod records how an outstanding debt on the asset should
// be handled at distribution time.
func (s *AssetService) SetDebtHandlingMethod(ctx context.Context, id string, method asset.DebtHandlingMethod) (*asset.Asset, error) {
	a, err := s.assets.SetDebtHandlingMethod(ctx, id, method)
	if err != nil {
		return nil, err
	}
	s.publishDebt(ctx, a)
	return a, nil
}

func (s *AssetService) publishDebt(ctx context.Context, a *asset.Asset) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PlanMutated(ctx, plan.NewEvent(a.ProfileID, plan.EventAssetDebtUpdated, a.ID)); err != nil {
		s.log.Warn("plan event publish failed",
			logging.String("profile_id", a.ProfileID),
			logging.String("asset_id", a.ID),
			logging.Err(err),
		)
	}
}
