package estate

import (
	"context"

	"github.com/zainulabideendev/estateplan/internal/domain/allocation"
	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	domainestate "github.com/zainulabideendev/estateplan/internal/domain/estate"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// SaveAllocationsInput is a full replacement of one asset's allocation set.
type SaveAllocationsInput struct {
	ProfileID string
	AssetID   string
	Entries   map[beneficiary.Key]float64
}

// SaveResidueInput is a full replacement of the residue allocation set.
type SaveResidueInput struct {
	ProfileID string
	Entries   map[beneficiary.Key]float64
}

// ForcedShareAdvisory reports how the residue split compares to the legal
// minimum spouse share, when one applies. It never blocks a save.
type ForcedShareAdvisory struct {
	SpouseMinPercent int     `json:"spouse_min_percent"`
	SpousePercent    float64 `json:"spouse_percent"`
	Satisfied        bool    `json:"satisfied"`
}

// AllocationService exposes allocation reads and saves. Each call builds a
// short-lived ledger over the profile's beneficiary records, so concurrent
// savers follow last-write-wins, the same way the persisted rows do.
type AllocationService struct {
	profiles  profile.Repository
	records   beneficiary.Repository
	repo      allocation.Repository
	publisher plan.Publisher
	metrics   Metrics
	log       logging.Logger
}

// NewAllocationService constructs an AllocationService. publisher may be nil.
func NewAllocationService(profiles profile.Repository, records beneficiary.Repository, repo allocation.Repository, publisher plan.Publisher, metrics Metrics, log logging.Logger) *AllocationService {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &AllocationService{
		profiles:  profiles,
		records:   records,
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		log:       log.Named("allocation"),
	}
}

func (s *AllocationService) ledger(profileID string) *allocation.Ledger {
	return allocation.NewLedger(profileID, s.records, s.repo, s.log)
}

// GetAssetAllocations returns the persisted allocation map for one asset,
// keyed by allocation key.
func (s *AllocationService) GetAssetAllocations(ctx context.Context, profileID, assetID string) (map[beneficiary.Key]float64, error) {
	l := s.ledger(profileID)
	if err := l.LoadAsset(ctx, assetID); err != nil {
		return nil, err
	}
	return l.Allocations(assetID), nil
}

// GetResidueAllocations returns the persisted residue allocation map.
func (s *AllocationService) GetResidueAllocations(ctx context.Context, profileID string) (map[beneficiary.Key]float64, error) {
	l := s.ledger(profileID)
	if err := l.LoadResidue(ctx); err != nil {
		return nil, err
	}
	return l.ResidueAllocations(), nil
}

// SaveAssetAllocations replaces one asset's allocation set. Percentages are
// clamped to [0,100]; a set summing past 100 is rejected before any row is
// touched.
func (s *AllocationService) SaveAssetAllocations(ctx context.Context, input SaveAllocationsInput) error {
	l := s.ledger(input.ProfileID)
	for key, pct := range input.Entries {
		l.SetAllocation(input.AssetID, key, pct)
	}
	if err := l.SaveAllocations(ctx, input.AssetID); err != nil {
		if errors.IsCode(err, errors.ErrCodeAllocationExceeded) {
			s.metrics.AllocationSaveRejected()
		}
		return err
	}
	s.metrics.AllocationSaveOK()
	s.publish(ctx, input.ProfileID, plan.EventAllocationsSaved, input.AssetID)
	return nil
}

// SaveResidueAllocations replaces the residue allocation set under the same
// clamp and sum rules as asset saves.
func (s *AllocationService) SaveResidueAllocations(ctx context.Context, input SaveResidueInput) error {
	l := s.ledger(input.ProfileID)
	for key, pct := range input.Entries {
		l.SetResidueAllocation(key, pct)
	}
	if err := l.SaveResidue(ctx); err != nil {
		if errors.IsCode(err, errors.ErrCodeAllocationExceeded) {
			s.metrics.AllocationSaveRejected()
		}
		return err
	}
	s.metrics.AllocationSaveOK()
	s.publish(ctx, input.ProfileID, plan.EventResidueSaved, "")
	return nil
}

// ResidueForcedShare computes the advisory spouse-share check against the
// persisted residue split. It returns nil when no forced share applies to
// the profile's marital regime.
func (s *AllocationService) ResidueForcedShare(ctx context.Context, profileID string) (*ForcedShareAdvisory, error) {
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + profileID)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load profile")
	}
	share := domainestate.RequiredMinimumShare(p)
	if share == nil {
		return nil, nil
	}
	residue, err := s.GetResidueAllocations(ctx, profileID)
	if err != nil {
		return nil, err
	}
	spousePct := residue[beneficiary.KeySpouse]
	return &ForcedShareAdvisory{
		SpouseMinPercent: share.SpouseMinPercent,
		SpousePercent:    spousePct,
		Satisfied:        spousePct >= float64(share.SpouseMinPercent),
	}, nil
}

func (s *AllocationService) publish(ctx context.Context, profileID string, kind plan.EventKind, entityID string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PlanMutated(ctx, plan.NewEvent(profileID, kind, entityID)); err != nil {
		s.log.Warn("plan event publish failed",
			logging.String("profile_id", profileID),
			logging.String("kind", string(kind)),
			logging.Err(err),
		)
	}
}
