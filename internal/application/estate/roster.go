package estate

import (
	"context"
	"fmt"
	"time"

	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

const rosterCacheTTL = 5 * time.Minute

// AddFamilyInput identifies one family candidate to elect.
type AddFamilyInput struct {
	ProfileID string
	Kind      beneficiary.FamilyKind
	// RefID is the child id for child candidates; ignored for spouse and
	// partner.
	RefID string
}

// AddManualInput carries a manually entered beneficiary.
type AddManualInput struct {
	ProfileID    string
	Person       profile.Person
	Relationship string
}

// RosterService exposes the merged beneficiary roster and its mutations to
// the transport layer. Reads go through the cache; every mutation invalidates
// the profile's roster entry and publishes a plan event.
type RosterService struct {
	profiles      profile.Repository
	beneficiaries *beneficiary.Service
	cache         Cache
	publisher     plan.Publisher
	metrics       Metrics
	log           logging.Logger
}

// NewRosterService constructs a RosterService. cache and publisher may be nil
// when the deployment runs without redis or kafka.
func NewRosterService(profiles profile.Repository, beneficiaries *beneficiary.Service, cache Cache, publisher plan.Publisher, metrics Metrics, log logging.Logger) *RosterService {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &RosterService{
		profiles:      profiles,
		beneficiaries: beneficiaries,
		cache:         cache,
		publisher:     publisher,
		metrics:       metrics,
		log:           log.Named("roster"),
	}
}

func rosterCacheKey(profileID string) string {
	return fmt.Sprintf("roster:%s", profileID)
}

// GetRoster returns the merged roster for a profile, serving from cache when
// a fresh entry exists.
func (s *RosterService) GetRoster(ctx context.Context, profileID string) (beneficiary.Roster, error) {
	if s.cache != nil {
		var cached beneficiary.Roster
		err := s.cache.Get(ctx, rosterCacheKey(profileID), &cached)
		if err == nil {
			s.metrics.CacheHit("roster")
			return cached, nil
		}
		if !errors.IsCacheMiss(err) {
			s.log.Warn("roster cache read failed", logging.String("profile_id", profileID), logging.Err(err))
		}
		s.metrics.CacheMiss("roster")
	}

	roster, err := s.loadRoster(ctx, profileID)
	if err != nil {
		return beneficiary.Roster{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, rosterCacheKey(profileID), roster, rosterCacheTTL); err != nil {
			s.log.Warn("roster cache write failed", logging.String("profile_id", profileID), logging.Err(err))
		}
	}
	return roster, nil
}

// AddFamilyCandidate elects a family candidate and returns the created
// record.
func (s *RosterService) AddFamilyCandidate(ctx context.Context, input AddFamilyInput) (*beneficiary.Record, error) {
	p, children, err := s.loadFamily(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	rec, err := s.beneficiaries.AddFamilyCandidate(ctx, p, children, input.Kind, input.RefID)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, input.ProfileID, plan.EventBeneficiaryAdded, rec.ID)
	return rec, nil
}

// AddManualBeneficiary persists a manually entered beneficiary.
func (s *RosterService) AddManualBeneficiary(ctx context.Context, input AddManualInput) (*beneficiary.Record, error) {
	rec, err := s.beneficiaries.AddManual(ctx, input.ProfileID, input.Person, input.Relationship)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, input.ProfileID, plan.EventBeneficiaryAdded, rec.ID)
	return rec, nil
}

// RemoveFamilyBeneficiary removes a family-derived beneficiary along with all
// of its allocations.
func (s *RosterService) RemoveFamilyBeneficiary(ctx context.Context, input AddFamilyInput) error {
	if err := s.beneficiaries.RemoveFamily(ctx, input.ProfileID, input.Kind, input.RefID); err != nil {
		return err
	}
	s.afterMutation(ctx, input.ProfileID, plan.EventBeneficiaryRemoved, "")
	return nil
}

// RemoveManualBeneficiary removes a manually entered beneficiary by id along
// with all of its allocations.
func (s *RosterService) RemoveManualBeneficiary(ctx context.Context, profileID, beneficiaryID string) error {
	if err := s.beneficiaries.RemoveManual(ctx, beneficiaryID); err != nil {
		return err
	}
	s.afterMutation(ctx, profileID, plan.EventBeneficiaryRemoved, beneficiaryID)
	return nil
}

func (s *RosterService) loadFamily(ctx context.Context, profileID string) (*profile.Profile, []*profile.Child, error) {
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + profileID)
		}
		return nil, nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load profile")
	}
	children, err := s.profiles.ListChildren(ctx, profileID)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list children")
	}
	return p, children, nil
}

func (s *RosterService) loadRoster(ctx context.Context, profileID string) (beneficiary.Roster, error) {
	p, children, err := s.loadFamily(ctx, profileID)
	if err != nil {
		return beneficiary.Roster{}, err
	}
	return s.beneficiaries.Roster(ctx, p, children)
}

// afterMutation invalidates the cached roster and publishes the mutation
// event. Neither failure aborts the mutation; both are logged.
func (s *RosterService) afterMutation(ctx context.Context, profileID string, kind plan.EventKind, entityID string) {
	if s.cache != nil {
		if err := s.cache.Delete(ctx, rosterCacheKey(profileID)); err != nil {
			s.log.Warn("roster cache invalidation failed", logging.String("profile_id", profileID), logging.Err(err))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PlanMutated(ctx, plan.NewEvent(profileID, kind, entityID)); err != nil {
			s.log.Warn("plan event publish failed",
				logging.String("profile_id", profileID),
				logging.String("kind", string(kind)),
				logging.Err(err),
			)
		}
	}
}
