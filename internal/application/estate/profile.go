package estate

import (
	"context"

	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// UpdateMaritalInput carries a marital-status change.
type UpdateMaritalInput struct {
	ProfileID      string
	MaritalStatus  profile.MaritalStatus
	HasLifePartner bool
	Spouse         *profile.Person
	Partner        *profile.Person
}

// ProfileService exposes profile reads and the workflow writes that feed the
// roster and the completion flags. Marital and regime changes reshape the
// candidate list, so they invalidate the cached roster like any beneficiary
// mutation would.
type ProfileService struct {
	profiles  profile.Repository
	cache     Cache
	publisher plan.Publisher
	log       logging.Logger
}

// NewProfileService constructs a ProfileService. cache and publisher may be
// nil.
func NewProfileService(profiles profile.Repository, cache Cache, publisher plan.Publisher, log logging.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, cache: cache, publisher: publisher, log: log.Named("profile")}
}

// Get loads a profile by id.
func (s *ProfileService) Get(ctx context.Context, profileID string) (*profile.Profile, error) {
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + profileID)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load profile")
	}
	return p, nil
}

// UpdateMarital changes the marital status and the attached spouse or
// partner details.
func (s *ProfileService) UpdateMarital(ctx context.Context, input UpdateMaritalInput) error {
	switch input.MaritalStatus {
	case profile.MaritalSingle, profile.MaritalMarried, profile.MaritalDivorced, profile.MaritalWidowed:
	default:
		return errors.New(errors.ErrCodeValidation, "unknown marital status").
			WithDetail("status=" + string(input.MaritalStatus))
	}
	if input.MaritalStatus == profile.MaritalMarried && input.Spouse == nil {
		return errors.New(errors.ErrCodeValidation, "married profile requires spouse details")
	}
	if err := s.profiles.UpdateMarital(ctx, input.ProfileID, input.MaritalStatus, input.HasLifePartner, input.Spouse, input.Partner); err != nil {
		if errors.IsNotFound(err) {
			return errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + input.ProfileID)
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update marital status")
	}
	s.afterWrite(ctx, input.ProfileID)
	return nil
}

// UpdateRegime changes the property regime attached to a marriage.
func (s *ProfileService) UpdateRegime(ctx context.Context, profileID string, regime profile.PropertyRegime) error {
	if !profile.ValidRegime(regime) {
		return errors.New(errors.ErrCodeRegimeInvalid, "unknown property regime").
			WithDetail("regime=" + string(regime))
	}
	if err := s.profiles.UpdateRegime(ctx, profileID, regime); err != nil {
		if errors.IsNotFound(err) {
			return errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + profileID)
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update property regime")
	}
	s.afterWrite(ctx, profileID)
	return nil
}

// SaveFlags persists the completion flags written by the surrounding
// workflow.
func (s *ProfileService) SaveFlags(ctx context.Context, profileID string, flags profile.Flags) error {
	if err := s.profiles.SaveFlags(ctx, profileID, flags); err != nil {
		if errors.IsNotFound(err) {
			return errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + profileID)
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to save flags")
	}
	if s.publisher != nil {
		if err := s.publisher.PlanMutated(ctx, plan.NewEvent(profileID, plan.EventFlagsUpdated, "")); err != nil {
			s.log.Warn("plan event publish failed", logging.String("profile_id", profileID), logging.Err(err))
		}
	}
	return nil
}

func (s *ProfileService) afterWrite(ctx context.Context, profileID string) {
	if s.cache != nil {
		if err := s.cache.Delete(ctx, rosterCacheKey(profileID)); err != nil {
			s.log.Warn("roster cache invalidation failed", logging.String("profile_id", profileID), logging.Err(err))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PlanMutated(ctx, plan.NewEvent(profileID, plan.EventProfileUpdated, "")); err != nil {
			s.log.Warn("plan event publish failed", logging.String("profile_id", profileID), logging.Err(err))
		}
	}
}
