package beneficiary

import (
	"context"

	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// AllocationStore is the slice of the allocation persistence the removal
// cascade needs. The full contract lives in the allocation package; keeping a
// local interface avoids a dependency cycle.
type AllocationStore interface {
	DeleteForBeneficiary(ctx context.Context, beneficiaryID string) error
	DeleteResidueForBeneficiary(ctx context.Context, beneficiaryID string) error
}

// Service manages beneficiary election and removal.
type Service struct {
	repo        Repository
	allocations AllocationStore
	log         logging.Logger
}

// NewService constructs a beneficiary Service.
func NewService(repo Repository, allocations AllocationStore, log logging.Logger) *Service {
	return &Service{repo: repo, allocations: allocations, log: log.Named("beneficiary")}
}

// Roster loads the persisted records and derives the merged roster.
func (s *Service) Roster(ctx context.Context, p *profile.Profile, children []*profile.Child) (Roster, error) {
	records, err := s.repo.ListByProfile(ctx, p.ID)
	if err != nil {
		return Roster{}, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list beneficiary records")
	}
	return BuildRoster(p, children, records), nil
}

// AddFamilyCandidate elects a family candidate as a beneficiary. The
// candidate is re-derived from the supplied profile and children so stale
// client state cannot elect someone who no longer exists. Re-electing an
// already persisted candidate fails with ErrCodeBeneficiaryDuplicate.
func (s *Service) AddFamilyCandidate(ctx context.Context, p *profile.Profile, children []*profile.Child, kind FamilyKind, refID string) (*Record, error) {
	roster := BuildRoster(p, children, nil)
	var candidate *Candidate
	for i := range roster.Candidates {
		c := &roster.Candidates[i]
		if c.Kind == kind && (kind != KindChild || c.ChildID == refID) {
			candidate = c
			break
		}
	}
	if candidate == nil {
		return nil, errors.New(errors.ErrCodeCandidateUnknown, "no such family candidate").
			WithDetail("kind=" + string(kind))
	}

	existing, err := s.repo.FindFamily(ctx, p.ID, kind, refID)
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to check for existing record")
	}
	if existing != nil {
		return nil, errors.New(errors.ErrCodeBeneficiaryDuplicate, "family member is already a beneficiary").
			WithDetail("kind=" + string(kind))
	}

	rec, err := NewFamilyRecord(p.ID, *candidate)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "invalid family candidate")
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to create beneficiary record")
	}
	s.log.Info("family beneficiary added",
		logging.String("profile_id", p.ID),
		logging.String("kind", string(kind)),
		logging.String("beneficiary_id", rec.ID),
	)
	return rec, nil
}

// AddManual persists a manually entered beneficiary.
func (s *Service) AddManual(ctx context.Context, profileID string, person profile.Person, relationship string) (*Record, error) {
	rec, err := NewManualRecord(profileID, person, relationship)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "invalid beneficiary")
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to create beneficiary record")
	}
	s.log.Info("manual beneficiary added",
		logging.String("profile_id", profileID),
		logging.String("beneficiary_id", rec.ID),
	)
	return rec, nil
}

// RemoveFamily removes a family-derived beneficiary, resolving the record by
// re-querying on (kind, refID). A missing row surfaces as
// ErrCodeBeneficiaryNotFound rather than being silently ignored.
func (s *Service) RemoveFamily(ctx context.Context, profileID string, kind FamilyKind, refID string) error {
	rec, err := s.repo.FindFamily(ctx, profileID, kind, refID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.New(errors.ErrCodeBeneficiaryNotFound, "family beneficiary not found").
				WithDetail("kind=" + string(kind))
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to resolve family beneficiary")
	}
	return s.removeRecord(ctx, rec)
}

// RemoveManual removes a manually entered beneficiary by record id.
func (s *Service) RemoveManual(ctx context.Context, id string) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.New(errors.ErrCodeBeneficiaryNotFound, "beneficiary not found").
				WithDetail("id=" + id)
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to resolve beneficiary")
	}
	return s.removeRecord(ctx, rec)
}

// removeRecord deletes, in order, all asset allocation rows, all residue
// allocation rows, and finally the beneficiary record. The sequence is
// discrete calls against the store; if any step fails the caller must treat
// the whole removal as failed and retry the full sequence.
func (s *Service) removeRecord(ctx context.Context, rec *Record) error {
	if err := s.allocations.DeleteForBeneficiary(ctx, rec.ID); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete asset allocations")
	}
	if err := s.allocations.DeleteResidueForBeneficiary(ctx, rec.ID); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete residue allocations")
	}
	if err := s.repo.Delete(ctx, rec.ID); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete beneficiary record")
	}
	s.log.Info("beneficiary removed",
		logging.String("profile_id", rec.ProfileID),
		logging.String("beneficiary_id", rec.ID),
	)
	return nil
}
