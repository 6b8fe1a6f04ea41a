package estate

import (
	"context"

	domainestate "github.com/zainulabideendev/estateplan/internal/domain/estate"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// Progress is the computed readiness view of one profile.
type Progress struct {
	Score              int                      `json:"score"`
	AllocationComplete bool                     `json:"allocation_complete"`
	Breakdown          []domainestate.StepWeight `json:"breakdown"`
	Flags              profile.Flags            `json:"flags"`
}

// ProgressService computes the estate score and the allocation completion
// gate from the persisted flags. It never writes flags itself; the workflow
// services own those writes.
type ProgressService struct {
	profiles profile.Repository
	log      logging.Logger
}

// NewProgressService constructs a ProgressService.
func NewProgressService(profiles profile.Repository, log logging.Logger) *ProgressService {
	return &ProgressService{profiles: profiles, log: log.Named("progress")}
}

// Get computes the current progress for a profile.
func (s *ProgressService) Get(ctx context.Context, profileID string) (*Progress, error) {
	flags, err := s.profiles.GetFlags(ctx, profileID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + profileID)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load completion flags")
	}
	return &Progress{
		Score:              domainestate.Score(flags),
		AllocationComplete: domainestate.IsAllocationComplete(flags),
		Breakdown:          domainestate.Breakdown(flags),
		Flags:              flags,
	}, nil
}

// WatchMutations subscribes the service to plan events so every mutation
// leaves a fresh progress reading in the logs. Useful for tracing how a
// session's score moves without polling.
func (s *ProgressService) WatchMutations(b *plan.Broadcaster) {
	b.Subscribe(func(e plan.Event) {
		p, err := s.Get(context.Background(), e.ProfileID)
		if err != nil {
			s.log.Warn("progress re-evaluation failed",
				logging.String("profile_id", e.ProfileID),
				logging.String("kind", string(e.Kind)),
				logging.Err(err),
			)
			return
		}
		s.log.Debug("progress re-evaluated",
			logging.String("profile_id", e.ProfileID),
			logging.String("kind", string(e.Kind)),
			logging.Int("score", p.Score),
			logging.Bool("allocation_complete", p.AllocationComplete),
		)
	})
}
