package estate

import (
	"context"
	"testing"

	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/internal/testutil"
	"github.com/zainulabideendev/estateplan/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressGet_EmptyFlags(t *testing.T) {
	profiles := newMemProfiles(marriedProfile())
	svc := NewProgressService(profiles, testutil.NewMockLogger())

	p, err := svc.Get(context.Background(), testProfileID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Score)
	assert.False(t, p.AllocationComplete)
	assert.Len(t, p.Breakdown, 7)
}

func TestProgressGet_FullFlags(t *testing.T) {
	profiles := newMemProfiles(marriedProfile())
	profiles.flags[testProfileID] = profile.Flags{
		HasBeneficiaries:      true,
		AssetsFullyAllocated:  true,
		ResidueFullyAllocated: true,
		ProfileSetup:          true,
		AssetsAdded:           true,
		BeneficiariesChosen:   true,
		LastWishesDocumented:  true,
		ExecutorChosen:        true,
		WillReviewed:          true,
		WillDownloaded:        true,
	}
	svc := NewProgressService(profiles, testutil.NewMockLogger())

	p, err := svc.Get(context.Background(), testProfileID)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Score)
	assert.True(t, p.AllocationComplete)
}

func TestProgressGet_UnknownProfile(t *testing.T) {
	svc := NewProgressService(newMemProfiles(), testutil.NewMockLogger())

	_, err := svc.Get(context.Background(), "nope")
	assert.True(t, errors.IsCode(err, errors.ErrCodeProfileNotFound))
}

func TestProgressWatchMutations_ReEvaluatesOnEvent(t *testing.T) {
	profiles := newMemProfiles(marriedProfile())
	log := testutil.NewMockLogger()
	svc := NewProgressService(profiles, log)

	b := plan.NewBroadcaster(nil)
	svc.WatchMutations(b)

	require.NoError(t, b.PlanMutated(context.Background(), plan.NewEvent(testProfileID, plan.EventAllocationsSaved, "a-1")))
	assert.True(t, log.HasMessage("debug", "progress re-evaluated"))
}

func TestProgressWatchMutations_LogsFailure(t *testing.T) {
	log := testutil.NewMockLogger()
	svc := NewProgressService(newMemProfiles(), log)

	b := plan.NewBroadcaster(nil)
	svc.WatchMutations(b)

	require.NoError(t, b.PlanMutated(context.Background(), plan.NewEvent("nope", plan.EventResidueSaved, "")))
	assert.True(t, log.HasMessage("warn", "progress re-evaluation failed"))
}
