package estate

import (
	"context"
	"testing"

	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/internal/testutil"
	"github.com/zainulabideendev/estateplan/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRosterFixture() (*RosterService, *memProfiles, *memRecords, *testutil.MemoryCache, *capturePublisher) {
	profiles := newMemProfiles(marriedProfile())
	profiles.children[testProfileID] = twoChildren()
	records := &memRecords{}
	allocs := &memAllocations{}
	cache := testutil.NewMemoryCache()
	pub := &capturePublisher{}
	log := testutil.NewMockLogger()
	svc := NewRosterService(
		profiles,
		beneficiary.NewService(records, allocs, log),
		cache,
		pub,
		nil,
		log,
	)
	return svc, profiles, records, cache, pub
}

func TestGetRoster_CachesSecondRead(t *testing.T) {
	svc, _, records, cache, _ := newRosterFixture()
	ctx := context.Background()

	first, err := svc.GetRoster(ctx, testProfileID)
	require.NoError(t, err)
	assert.Len(t, first.Candidates, 3, "spouse plus two children")
	assert.Equal(t, 1, records.lists)
	assert.True(t, cache.Contains("roster:"+testProfileID))

	second, err := svc.GetRoster(ctx, testProfileID)
	require.NoError(t, err)
	assert.Equal(t, first.Candidates, second.Candidates)
	assert.Equal(t, 1, records.lists, "second read served from cache")
}

func TestGetRoster_UnknownProfile(t *testing.T) {
	svc, _, _, _, _ := newRosterFixture()

	_, err := svc.GetRoster(context.Background(), "nope")
	assert.True(t, errors.IsCode(err, errors.ErrCodeProfileNotFound))
}

func TestAddFamilyCandidate_InvalidatesCacheAndPublishes(t *testing.T) {
	svc, _, _, cache, pub := newRosterFixture()
	ctx := context.Background()

	_, err := svc.GetRoster(ctx, testProfileID)
	require.NoError(t, err)
	require.True(t, cache.Contains("roster:"+testProfileID))

	rec, err := svc.AddFamilyCandidate(ctx, AddFamilyInput{ProfileID: testProfileID, Kind: beneficiary.KindSpouse})
	require.NoError(t, err)
	assert.True(t, rec.IsFamilyMember)
	assert.False(t, cache.Contains("roster:"+testProfileID))
	assert.Equal(t, []plan.EventKind{plan.EventBeneficiaryAdded}, pub.kinds())

	roster, err := svc.GetRoster(ctx, testProfileID)
	require.NoError(t, err)
	require.Len(t, roster.Selected, 1)
	assert.Equal(t, beneficiary.KeySpouse, roster.Selected[0].Key)
}

func TestAddFamilyCandidate_UnknownCandidate(t *testing.T) {
	svc, _, _, _, pub := newRosterFixture()

	_, err := svc.AddFamilyCandidate(context.Background(), AddFamilyInput{ProfileID: testProfileID, Kind: beneficiary.KindChild, RefID: "c-404"})
	assert.True(t, errors.IsCode(err, errors.ErrCodeCandidateUnknown))
	assert.Empty(t, pub.kinds(), "no event for a rejected mutation")
}

func TestAddManualBeneficiary_Publishes(t *testing.T) {
	svc, _, records, _, pub := newRosterFixture()

	rec, err := svc.AddManualBeneficiary(context.Background(), AddManualInput{
		ProfileID:    testProfileID,
		Person:       profile.Person{FirstName: "Sipho", LastName: "Dlamini"},
		Relationship: "friend",
	})
	require.NoError(t, err)
	assert.False(t, rec.IsFamilyMember)
	assert.Len(t, records.records, 1)
	assert.Equal(t, []plan.EventKind{plan.EventBeneficiaryAdded}, pub.kinds())
}

func TestRemoveManualBeneficiary_CascadesAndPublishes(t *testing.T) {
	svc, _, records, cache, pub := newRosterFixture()
	ctx := context.Background()

	rec, err := svc.AddManualBeneficiary(ctx, AddManualInput{
		ProfileID: testProfileID,
		Person:    profile.Person{FirstName: "Sipho", LastName: "Dlamini"},
	})
	require.NoError(t, err)
	_, err = svc.GetRoster(ctx, testProfileID)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveManualBeneficiary(ctx, testProfileID, rec.ID))
	assert.Empty(t, records.records)
	assert.False(t, cache.Contains("roster:"+testProfileID))
	assert.Equal(t, []plan.EventKind{plan.EventBeneficiaryAdded, plan.EventBeneficiaryRemoved}, pub.kinds())
}

func TestRemoveFamilyBeneficiary_NotFound(t *testing.T) {
	svc, _, _, _, _ := newRosterFixture()

	err := svc.RemoveFamilyBeneficiary(context.Background(), AddFamilyInput{ProfileID: testProfileID, Kind: beneficiary.KindSpouse})
	assert.True(t, errors.IsCode(err, errors.ErrCodeBeneficiaryNotFound))
}

func TestGetRoster_NilCacheStillWorks(t *testing.T) {
	profiles := newMemProfiles(marriedProfile())
	log := testutil.NewMockLogger()
	svc := NewRosterService(profiles, beneficiary.NewService(&memRecords{}, &memAllocations{}, log), nil, nil, nil, log)

	roster, err := svc.GetRoster(context.Background(), testProfileID)
	require.NoError(t, err)
	assert.Len(t, roster.Candidates, 1, "spouse only, no children seeded")
}
