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

func newProfileFixture() (*ProfileService, *memProfiles, *testutil.MemoryCache, *capturePublisher) {
	profiles := newMemProfiles(marriedProfile())
	cache := testutil.NewMemoryCache()
	pub := &capturePublisher{}
	svc := NewProfileService(profiles, cache, pub, testutil.NewMockLogger())
	return svc, profiles, cache, pub
}

func TestUpdateMarital_InvalidatesRosterCache(t *testing.T) {
	svc, profiles, cache, pub := newProfileFixture()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, rosterCacheKey(testProfileID), "stale", 0))

	err := svc.UpdateMarital(ctx, UpdateMaritalInput{
		ProfileID:     testProfileID,
		MaritalStatus: profile.MaritalDivorced,
	})
	require.NoError(t, err)
	assert.Equal(t, profile.MaritalDivorced, profiles.profiles[testProfileID].MaritalStatus)
	assert.Nil(t, profiles.profiles[testProfileID].Spouse)
	assert.False(t, cache.Contains(rosterCacheKey(testProfileID)))
	assert.Equal(t, []plan.EventKind{plan.EventProfileUpdated}, pub.kinds())
}

func TestUpdateMarital_MarriedRequiresSpouse(t *testing.T) {
	svc, _, _, pub := newProfileFixture()

	err := svc.UpdateMarital(context.Background(), UpdateMaritalInput{
		ProfileID:     testProfileID,
		MaritalStatus: profile.MaritalMarried,
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
	assert.Empty(t, pub.kinds())
}

func TestUpdateMarital_UnknownStatus(t *testing.T) {
	svc, _, _, _ := newProfileFixture()

	err := svc.UpdateMarital(context.Background(), UpdateMaritalInput{
		ProfileID:     testProfileID,
		MaritalStatus: "engaged",
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
}

func TestUpdateRegime_Valid(t *testing.T) {
	svc, profiles, _, pub := newProfileFixture()

	err := svc.UpdateRegime(context.Background(), testProfileID, profile.RegimeOutOfCommunity)
	require.NoError(t, err)
	assert.Equal(t, profile.RegimeOutOfCommunity, profiles.profiles[testProfileID].PropertyRegime)
	assert.Equal(t, []plan.EventKind{plan.EventProfileUpdated}, pub.kinds())
}

func TestUpdateRegime_Invalid(t *testing.T) {
	svc, _, _, _ := newProfileFixture()

	err := svc.UpdateRegime(context.Background(), testProfileID, "communal")
	assert.True(t, errors.IsCode(err, errors.ErrCodeRegimeInvalid))
}

func TestSaveFlags_PublishesFlagsUpdated(t *testing.T) {
	svc, profiles, _, pub := newProfileFixture()

	flags := profile.Flags{ProfileSetup: true, AssetsAdded: true}
	require.NoError(t, svc.SaveFlags(context.Background(), testProfileID, flags))
	assert.Equal(t, flags, profiles.flags[testProfileID])
	assert.Equal(t, []plan.EventKind{plan.EventFlagsUpdated}, pub.kinds())
}

func TestProfileGet_NotFound(t *testing.T) {
	svc, _, _, _ := newProfileFixture()

	_, err := svc.Get(context.Background(), "nope")
	assert.True(t, errors.IsCode(err, errors.ErrCodeProfileNotFound))
}
