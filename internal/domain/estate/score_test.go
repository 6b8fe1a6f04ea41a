package estate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zainulabideendev/estateplan/internal/domain/profile"
)

func TestScore_AllFalse(t *testing.T) {
	assert.Equal(t, 0, Score(profile.Flags{}))
}

func TestScore_AllTrue(t *testing.T) {
	f := profile.Flags{
		ProfileSetup:         true,
		AssetsAdded:          true,
		BeneficiariesChosen:  true,
		LastWishesDocumented: true,
		ExecutorChosen:       true,
		WillReviewed:         true,
		WillDownloaded:       true,
	}
	assert.Equal(t, 100, Score(f))
}

func TestScore_SingleStep(t *testing.T) {
	assert.Equal(t, 15, Score(profile.Flags{LastWishesDocumented: true}))
	assert.Equal(t, 20, Score(profile.Flags{ProfileSetup: true}))
	assert.Equal(t, 5, Score(profile.Flags{WillDownloaded: true}))
}

func TestScore_Additive(t *testing.T) {
	f := profile.Flags{ProfileSetup: true, ExecutorChosen: true, WillReviewed: true}
	assert.Equal(t, 40, Score(f))
}

func TestScore_IgnoresAllocationGateFlags(t *testing.T) {
	// The allocation gate flags contribute nothing to the score.
	f := profile.Flags{HasBeneficiaries: true, AssetsFullyAllocated: true, ResidueFullyAllocated: true}
	assert.Equal(t, 0, Score(f))
}

func TestWeights_SumToHundred(t *testing.T) {
	sum := 0
	for _, row := range Breakdown(profile.Flags{}) {
		sum += row.Weight
	}
	assert.Equal(t, 100, sum)
}

func TestBreakdown_OrderAndDone(t *testing.T) {
	b := Breakdown(profile.Flags{AssetsAdded: true})
	assert.Len(t, b, 7)
	assert.Equal(t, StepProfileSetup, b[0].Step)
	assert.False(t, b[0].Done)
	assert.Equal(t, StepAssetsAdded, b[1].Step)
	assert.True(t, b[1].Done)
	assert.Equal(t, StepWillDownloaded, b[6].Step)
}
