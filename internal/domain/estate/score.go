package estate

import "github.com/zainulabideendev/estateplan/internal/domain/profile"

// Step identifies one scored workflow milestone.
type Step string

const (
	StepProfileSetup         Step = "profile_setup"
	StepAssetsAdded          Step = "assets_added"
	StepBeneficiariesChosen  Step = "beneficiaries_chosen"
	StepLastWishesDocumented Step = "last_wishes_documented"
	StepExecutorChosen       Step = "executor_chosen"
	StepWillReviewed         Step = "will_reviewed"
	StepWillDownloaded       Step = "will_downloaded"
)

// StepWeight pairs a milestone with its contribution to the overall score.
// There is no partial credit within a step.
type StepWeight struct {
	Step   Step `json:"step"`
	Weight int  `json:"weight"`
	Done   bool `json:"done"`
}

// scoreTable is the fixed weight table. Weights sum to exactly 100.
var scoreTable = []struct {
	step   Step
	weight int
	done   func(profile.Flags) bool
}{
	{StepProfileSetup, 20, func(f profile.Flags) bool { return f.ProfileSetup }},
	{StepAssetsAdded, 20, func(f profile.Flags) bool { return f.AssetsAdded }},
	{StepBeneficiariesChosen, 20, func(f profile.Flags) bool { return f.BeneficiariesChosen }},
	{StepLastWishesDocumented, 15, func(f profile.Flags) bool { return f.LastWishesDocumented }},
	{StepExecutorChosen, 15, func(f profile.Flags) bool { return f.ExecutorChosen }},
	{StepWillReviewed, 5, func(f profile.Flags) bool { return f.WillReviewed }},
	{StepWillDownloaded, 5, func(f profile.Flags) bool { return f.WillDownloaded }},
}

// Score converts the persisted milestone flags into a 0..100 completion
// score, adding each step's weight iff its flag is set.
func Score(f profile.Flags) int {
	total := 0
	for _, row := range scoreTable {
		if row.done(f) {
			total += row.weight
		}
	}
	return total
}

// Breakdown returns the per-step weights and completion states in table
// order, for progress displays.
func Breakdown(f profile.Flags) []StepWeight {
	out := make([]StepWeight, 0, len(scoreTable))
	for _, row := range scoreTable {
		out = append(out, StepWeight{Step: row.step, Weight: row.weight, Done: row.done(f)})
	}
	return out
}
