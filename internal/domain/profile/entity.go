// Package profile holds the planner profile aggregate: marital and property
// regime state, spouse/partner details, children, and the persisted workflow
// flags the rest of the platform reads.
package profile

import (
	"errors"
	"time"
)

// MaritalStatus enumerates the recognised marital states of a profile.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

// PropertyRegime enumerates matrimonial property regimes. InCommunity
// triggers the forced spousal share advisory.
type PropertyRegime string

const (
	RegimeNone                 PropertyRegime = ""
	RegimeInCommunity          PropertyRegime = "in_community"
	RegimeOutOfCommunityAccrual PropertyRegime = "out_of_community_accrual"
	RegimeOutOfCommunity       PropertyRegime = "out_of_community"
)

// ValidRegime reports whether r is one of the recognised regimes.
func ValidRegime(r PropertyRegime) bool {
	switch r {
	case RegimeNone, RegimeInCommunity, RegimeOutOfCommunityAccrual, RegimeOutOfCommunity:
		return true
	}
	return false
}

// Person carries the personal fields of a spouse, partner, or child as stored
// on the profile. These are copied, not referenced, when a family member is
// elected as a beneficiary.
type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IDNumber  string `json:"id_number"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Flags are the persisted workflow milestones. The allocation gate flags
// (HasBeneficiaries, AssetsFullyAllocated, ResidueFullyAllocated) are written
// by the surrounding workflow, never derived here; this package only stores
// and returns them.
type Flags struct {
	HasBeneficiaries      bool `json:"has_beneficiaries"`
	AssetsFullyAllocated  bool `json:"assets_fully_allocated"`
	ResidueFullyAllocated bool `json:"residue_fully_allocated"`

	ProfileSetup         bool `json:"profile_setup"`
	AssetsAdded          bool `json:"assets_added"`
	BeneficiariesChosen  bool `json:"beneficiaries_chosen"`
	LastWishesDocumented bool `json:"last_wishes_documented"`
	ExecutorChosen       bool `json:"executor_chosen"`
	WillReviewed         bool `json:"will_reviewed"`
	WillDownloaded       bool `json:"will_downloaded"`
}

// Profile is the aggregate root for one planner.
type Profile struct {
	ID             string         `json:"id"`
	MaritalStatus  MaritalStatus  `json:"marital_status"`
	PropertyRegime PropertyRegime `json:"property_regime"`
	HasLifePartner bool           `json:"has_life_partner"`

	// Spouse is non-nil only when MaritalStatus is married; Partner is
	// non-nil only when HasLifePartner is set.
	Spouse  *Person `json:"spouse,omitempty"`
	Partner *Person `json:"partner,omitempty"`

	Flags     Flags     `json:"flags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Child is one child row attached to a profile.
type Child struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	Person    Person    `json:"person"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the integrity of the profile.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return errors.New("profile ID cannot be empty")
	}
	switch p.MaritalStatus {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
	default:
		return errors.New("unrecognised marital status")
	}
	if !ValidRegime(p.PropertyRegime) {
		return errors.New("unrecognised property regime")
	}
	if p.MaritalStatus != MaritalMarried && p.Spouse != nil {
		return errors.New("spouse details present on an unmarried profile")
	}
	if !p.HasLifePartner && p.Partner != nil {
		return errors.New("partner details present without life partner flag")
	}
	return nil
}
