// Package beneficiary implements the unified beneficiary roster: family
// members derived from the profile (spouse, partner, children) and manually
// entered people, both resolved to one canonical persisted record per
// beneficiary.
package beneficiary

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/zainulabideendev/estateplan/internal/domain/profile"
)

// FamilyKind tags a family-derived beneficiary.
type FamilyKind string

const (
	KindSpouse  FamilyKind = "spouse"
	KindPartner FamilyKind = "partner"
	KindChild   FamilyKind = "child"
)

// Key is the identifier used in allocation maps before translation to a
// record id. At most one spouse and one partner exist per profile, so their
// keys are the kind itself; children and manual beneficiaries are keyed by
// their own row id.
type Key string

const (
	KeySpouse  Key = Key(KindSpouse)
	KeyPartner Key = Key(KindPartner)
)

// ChildKey returns the allocation key for a child row.
func ChildKey(childID string) Key { return Key(childID) }

// ManualKey returns the allocation key for a manual beneficiary record.
func ManualKey(recordID string) Key { return Key(recordID) }

// Candidate is a potential beneficiary derived from profile and family data.
// It is recomputed on every read and never persisted itself.
type Candidate struct {
	Key     Key            `json:"key"`
	Kind    FamilyKind     `json:"kind"`
	ChildID string         `json:"child_id,omitempty"`
	Person  profile.Person `json:"person"`
}

// Record is the canonical persisted row for any beneficiary. Family-derived
// records are uniquely determined by (FamilyKind, FamilyRefID); for spouse
// and partner FamilyRefID is empty since at most one of each kind exists.
// Manual records carry IsFamilyMember=false and are addressed by ID.
type Record struct {
	ID           string         `json:"id"`
	ProfileID    string         `json:"profile_id"`
	IsFamilyMember bool         `json:"is_family_member"`
	FamilyKind   FamilyKind     `json:"family_kind,omitempty"`
	FamilyRefID  string         `json:"family_ref_id,omitempty"`
	Person       profile.Person `json:"person"`
	Relationship string         `json:"relationship,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// NewFamilyRecord creates a beneficiary record from an elected candidate,
// copying the candidate's personal fields. The copy is deliberate: the legal
// document freezes identity data at election time, so later edits to the
// underlying family member do not propagate.
func NewFamilyRecord(profileID string, c Candidate) (*Record, error) {
	if profileID == "" {
		return nil, errors.New("profile ID cannot be empty")
	}
	rec := &Record{
		ID:             uuid.New().String(),
		ProfileID:      profileID,
		IsFamilyMember: true,
		FamilyKind:     c.Kind,
		Person:         c.Person,
		Relationship:   string(c.Kind),
		CreatedAt:      time.Now().UTC(),
	}
	if c.Kind == KindChild {
		if c.ChildID == "" {
			return nil, errors.New("child candidate missing child ID")
		}
		rec.FamilyRefID = c.ChildID
	}
	return rec, nil
}

// NewManualRecord creates a manually entered beneficiary record.
func NewManualRecord(profileID string, person profile.Person, relationship string) (*Record, error) {
	if profileID == "" {
		return nil, errors.New("profile ID cannot be empty")
	}
	if person.FirstName == "" && person.LastName == "" {
		return nil, errors.New("beneficiary name cannot be empty")
	}
	return &Record{
		ID:           uuid.New().String(),
		ProfileID:    profileID,
		Person:       person,
		Relationship: relationship,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// AllocationKey returns the key under which this record appears in
// allocation maps.
func (r *Record) AllocationKey() Key {
	if r.IsFamilyMember {
		switch r.FamilyKind {
		case KindSpouse:
			return KeySpouse
		case KindPartner:
			return KeyPartner
		case KindChild:
			return ChildKey(r.FamilyRefID)
		}
	}
	return ManualKey(r.ID)
}

// Matches reports whether this record represents the family member addressed
// by (kind, refID). refID is ignored for spouse and partner lookups.
func (r *Record) Matches(kind FamilyKind, refID string) bool {
	if !r.IsFamilyMember || r.FamilyKind != kind {
		return false
	}
	if kind == KindChild {
		return r.FamilyRefID == refID
	}
	return true
}
