package beneficiary

import (
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
)

// Roster is the merged view of all addressable beneficiaries for a profile.
type Roster struct {
	// Candidates are the family members that could be elected, derived
	// deterministically from the profile and child rows.
	Candidates []Candidate `json:"candidates"`

	// Selected are the candidates that already have a matching persisted
	// family record.
	Selected []Candidate `json:"selected"`

	// Manual are the manually entered beneficiary records.
	Manual []*Record `json:"manual"`
}

// BuildRoster derives the roster from a profile, its child rows, and the
// persisted beneficiary records. Candidate construction is deterministic: a
// spouse candidate exists iff the profile is married, a partner candidate iff
// the life-partner flag is set, and one child candidate per child row keyed
// by the child's own id, in the order the rows were supplied.
func BuildRoster(p *profile.Profile, children []*profile.Child, records []*Record) Roster {
	r := Roster{}

	if p != nil && p.MaritalStatus == profile.MaritalMarried {
		c := Candidate{Key: KeySpouse, Kind: KindSpouse}
		if p.Spouse != nil {
			c.Person = *p.Spouse
		}
		r.Candidates = append(r.Candidates, c)
	}
	if p != nil && p.HasLifePartner {
		c := Candidate{Key: KeyPartner, Kind: KindPartner}
		if p.Partner != nil {
			c.Person = *p.Partner
		}
		r.Candidates = append(r.Candidates, c)
	}
	for _, child := range children {
		r.Candidates = append(r.Candidates, Candidate{
			Key:     ChildKey(child.ID),
			Kind:    KindChild,
			ChildID: child.ID,
			Person:  child.Person,
		})
	}

	for _, c := range r.Candidates {
		if FindFamilyRecord(records, c.Kind, c.ChildID) != nil {
			r.Selected = append(r.Selected, c)
		}
	}

	for _, rec := range records {
		if !rec.IsFamilyMember {
			r.Manual = append(r.Manual, rec)
		}
	}
	return r
}

// FindFamilyRecord returns the family record matching (kind, refID), or nil.
// Row order does not matter: family records are unique per (kind, refID).
func FindFamilyRecord(records []*Record, kind FamilyKind, refID string) *Record {
	for _, rec := range records {
		if rec.Matches(kind, refID) {
			return rec
		}
	}
	return nil
}

// TranslationMap builds the beneficiary key to record id map used when
// persisting allocations: spouse and partner map by kind, children by child
// id, manual beneficiaries by their own record id.
func TranslationMap(records []*Record) map[Key]string {
	m := make(map[Key]string, len(records))
	for _, rec := range records {
		m[rec.AllocationKey()] = rec.ID
	}
	return m
}
