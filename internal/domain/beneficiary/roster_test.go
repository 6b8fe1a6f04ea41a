package beneficiary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zainulabideendev/estateplan/internal/domain/profile"
)

func marriedProfile() *profile.Profile {
	return &profile.Profile{
		ID:            "p-1",
		MaritalStatus: profile.MaritalMarried,
		Spouse:        &profile.Person{FirstName: "Thandi", LastName: "Mokoena"},
	}
}

func twoChildren() []*profile.Child {
	return []*profile.Child{
		{ID: "c-1", ProfileID: "p-1", Person: profile.Person{FirstName: "Lwazi"}},
		{ID: "c-2", ProfileID: "p-1", Person: profile.Person{FirstName: "Zinhle"}},
	}
}

func TestBuildRoster_MarriedWithChildren(t *testing.T) {
	r := BuildRoster(marriedProfile(), twoChildren(), nil)

	require.Len(t, r.Candidates, 3)
	assert.Equal(t, KeySpouse, r.Candidates[0].Key)
	assert.Equal(t, KindSpouse, r.Candidates[0].Kind)
	assert.Equal(t, "Thandi", r.Candidates[0].Person.FirstName)
	assert.Equal(t, ChildKey("c-1"), r.Candidates[1].Key)
	assert.Equal(t, ChildKey("c-2"), r.Candidates[2].Key)
	assert.Empty(t, r.Selected)
	assert.Empty(t, r.Manual)
}

func TestBuildRoster_SingleNoPartner(t *testing.T) {
	p := &profile.Profile{ID: "p-1", MaritalStatus: profile.MaritalSingle}
	r := BuildRoster(p, nil, nil)
	assert.Empty(t, r.Candidates)
}

func TestBuildRoster_PartnerCandidate(t *testing.T) {
	p := &profile.Profile{
		ID:             "p-1",
		MaritalStatus:  profile.MaritalSingle,
		HasLifePartner: true,
		Partner:        &profile.Person{FirstName: "Sam"},
	}
	r := BuildRoster(p, nil, nil)
	require.Len(t, r.Candidates, 1)
	assert.Equal(t, KeyPartner, r.Candidates[0].Key)
}

func TestBuildRoster_SpouseKeyStableAcrossRecordOrder(t *testing.T) {
	recSpouse := &Record{ID: "b-1", ProfileID: "p-1", IsFamilyMember: true, FamilyKind: KindSpouse}
	recChild1 := &Record{ID: "b-2", ProfileID: "p-1", IsFamilyMember: true, FamilyKind: KindChild, FamilyRefID: "c-1"}
	recChild2 := &Record{ID: "b-3", ProfileID: "p-1", IsFamilyMember: true, FamilyKind: KindChild, FamilyRefID: "c-2"}

	orderings := [][]*Record{
		{recSpouse, recChild1, recChild2},
		{recChild2, recSpouse, recChild1},
		{recChild1, recChild2, recSpouse},
	}
	for _, records := range orderings {
		r := BuildRoster(marriedProfile(), twoChildren(), records)
		require.Len(t, r.Selected, 3)
		assert.Equal(t, KeySpouse, r.Selected[0].Key)

		m := TranslationMap(records)
		assert.Equal(t, "b-1", m[KeySpouse])
		assert.Equal(t, "b-2", m[ChildKey("c-1")])
		assert.Equal(t, "b-3", m[ChildKey("c-2")])
	}
}

func TestBuildRoster_SelectedSubset(t *testing.T) {
	records := []*Record{
		{ID: "b-2", ProfileID: "p-1", IsFamilyMember: true, FamilyKind: KindChild, FamilyRefID: "c-2"},
	}
	r := BuildRoster(marriedProfile(), twoChildren(), records)
	require.Len(t, r.Selected, 1)
	assert.Equal(t, "c-2", r.Selected[0].ChildID)
}

func TestBuildRoster_ManualRecords(t *testing.T) {
	records := []*Record{
		{ID: "m-1", ProfileID: "p-1", Person: profile.Person{FirstName: "Aunt"}, Relationship: "aunt"},
		{ID: "b-1", ProfileID: "p-1", IsFamilyMember: true, FamilyKind: KindSpouse},
	}
	r := BuildRoster(marriedProfile(), nil, records)
	require.Len(t, r.Manual, 1)
	assert.Equal(t, "m-1", r.Manual[0].ID)
}

func TestTranslationMap_ManualKeyedByRecordID(t *testing.T) {
	records := []*Record{
		{ID: "m-9", ProfileID: "p-1"},
		{ID: "b-1", ProfileID: "p-1", IsFamilyMember: true, FamilyKind: KindPartner},
	}
	m := TranslationMap(records)
	assert.Equal(t, "m-9", m[ManualKey("m-9")])
	assert.Equal(t, "b-1", m[KeyPartner])
}

func TestRecord_Matches(t *testing.T) {
	spouse := &Record{IsFamilyMember: true, FamilyKind: KindSpouse}
	// refID is irrelevant for spouse lookups.
	assert.True(t, spouse.Matches(KindSpouse, ""))
	assert.True(t, spouse.Matches(KindSpouse, "anything"))
	assert.False(t, spouse.Matches(KindPartner, ""))

	child := &Record{IsFamilyMember: true, FamilyKind: KindChild, FamilyRefID: "c-1"}
	assert.True(t, child.Matches(KindChild, "c-1"))
	assert.False(t, child.Matches(KindChild, "c-2"))

	manual := &Record{ID: "m-1"}
	assert.False(t, manual.Matches(KindSpouse, ""))
}

func TestNewFamilyRecord_SnapshotsPerson(t *testing.T) {
	p := marriedProfile()
	r := BuildRoster(p, nil, nil)
	rec, err := NewFamilyRecord(p.ID, r.Candidates[0])
	require.NoError(t, err)
	assert.True(t, rec.IsFamilyMember)
	assert.Equal(t, "Thandi", rec.Person.FirstName)

	// Later edits to the profile's spouse do not propagate to the record.
	p.Spouse.FirstName = "Renamed"
	assert.Equal(t, "Thandi", rec.Person.FirstName)
}

func TestNewFamilyRecord_ChildNeedsRef(t *testing.T) {
	_, err := NewFamilyRecord("p-1", Candidate{Kind: KindChild})
	assert.Error(t, err)
}

func TestNewManualRecord_Validation(t *testing.T) {
	_, err := NewManualRecord("", profile.Person{FirstName: "A"}, "friend")
	assert.Error(t, err)

	_, err = NewManualRecord("p-1", profile.Person{}, "friend")
	assert.Error(t, err)

	rec, err := NewManualRecord("p-1", profile.Person{FirstName: "A"}, "friend")
	require.NoError(t, err)
	assert.False(t, rec.IsFamilyMember)
	assert.NotEmpty(t, rec.ID)
}
