package estate

import (
	"context"
	"sync"

	"github.com/zainulabideendev/estateplan/internal/domain/allocation"
	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

const testProfileID = "p-1"

func marriedProfile() *profile.Profile {
	return &profile.Profile{
		ID:             testProfileID,
		MaritalStatus:  profile.MaritalMarried,
		PropertyRegime: profile.RegimeInCommunity,
		Spouse:         &profile.Person{FirstName: "Thandi", LastName: "Mokoena"},
	}
}

func twoChildren() []*profile.Child {
	return []*profile.Child{
		{ID: "c-1", ProfileID: testProfileID, Person: profile.Person{FirstName: "Lwazi", LastName: "Mokoena"}},
		{ID: "c-2", ProfileID: testProfileID, Person: profile.Person{FirstName: "Zinhle", LastName: "Mokoena"}},
	}
}

type memProfiles struct {
	mu       sync.Mutex
	profiles map[string]*profile.Profile
	children map[string][]*profile.Child
	flags    map[string]profile.Flags
}

func newMemProfiles(ps ...*profile.Profile) *memProfiles {
	m := &memProfiles{
		profiles: make(map[string]*profile.Profile),
		children: make(map[string][]*profile.Child),
		flags:    make(map[string]profile.Flags),
	}
	for _, p := range ps {
		m.profiles[p.ID] = p
	}
	return m
}

func (m *memProfiles) GetByID(_ context.Context, id string) (*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "profile not found")
	}
	cp := *p
	return &cp, nil
}

func (m *memProfiles) UpdateRegime(_ context.Context, id string, regime profile.PropertyRegime) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "profile not found")
	}
	p.PropertyRegime = regime
	return nil
}

func (m *memProfiles) UpdateMarital(_ context.Context, id string, status profile.MaritalStatus, hasLifePartner bool, spouse, partner *profile.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "profile not found")
	}
	p.MaritalStatus = status
	p.HasLifePartner = hasLifePartner
	p.Spouse = spouse
	p.Partner = partner
	return nil
}

func (m *memProfiles) SaveFlags(_ context.Context, id string, flags profile.Flags) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "profile not found")
	}
	m.flags[id] = flags
	return nil
}

func (m *memProfiles) GetFlags(_ context.Context, id string) (profile.Flags, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return profile.Flags{}, errors.New(errors.ErrCodeNotFound, "profile not found")
	}
	return m.flags[id], nil
}

func (m *memProfiles) ListChildren(_ context.Context, profileID string) ([]*profile.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.children[profileID], nil
}

type memRecords struct {
	mu      sync.Mutex
	records []*beneficiary.Record
	lists   int
}

func (m *memRecords) ListByProfile(_ context.Context, profileID string) ([]*beneficiary.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	var out []*beneficiary.Record
	for _, r := range m.records {
		if r.ProfileID == profileID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRecords) FindFamily(_ context.Context, profileID string, kind beneficiary.FamilyKind, refID string) (*beneficiary.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ProfileID == profileID && r.Matches(kind, refID) {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeBeneficiaryNotFound, "no matching record")
}

func (m *memRecords) GetByID(_ context.Context, id string) (*beneficiary.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeBeneficiaryNotFound, "no matching record")
}

func (m *memRecords) Create(_ context.Context, rec *beneficiary.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *memRecords) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeBeneficiaryNotFound, "no matching record")
}

type memAllocations struct {
	mu      sync.Mutex
	asset   []*allocation.Entry
	residue []*allocation.ResidueEntry
}

func (m *memAllocations) ListForAsset(_ context.Context, assetID string) ([]*allocation.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*allocation.Entry
	for _, e := range m.asset {
		if e.AssetID == assetID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memAllocations) DeleteForAsset(_ context.Context, assetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.asset[:0]
	for _, e := range m.asset {
		if e.AssetID != assetID {
			kept = append(kept, e)
		}
	}
	m.asset = kept
	return nil
}

func (m *memAllocations) InsertForAsset(_ context.Context, entries []*allocation.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.asset = append(m.asset, entries...)
	return nil
}

func (m *memAllocations) ListResidue(_ context.Context, profileID string) ([]*allocation.ResidueEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*allocation.ResidueEntry
	for _, e := range m.residue {
		if e.ProfileID == profileID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memAllocations) DeleteResidue(_ context.Context, profileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.residue[:0]
	for _, e := range m.residue {
		if e.ProfileID != profileID {
			kept = append(kept, e)
		}
	}
	m.residue = kept
	return nil
}

func (m *memAllocations) InsertResidue(_ context.Context, entries []*allocation.ResidueEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.residue = append(m.residue, entries...)
	return nil
}

func (m *memAllocations) DeleteForBeneficiary(_ context.Context, beneficiaryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.asset[:0]
	for _, e := range m.asset {
		if e.BeneficiaryID != beneficiaryID {
			kept = append(kept, e)
		}
	}
	m.asset = kept
	return nil
}

func (m *memAllocations) DeleteResidueForBeneficiary(_ context.Context, beneficiaryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.residue[:0]
	for _, e := range m.residue {
		if e.BeneficiaryID != beneficiaryID {
			kept = append(kept, e)
		}
	}
	m.residue = kept
	return nil
}

type capturePublisher struct {
	mu     sync.Mutex
	events []plan.Event
}

func (p *capturePublisher) PlanMutated(_ context.Context, e plan.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *capturePublisher) kinds() []plan.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []plan.EventKind
	for _, e := range p.events {
		out = append(out, e.Kind)
	}
	return out
}
