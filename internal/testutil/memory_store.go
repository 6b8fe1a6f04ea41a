package testutil

import (
	"context"
	"sync"

	"github.com/zainulabideendev/estateplan/internal/domain/allocation"
	"github.com/zainulabideendev/estateplan/internal/domain/asset"
	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// MemoryProfileRepo is a map-backed profile.Repository.
type MemoryProfileRepo struct {
	mu       sync.Mutex
	Profiles map[string]*profile.Profile
	Children map[string][]*profile.Child
	Flags    map[string]profile.Flags
}

// NewMemoryProfileRepo seeds a repo with the given profiles.
func NewMemoryProfileRepo(ps ...*profile.Profile) *MemoryProfileRepo {
	m := &MemoryProfileRepo{
		Profiles: make(map[string]*profile.Profile),
		Children: make(map[string][]*profile.Child),
		Flags:    make(map[string]profile.Flags),
	}
	for _, p := range ps {
		m.Profiles[p.ID] = p
	}
	return m
}

func (m *MemoryProfileRepo) GetByID(_ context.Context, id string) (*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Profiles[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeProfileNotFound, "profile not found")
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryProfileRepo) UpdateRegime(_ context.Context, id string, regime profile.PropertyRegime) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Profiles[id]
	if !ok {
		return errors.New(errors.ErrCodeProfileNotFound, "profile not found")
	}
	p.PropertyRegime = regime
	return nil
}

func (m *MemoryProfileRepo) UpdateMarital(_ context.Context, id string, status profile.MaritalStatus, hasLifePartner bool, spouse, partner *profile.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Profiles[id]
	if !ok {
		return errors.New(errors.ErrCodeProfileNotFound, "profile not found")
	}
	p.MaritalStatus = status
	p.HasLifePartner = hasLifePartner
	p.Spouse = spouse
	p.Partner = partner
	return nil
}

func (m *MemoryProfileRepo) SaveFlags(_ context.Context, id string, flags profile.Flags) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Profiles[id]; !ok {
		return errors.New(errors.ErrCodeProfileNotFound, "profile not found")
	}
	m.Flags[id] = flags
	return nil
}

func (m *MemoryProfileRepo) GetFlags(_ context.Context, id string) (profile.Flags, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Profiles[id]; !ok {
		return profile.Flags{}, errors.New(errors.ErrCodeProfileNotFound, "profile not found")
	}
	return m.Flags[id], nil
}

func (m *MemoryProfileRepo) ListChildren(_ context.Context, profileID string) ([]*profile.Child, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Children[profileID], nil
}

// MemoryBeneficiaryRepo is a slice-backed beneficiary.Repository.
type MemoryBeneficiaryRepo struct {
	mu      sync.Mutex
	Records []*beneficiary.Record
}

func (m *MemoryBeneficiaryRepo) ListByProfile(_ context.Context, profileID string) ([]*beneficiary.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*beneficiary.Record
	for _, r := range m.Records {
		if r.ProfileID == profileID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryBeneficiaryRepo) FindFamily(_ context.Context, profileID string, kind beneficiary.FamilyKind, refID string) (*beneficiary.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.Records {
		if r.ProfileID == profileID && r.Matches(kind, refID) {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeBeneficiaryNotFound, "no matching record")
}

func (m *MemoryBeneficiaryRepo) GetByID(_ context.Context, id string) (*beneficiary.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.Records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeBeneficiaryNotFound, "no matching record")
}

func (m *MemoryBeneficiaryRepo) Create(_ context.Context, rec *beneficiary.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MemoryBeneficiaryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.Records {
		if r.ID == id {
			m.Records = append(m.Records[:i], m.Records[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeBeneficiaryNotFound, "no matching record")
}

// MemoryAllocationRepo is a slice-backed allocation.Repository.
type MemoryAllocationRepo struct {
	mu      sync.Mutex
	Asset   []*allocation.Entry
	Residue []*allocation.ResidueEntry
}

func (m *MemoryAllocationRepo) ListForAsset(_ context.Context, assetID string) ([]*allocation.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*allocation.Entry
	for _, e := range m.Asset {
		if e.AssetID == assetID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryAllocationRepo) DeleteForAsset(_ context.Context, assetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.Asset[:0]
	for _, e := range m.Asset {
		if e.AssetID != assetID {
			kept = append(kept, e)
		}
	}
	m.Asset = kept
	return nil
}

func (m *MemoryAllocationRepo) InsertForAsset(_ context.Context, entries []*allocation.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Asset = append(m.Asset, entries...)
	return nil
}

func (m *MemoryAllocationRepo) ListResidue(_ context.Context, profileID string) ([]*allocation.ResidueEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*allocation.ResidueEntry
	for _, e := range m.Residue {
		if e.ProfileID == profileID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryAllocationRepo) DeleteResidue(_ context.Context, profileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.Residue[:0]
	for _, e := range m.Residue {
		if e.ProfileID != profileID {
			kept = append(kept, e)
		}
	}
	m.Residue = kept
	return nil
}

func (m *MemoryAllocationRepo) InsertResidue(_ context.Context, entries []*allocation.ResidueEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Residue = append(m.Residue, entries...)
	return nil
}

func (m *MemoryAllocationRepo) DeleteForBeneficiary(_ context.Context, beneficiaryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.Asset[:0]
	for _, e := range m.Asset {
		if e.BeneficiaryID != beneficiaryID {
			kept = append(kept, e)
		}
	}
	m.Asset = kept
	return nil
}

func (m *MemoryAllocationRepo) DeleteResidueForBeneficiary(_ context.Context, beneficiaryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.Residue[:0]
	for _, e := range m.Residue {
		if e.BeneficiaryID != beneficiaryID {
			kept = append(kept, e)
		}
	}
	m.Residue = kept
	return nil
}

// MemoryAssetRepo is a map-backed asset.Repository.
type MemoryAssetRepo struct {
	mu     sync.Mutex
	Assets map[string]*asset.Asset
}

// NewMemoryAssetRepo creates an empty asset repo.
func NewMemoryAssetRepo() *MemoryAssetRepo {
	return &MemoryAssetRepo{Assets: make(map[string]*asset.Asset)}
}

func (m *MemoryAssetRepo) GetByID(_ context.Context, id string) (*asset.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Assets[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeAssetNotFound, "asset not found")
	}
	cp := *a
	return &cp, nil
}

func (m *MemoryAssetRepo) ListByProfile(_ context.Context, profileID string) ([]*asset.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*asset.Asset
	for _, a := range m.Assets {
		if a.ProfileID == profileID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryAssetRepo) Create(_ context.Context, a *asset.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Assets[a.ID] = a
	return nil
}

func (m *MemoryAssetRepo) Update(_ context.Context, a *asset.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Assets[a.ID]; !ok {
		return errors.New(errors.ErrCodeAssetNotFound, "asset not found")
	}
	m.Assets[a.ID] = a
	return nil
}

func (m *MemoryAssetRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Assets, id)
	return nil
}
