package estate

import (
	"context"
	"sync"
	"testing"

	"github.com/zainulabideendev/estateplan/internal/domain/asset"
	"github.com/zainulabideendev/estateplan/internal/domain/plan"
	"github.com/zainulabideendev/estateplan/internal/testutil"
	"github.com/zainulabideendev/estateplan/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAssets struct {
	mu     sync.Mutex
	assets map[string]*asset.Asset
}

func newMemAssets() *memAssets {
	return &memAssets{assets: make(map[string]*asset.Asset)}
}

func (m *memAssets) GetByID(_ context.Context, id string) (*asset.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "asset not found")
	}
	cp := *a
	return &cp, nil
}

func (m *memAssets) ListByProfile(_ context.Context, profileID string) ([]*asset.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*asset.Asset
	for _, a := range m.assets {
		if a.ProfileID == profileID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAssets) Create(_ context.Context, a *asset.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[a.ID] = a
	return nil
}

func (m *memAssets) Update(_ context.Context, a *asset.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[a.ID]; !ok {
		return errors.New(errors.ErrCodeNotFound, "asset not found")
	}
	m.assets[a.ID] = a
	return nil
}

func (m *memAssets) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assets, id)
	return nil
}

func newAssetFixture() (*AssetService, *memAssets, *capturePublisher) {
	repo := newMemAssets()
	pub := &capturePublisher{}
	log := testutil.NewMockLogger()
	svc := NewAssetService(asset.NewService(repo, log), pub, log)
	return svc, repo, pub
}

func TestAssetSetDebtStatus_PublishesDebtEvent(t *testing.T) {
	svc, _, pub := newAssetFixture()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAssetInput{ProfileID: testProfileID, Type: asset.TypeVehicle, Name: "Bakkie", Value: 250000})
	require.NoError(t, err)

	updated, err := svc.SetDebtStatus(ctx, a.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.FullyPaid)
	assert.Equal(t, []plan.EventKind{plan.EventAssetDebtUpdated}, pub.kinds())
}

func TestAssetSetDebtHandlingMethod_Publishes(t *testing.T) {
	svc, _, pub := newAssetFixture()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAssetInput{ProfileID: testProfileID, Type: asset.TypeProperty, Name: "House", Value: 1800000})
	require.NoError(t, err)
	_, err = svc.SetDebtStatus(ctx, a.ID, false)
	require.NoError(t, err)

	updated, err := svc.SetDebtHandlingMethod(ctx, a.ID, asset.DebtEstatePaid)
	require.NoError(t, err)
	require.NotNil(t, updated.DebtHandlingMethod)
	assert.Equal(t, asset.DebtEstatePaid, *updated.DebtHandlingMethod)
	assert.Len(t, pub.kinds(), 2)
}

func TestAssetSetDebtHandlingMethod_IneligibleNoEvent(t *testing.T) {
	svc, _, pub := newAssetFixture()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAssetInput{ProfileID: testProfileID, Type: asset.TypeValuable, Name: "Painting", Value: 90000})
	require.NoError(t, err)

	_, err = svc.SetDebtHandlingMethod(ctx, a.ID, asset.DebtEstatePaid)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDebtMethodNotEligible))
	assert.Empty(t, pub.kinds())
}
