package allocation

import (
	"context"
	"fmt"

	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

// RecordSource supplies the current beneficiary record set for key
// translation. The full contract lives in the beneficiary package; the local
// interface keeps this package's dependency surface minimal.
type RecordSource interface {
	ListByProfile(ctx context.Context, profileID string) ([]*beneficiary.Record, error)
}

// Ledger holds the in-memory allocation state for one profile's editing
// session: a percentage map per asset plus the residue map, with per-scope
// dirty tracking.
//
// The ledger is not safe for concurrent use. The editing workflow is
// single-writer per session, and concurrent saves from different sessions
// race with last-write-wins semantics; there is no optimistic concurrency
// control on saves. Known limitation, acceptable for a single-user workflow.
type Ledger struct {
	profileID string
	records   RecordSource
	repo      Repository
	log       logging.Logger

	assets       map[string]map[beneficiary.Key]float64
	residue      map[beneficiary.Key]float64
	dirty        map[string]bool
	residueDirty bool
}

// NewLedger constructs an empty ledger for a profile.
func NewLedger(profileID string, records RecordSource, repo Repository, log logging.Logger) *Ledger {
	return &Ledger{
		profileID: profileID,
		records:   records,
		repo:      repo,
		log:       log.Named("allocation"),
		assets:    make(map[string]map[beneficiary.Key]float64),
		residue:   make(map[beneficiary.Key]float64),
		dirty:     make(map[string]bool),
	}
}

// SetAllocation stores a percentage for (asset, beneficiary key), clamping
// it to [0, 100], and marks the asset dirty.
func (l *Ledger) SetAllocation(assetID string, key beneficiary.Key, pct float64) {
	m, ok := l.assets[assetID]
	if !ok {
		m = make(map[beneficiary.Key]float64)
		l.assets[assetID] = m
	}
	m[key] = ClampPercent(pct)
	l.dirty[assetID] = true
}

// SetResidueAllocation stores a residue percentage for a beneficiary key,
// clamping it to [0, 100], and marks the residue ledger dirty.
func (l *Ledger) SetResidueAllocation(key beneficiary.Key, pct float64) {
	l.residue[key] = ClampPercent(pct)
	l.residueDirty = true
}

// Allocations returns a copy of the in-memory map for an asset.
func (l *Ledger) Allocations(assetID string) map[beneficiary.Key]float64 {
	out := make(map[beneficiary.Key]float64, len(l.assets[assetID]))
	for k, v := range l.assets[assetID] {
		out[k] = v
	}
	return out
}

// ResidueAllocations returns a copy of the in-memory residue map.
func (l *Ledger) ResidueAllocations() map[beneficiary.Key]float64 {
	out := make(map[beneficiary.Key]float64, len(l.residue))
	for k, v := range l.residue {
		out[k] = v
	}
	return out
}

// IsDirty reports whether an asset has unsaved allocation edits.
func (l *Ledger) IsDirty(assetID string) bool { return l.dirty[assetID] }

// IsResidueDirty reports whether the residue ledger has unsaved edits.
func (l *Ledger) IsResidueDirty() bool { return l.residueDirty }

// LoadAsset primes the in-memory map for an asset from the persisted rows,
// leaving the asset clean. Rows whose beneficiary no longer resolves keep
// their record-id key form and are filtered again on the next save.
func (l *Ledger) LoadAsset(ctx context.Context, assetID string) error {
	rows, err := l.repo.ListForAsset(ctx, assetID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load allocations")
	}
	keys, err := l.keysByRecordID(ctx)
	if err != nil {
		return err
	}
	m := make(map[beneficiary.Key]float64, len(rows))
	for _, row := range rows {
		if key, ok := keys[row.BeneficiaryID]; ok {
			m[key] = row.Percentage
		}
	}
	l.assets[assetID] = m
	delete(l.dirty, assetID)
	return nil
}

// LoadResidue primes the residue map from the persisted rows.
func (l *Ledger) LoadResidue(ctx context.Context) error {
	rows, err := l.repo.ListResidue(ctx, l.profileID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load residue allocations")
	}
	keys, err := l.keysByRecordID(ctx)
	if err != nil {
		return err
	}
	m := make(map[beneficiary.Key]float64, len(rows))
	for _, row := range rows {
		if key, ok := keys[row.BeneficiaryID]; ok {
			m[key] = row.Percentage
		}
	}
	l.residue = m
	l.residueDirty = false
	return nil
}

// SaveAllocations persists the in-memory entries for an asset:
//
//  1. Fetch the current beneficiary record set and build the key to record
//     id map.
//  2. Drop entries whose key no longer resolves. Stale keys are defensive
//     filtering, never an error: a beneficiary removed in another screen
//     must not block the save.
//  3. Reject the save with ErrCodeAllocationExceeded, writing nothing, when
//     the filtered total exceeds 100.
//  4. Delete all existing rows for the asset, then insert one row per entry
//     with a positive percentage. Zero entries are not persisted.
//
// On success the asset's dirty flag is cleared.
func (l *Ledger) SaveAllocations(ctx context.Context, assetID string) error {
	translation, err := l.translation(ctx)
	if err != nil {
		return err
	}

	var entries []*Entry
	total := 0.0
	for key, pct := range l.assets[assetID] {
		recordID, ok := translation[key]
		if !ok {
			continue
		}
		total += pct
		if pct > 0 {
			entries = append(entries, &Entry{AssetID: assetID, BeneficiaryID: recordID, Percentage: pct})
		}
	}
	if total > MaxTotalPercent {
		return errors.New(errors.ErrCodeAllocationExceeded, "allocation total exceeds 100%").
			WithDetail(fmt.Sprintf("asset_id=%s total=%.2f", assetID, total))
	}

	if err := l.repo.DeleteForAsset(ctx, assetID); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to clear asset allocations")
	}
	if len(entries) > 0 {
		if err := l.repo.InsertForAsset(ctx, entries); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert asset allocations")
		}
	}
	delete(l.dirty, assetID)
	l.log.Info("asset allocations saved",
		logging.String("profile_id", l.profileID),
		logging.String("asset_id", assetID),
		logging.Int("rows", len(entries)),
		logging.Float64("total", total),
	)
	return nil
}

// SaveResidue persists the residue ledger with the identical algorithm,
// scoped to the profile instead of an asset.
func (l *Ledger) SaveResidue(ctx context.Context) error {
	translation, err := l.translation(ctx)
	if err != nil {
		return err
	}

	var entries []*ResidueEntry
	total := 0.0
	for key, pct := range l.residue {
		recordID, ok := translation[key]
		if !ok {
			continue
		}
		total += pct
		if pct > 0 {
			entries = append(entries, &ResidueEntry{ProfileID: l.profileID, BeneficiaryID: recordID, Percentage: pct})
		}
	}
	if total > MaxTotalPercent {
		return errors.New(errors.ErrCodeAllocationExceeded, "residue allocation total exceeds 100%").
			WithDetail(fmt.Sprintf("profile_id=%s total=%.2f", l.profileID, total))
	}

	if err := l.repo.DeleteResidue(ctx, l.profileID); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to clear residue allocations")
	}
	if len(entries) > 0 {
		if err := l.repo.InsertResidue(ctx, entries); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert residue allocations")
		}
	}
	l.residueDirty = false
	l.log.Info("residue allocations saved",
		logging.String("profile_id", l.profileID),
		logging.Int("rows", len(entries)),
		logging.Float64("total", total),
	)
	return nil
}

func (l *Ledger) translation(ctx context.Context) (map[beneficiary.Key]string, error) {
	records, err := l.records.ListByProfile(ctx, l.profileID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list beneficiary records")
	}
	return beneficiary.TranslationMap(records), nil
}

func (l *Ledger) keysByRecordID(ctx context.Context) (map[string]beneficiary.Key, error) {
	translation, err := l.translation(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]beneficiary.Key, len(translation))
	for key, id := range translation {
		out[id] = key
	}
	return out, nil
}
