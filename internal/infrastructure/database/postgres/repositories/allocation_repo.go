package repositories

import (
	"context"

	"github.com/zainulabideendev/estateplan/internal/domain/allocation"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

type postgresAllocationRepo struct {
	baseRepo
}

// NewPostgresAllocationRepo constructs the allocation repository.
func NewPostgresAllocationRepo(conn *postgres.Connection, log logging.Logger) allocation.Repository {
	return &postgresAllocationRepo{baseRepo{conn: conn, log: log}}
}

func (r *postgresAllocationRepo) ListForAsset(ctx context.Context, assetID string) ([]*allocation.Entry, error) {
	query := `SELECT asset_id, beneficiary_id, percentage FROM asset_allocations WHERE asset_id = $1`
	rows, err := r.executor().QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list asset allocations")
	}
	defer rows.Close()

	var entries []*allocation.Entry
	for rows.Next() {
		e := &allocation.Entry{}
		if err := rows.Scan(&e.AssetID, &e.BeneficiaryID, &e.Percentage); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan allocation row")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate allocation rows")
	}
	return entries, nil
}

func (r *postgresAllocationRepo) DeleteForAsset(ctx context.Context, assetID string) error {
	_, err := r.executor().ExecContext(ctx, `DELETE FROM asset_allocations WHERE asset_id = $1`, assetID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete asset allocations")
	}
	return nil
}

func (r *postgresAllocationRepo) InsertForAsset(ctx context.Context, entries []*allocation.Entry) error {
	query := `INSERT INTO asset_allocations (asset_id, beneficiary_id, percentage) VALUES ($1, $2, $3)`
	for _, e := range entries {
		if _, err := r.executor().ExecContext(ctx, query, e.AssetID, e.BeneficiaryID, e.Percentage); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert allocation row")
		}
	}
	return nil
}

func (r *postgresAllocationRepo) ListResidue(ctx context.Context, profileID string) ([]*allocation.ResidueEntry, error) {
	query := `SELECT profile_id, beneficiary_id, percentage FROM residue_allocations WHERE profile_id = $1`
	rows, err := r.executor().QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list residue allocations")
	}
	defer rows.Close()

	var entries []*allocation.ResidueEntry
	for rows.Next() {
		e := &allocation.ResidueEntry{}
		if err := rows.Scan(&e.ProfileID, &e.BeneficiaryID, &e.Percentage); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan residue row")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate residue rows")
	}
	return entries, nil
}

func (r *postgresAllocationRepo) DeleteResidue(ctx context.Context, profileID string) error {
	_, err := r.executor().ExecContext(ctx, `DELETE FROM residue_allocations WHERE profile_id = $1`, profileID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete residue allocations")
	}
	return nil
}

func (r *postgresAllocationRepo) InsertResidue(ctx context.Context, entries []*allocation.ResidueEntry) error {
	query := `INSERT INTO residue_allocations (profile_id, beneficiary_id, percentage) VALUES ($1, $2, $3)`
	for _, e := range entries {
		if _, err := r.executor().ExecContext(ctx, query, e.ProfileID, e.BeneficiaryID, e.Percentage); err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert residue row")
		}
	}
	return nil
}

func (r *postgresAllocationRepo) DeleteForBeneficiary(ctx context.Context, beneficiaryID string) error {
	_, err := r.executor().ExecContext(ctx, `DELETE FROM asset_allocations WHERE beneficiary_id = $1`, beneficiaryID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete beneficiary allocations")
	}
	return nil
}

func (r *postgresAllocationRepo) DeleteResidueForBeneficiary(ctx context.Context, beneficiaryID string) error {
	_, err := r.executor().ExecContext(ctx, `DELETE FROM residue_allocations WHERE beneficiary_id = $1`, beneficiaryID)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete beneficiary residue allocations")
	}
	return nil
}
