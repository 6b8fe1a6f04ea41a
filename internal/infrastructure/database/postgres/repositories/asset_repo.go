package repositories

import (
	"context"
	"database/sql"

	"github.com/zainulabideendev/estateplan/internal/domain/asset"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

type postgresAssetRepo struct {
	baseRepo
}

// NewPostgresAssetRepo constructs the asset repository.
func NewPostgresAssetRepo(conn *postgres.Connection, log logging.Logger) asset.Repository {
	return &postgresAssetRepo{baseRepo{conn: conn, log: log}}
}

const assetColumns = `
	id, profile_id, type, name, value, fully_paid, debt_handling_method, created_at, updated_at`

func (r *postgresAssetRepo) GetByID(ctx context.Context, id string) (*asset.Asset, error) {
	query := `SELECT` + assetColumns + ` FROM assets WHERE id = $1`
	a, err := scanAsset(r.executor().QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(errors.ErrCodeAssetNotFound, "asset not found").WithDetail("id=" + id)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load asset")
	}
	return a, nil
}

func (r *postgresAssetRepo) ListByProfile(ctx context.Context, profileID string) ([]*asset.Asset, error) {
	query := `SELECT` + assetColumns + ` FROM assets WHERE profile_id = $1 ORDER BY created_at, id`
	rows, err := r.executor().QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list assets")
	}
	defer rows.Close()

	var assets []*asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan asset row")
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate asset rows")
	}
	return assets, nil
}

func (r *postgresAssetRepo) Create(ctx context.Context, a *asset.Asset) error {
	query := `
		INSERT INTO assets (id, profile_id, type, name, value, fully_paid, debt_handling_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.executor().ExecContext(ctx, query,
		a.ID, a.ProfileID, string(a.Type), a.Name, a.Value, a.FullyPaid,
		debtMethodValue(a.DebtHandlingMethod), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to create asset")
	}
	return nil
}

func (r *postgresAssetRepo) Update(ctx context.Context, a *asset.Asset) error {
	query := `
		UPDATE assets
		SET type = $1, name = $2, value = $3, fully_paid = $4, debt_handling_method = $5, updated_at = NOW()
		WHERE id = $6
	`
	res, err := r.executor().ExecContext(ctx, query,
		string(a.Type), a.Name, a.Value, a.FullyPaid, debtMethodValue(a.DebtHandlingMethod), a.ID,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update asset")
	}
	return requireRow(res, "asset not found")
}

func (r *postgresAssetRepo) Delete(ctx context.Context, id string) error {
	res, err := r.executor().ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete asset")
	}
	return requireRow(res, "asset not found")
}

func scanAsset(row scanner) (*asset.Asset, error) {
	a := &asset.Asset{}
	var method sql.NullString
	err := row.Scan(&a.ID, &a.ProfileID, &a.Type, &a.Name, &a.Value, &a.FullyPaid,
		&method, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if method.Valid {
		m := asset.DebtHandlingMethod(method.String)
		a.DebtHandlingMethod = &m
	}
	return a, nil
}

func debtMethodValue(m *asset.DebtHandlingMethod) interface{} {
	if m == nil {
		return nil
	}
	return string(*m)
}
