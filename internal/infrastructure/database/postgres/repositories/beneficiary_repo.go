package repositories

import (
	"context"
	"database/sql"

	"github.com/zainulabideendev/estateplan/internal/domain/beneficiary"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

type postgresBeneficiaryRepo struct {
	baseRepo
}

// NewPostgresBeneficiaryRepo constructs the beneficiary repository.
func NewPostgresBeneficiaryRepo(conn *postgres.Connection, log logging.Logger) beneficiary.Repository {
	return &postgresBeneficiaryRepo{baseRepo{conn: conn, log: log}}
}

const beneficiaryColumns = `
	id, profile_id, is_family_member, family_kind, family_ref_id,
	first_name, last_name, id_number, email, phone, relationship, created_at`

func (r *postgresBeneficiaryRepo) ListByProfile(ctx context.Context, profileID string) ([]*beneficiary.Record, error) {
	query := `SELECT` + beneficiaryColumns + ` FROM beneficiaries WHERE profile_id = $1 ORDER BY created_at, id`
	rows, err := r.executor().QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list beneficiaries")
	}
	defer rows.Close()

	var records []*beneficiary.Record
	for rows.Next() {
		rec, err := scanBeneficiary(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan beneficiary row")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate beneficiary rows")
	}
	return records, nil
}

func (r *postgresBeneficiaryRepo) FindFamily(ctx context.Context, profileID string, kind beneficiary.FamilyKind, refID string) (*beneficiary.Record, error) {
	query := `SELECT` + beneficiaryColumns + `
		FROM beneficiaries
		WHERE profile_id = $1 AND is_family_member AND family_kind = $2
		  AND ($2 <> 'child' OR family_ref_id = $3)`
	row := r.executor().QueryRowContext(ctx, query, profileID, string(kind), refID)
	rec, err := scanBeneficiary(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(errors.ErrCodeBeneficiaryNotFound, "family beneficiary not found").
				WithDetail("kind=" + string(kind))
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load family beneficiary")
	}
	return rec, nil
}

func (r *postgresBeneficiaryRepo) GetByID(ctx context.Context, id string) (*beneficiary.Record, error) {
	query := `SELECT` + beneficiaryColumns + ` FROM beneficiaries WHERE id = $1`
	rec, err := scanBeneficiary(r.executor().QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(errors.ErrCodeBeneficiaryNotFound, "beneficiary not found").WithDetail("id=" + id)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load beneficiary")
	}
	return rec, nil
}

func (r *postgresBeneficiaryRepo) Create(ctx context.Context, rec *beneficiary.Record) error {
	query := `
		INSERT INTO beneficiaries (
			id, profile_id, is_family_member, family_kind, family_ref_id,
			first_name, last_name, id_number, email, phone, relationship, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.executor().ExecContext(ctx, query,
		rec.ID, rec.ProfileID, rec.IsFamilyMember, string(rec.FamilyKind), rec.FamilyRefID,
		rec.Person.FirstName, rec.Person.LastName, rec.Person.IDNumber,
		rec.Person.Email, rec.Person.Phone, rec.Relationship, rec.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to create beneficiary")
	}
	return nil
}

func (r *postgresBeneficiaryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.executor().ExecContext(ctx, `DELETE FROM beneficiaries WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete beneficiary")
	}
	return requireRow(res, "beneficiary not found")
}

func scanBeneficiary(row scanner) (*beneficiary.Record, error) {
	rec := &beneficiary.Record{}
	var kind string
	err := row.Scan(
		&rec.ID, &rec.ProfileID, &rec.IsFamilyMember, &kind, &rec.FamilyRefID,
		&rec.Person.FirstName, &rec.Person.LastName, &rec.Person.IDNumber,
		&rec.Person.Email, &rec.Person.Phone, &rec.Relationship, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.FamilyKind = beneficiary.FamilyKind(kind)
	return rec, nil
}
