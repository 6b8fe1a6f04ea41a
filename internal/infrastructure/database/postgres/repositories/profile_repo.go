package repositories

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/zainulabideendev/estateplan/internal/domain/profile"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/database/postgres"
	"github.com/zainulabideendev/estateplan/internal/infrastructure/monitoring/logging"
	"github.com/zainulabideendev/estateplan/pkg/errors"
)

type postgresProfileRepo struct {
	baseRepo
}

// NewPostgresProfileRepo constructs the profile repository.
func NewPostgresProfileRepo(conn *postgres.Connection, log logging.Logger) profile.Repository {
	return &postgresProfileRepo{baseRepo{conn: conn, log: log}}
}

const profileColumns = `
	id, marital_status, property_regime, has_life_partner, spouse, partner,
	has_beneficiaries, assets_fully_allocated, residue_fully_allocated,
	profile_setup, assets_added, beneficiaries_chosen, last_wishes_documented,
	executor_chosen, will_reviewed, will_downloaded,
	created_at, updated_at`

func (r *postgresProfileRepo) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE id = $1`
	row := r.executor().QueryRowContext(ctx, query, id)
	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + id)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load profile")
	}
	return p, nil
}

func (r *postgresProfileRepo) UpdateRegime(ctx context.Context, id string, regime profile.PropertyRegime) error {
	query := `UPDATE profiles SET property_regime = $1, updated_at = NOW() WHERE id = $2`
	res, err := r.executor().ExecContext(ctx, query, string(regime), id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update property regime")
	}
	return requireRow(res, "profile not found")
}

func (r *postgresProfileRepo) UpdateMarital(ctx context.Context, id string, status profile.MaritalStatus, hasLifePartner bool, spouse, partner *profile.Person) error {
	spouseJSON, err := marshalPerson(spouse)
	if err != nil {
		return err
	}
	partnerJSON, err := marshalPerson(partner)
	if err != nil {
		return err
	}
	query := `
		UPDATE profiles
		SET marital_status = $1, has_life_partner = $2, spouse = $3, partner = $4, updated_at = NOW()
		WHERE id = $5
	`
	res, err := r.executor().ExecContext(ctx, query, string(status), hasLifePartner, spouseJSON, partnerJSON, id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update marital status")
	}
	return requireRow(res, "profile not found")
}

func (r *postgresProfileRepo) SaveFlags(ctx context.Context, id string, flags profile.Flags) error {
	query := `
		UPDATE profiles
		SET has_beneficiaries = $1, assets_fully_allocated = $2, residue_fully_allocated = $3,
		    profile_setup = $4, assets_added = $5, beneficiaries_chosen = $6,
		    last_wishes_documented = $7, executor_chosen = $8, will_reviewed = $9,
		    will_downloaded = $10, updated_at = NOW()
		WHERE id = $11
	`
	res, err := r.executor().ExecContext(ctx, query,
		flags.HasBeneficiaries, flags.AssetsFullyAllocated, flags.ResidueFullyAllocated,
		flags.ProfileSetup, flags.AssetsAdded, flags.BeneficiariesChosen,
		flags.LastWishesDocumented, flags.ExecutorChosen, flags.WillReviewed,
		flags.WillDownloaded, id,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to save flags")
	}
	return requireRow(res, "profile not found")
}

func (r *postgresProfileRepo) GetFlags(ctx context.Context, id string) (profile.Flags, error) {
	query := `
		SELECT has_beneficiaries, assets_fully_allocated, residue_fully_allocated,
		       profile_setup, assets_added, beneficiaries_chosen, last_wishes_documented,
		       executor_chosen, will_reviewed, will_downloaded
		FROM profiles WHERE id = $1
	`
	var f profile.Flags
	err := r.executor().QueryRowContext(ctx, query, id).Scan(
		&f.HasBeneficiaries, &f.AssetsFullyAllocated, &f.ResidueFullyAllocated,
		&f.ProfileSetup, &f.AssetsAdded, &f.BeneficiariesChosen, &f.LastWishesDocumented,
		&f.ExecutorChosen, &f.WillReviewed, &f.WillDownloaded,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return profile.Flags{}, errors.New(errors.ErrCodeProfileNotFound, "profile not found").WithDetail("id=" + id)
		}
		return profile.Flags{}, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load flags")
	}
	return f, nil
}

func (r *postgresProfileRepo) ListChildren(ctx context.Context, profileID string) ([]*profile.Child, error) {
	query := `
		SELECT id, profile_id, first_name, last_name, id_number, email, phone, created_at
		FROM children WHERE profile_id = $1 ORDER BY created_at, id
	`
	rows, err := r.executor().QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list children")
	}
	defer rows.Close()

	var children []*profile.Child
	for rows.Next() {
		c := &profile.Child{}
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Person.FirstName, &c.Person.LastName,
			&c.Person.IDNumber, &c.Person.Email, &c.Person.Phone, &c.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan child row")
		}
		children = append(children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate child rows")
	}
	return children, nil
}

func scanProfile(row scanner) (*profile.Profile, error) {
	p := &profile.Profile{}
	var spouseJSON, partnerJSON []byte
	err := row.Scan(
		&p.ID, &p.MaritalStatus, &p.PropertyRegime, &p.HasLifePartner, &spouseJSON, &partnerJSON,
		&p.Flags.HasBeneficiaries, &p.Flags.AssetsFullyAllocated, &p.Flags.ResidueFullyAllocated,
		&p.Flags.ProfileSetup, &p.Flags.AssetsAdded, &p.Flags.BeneficiariesChosen,
		&p.Flags.LastWishesDocumented, &p.Flags.ExecutorChosen, &p.Flags.WillReviewed,
		&p.Flags.WillDownloaded,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Spouse, err = unmarshalPerson(spouseJSON); err != nil {
		return nil, err
	}
	if p.Partner, err = unmarshalPerson(partnerJSON); err != nil {
		return nil, err
	}
	return p, nil
}

func marshalPerson(p *profile.Person) (interface{}, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode person")
	}
	return data, nil
}

func unmarshalPerson(data []byte) (*profile.Person, error) {
	if len(data) == 0 {
		return nil, nil
	}
	p := &profile.Person{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to decode person")
	}
	return p, nil
}

func requireRow(res sql.Result, msg string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to read rows affected")
	}
	if rows == 0 {
		return errors.New(errors.ErrCodeNotFound, msg)
	}
	return nil
}
