// Package asset holds estate assets and their debt-handling designation for
// encumbered vehicles and properties.
package asset

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type enumerates the asset classes a plan can hold.
type Type string

const (
	TypeProperty   Type = "property"
	TypeVehicle    Type = "vehicle"
	TypeInvestment Type = "investment"
	TypeBusiness   Type = "business"
	TypeValuable   Type = "valuable"
	TypeOther      Type = "other"
)

// DebtHandlingMethod names the policy for an encumbered asset's outstanding
// debt at distribution. It is descriptive metadata consumed downstream by
// document generation; it has no numeric effect on allocations.
type DebtHandlingMethod string

const (
	DebtSubjectToExisting       DebtHandlingMethod = "subject_to_existing_debt"
	DebtEstatePaid              DebtHandlingMethod = "estate_paid_debt"
	DebtSaleAndDistribution     DebtHandlingMethod = "asset_sale_and_distribution"
	DebtPartialWithDeduction    DebtHandlingMethod = "partial_allocation_with_deduction"
	DebtHybridApproach          DebtHandlingMethod = "hybrid_approach"
)

// DebtHandlingMethods lists the valid methods in display order.
var DebtHandlingMethods = []DebtHandlingMethod{
	DebtSubjectToExisting,
	DebtEstatePaid,
	DebtSaleAndDistribution,
	DebtPartialWithDeduction,
	DebtHybridApproach,
}

// ValidDebtHandlingMethod reports whether m is one of the five methods.
func ValidDebtHandlingMethod(m DebtHandlingMethod) bool {
	for _, v := range DebtHandlingMethods {
		if v == m {
			return true
		}
	}
	return false
}

// Asset is one estate asset row.
type Asset struct {
	ID        string  `json:"id"`
	ProfileID string  `json:"profile_id"`
	Type      Type    `json:"type"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`

	// FullyPaid marks the asset as unencumbered. DebtHandlingMethod is only
	// meaningful when FullyPaid is false and the asset is a vehicle or
	// property.
	FullyPaid          bool                `json:"fully_paid"`
	DebtHandlingMethod *DebtHandlingMethod `json:"debt_handling_method,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New constructs an asset with a fresh id. Assets default to fully paid.
func New(profileID string, typ Type, name string, value float64) (*Asset, error) {
	if profileID == "" {
		return nil, errors.New("profile ID cannot be empty")
	}
	if name == "" {
		return nil, errors.New("asset name cannot be empty")
	}
	if value < 0 {
		return nil, errors.New("asset value cannot be negative")
	}
	now := time.Now().UTC()
	return &Asset{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		Type:      typ,
		Name:      name,
		Value:     value,
		FullyPaid: true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// DebtEligible reports whether the asset can carry a debt-handling method:
// only unpaid vehicles and properties qualify.
func (a *Asset) DebtEligible() bool {
	return !a.FullyPaid && (a.Type == TypeVehicle || a.Type == TypeProperty)
}
