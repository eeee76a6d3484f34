package queries

import (
	"errors"

	"rates/internal/core/domain/model/kernel"
	"rates/internal/pkg/guard"
)

var (
	ErrGetRateCardQueryIsNotConstructed = errors.New(
		"GetRateCardQuery must be created via NewGetRateCardQuery constructor",
	)
)

// GetRateCardQuery retrieves the full rate card of one pricing plan: every
// courier's price row per zone, flattened for the admin rate-card viewer.
//
// Example:
//
//	query, err := NewGetRateCardQuery(planID)
//	if err != nil {
//	    return fmt.Errorf("invalid rate card query: %w", err)
//	}
//
//	rows, err := handler.Handle(ctx, query)
//	for _, row := range rows {
//	    fmt.Printf("%s %s: base %.2f\n", row.CourierName, row.Zone, row.BasePrice)
//	}
type GetRateCardQuery struct { //nolint:recvcheck //using for validation
	planID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRateCardQuery creates a query for the given plan's rate card.
func NewGetRateCardQuery(planID kernel.UUID) (GetRateCardQuery, error) {
	query := GetRateCardQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPlanID(planID); err != nil {
		return GetRateCardQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRateCardQueryIsNotConstructed if validation fails.
func (q GetRateCardQuery) Validate() error {
	return q.guard.Validate(ErrGetRateCardQueryIsNotConstructed)
}

// PlanID returns the plan whose rate card is requested.
func (q GetRateCardQuery) PlanID() kernel.UUID {
	return q.planID
}

func (q *GetRateCardQuery) setPlanID(planID kernel.UUID) error {
	if err := planID.Validate(); err != nil {
		return err
	}

	q.planID = planID
	return nil
}

// GetRateCardQueryResponse is one rate card row: a courier's pricing for one
// zone within the plan.
type GetRateCardQueryResponse struct {
	CourierID       kernel.UUID
	CourierName     string
	Zone            string
	WeightSlab      float64
	IncrementWeight float64
	BasePrice       float64
	IncrementPrice  float64
}
